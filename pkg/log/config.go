package log

// Config declares logger settings in a transport-friendly shape.
type Config struct {
	// Level is one of debug|info|warn|error. Empty means info.
	Level string `json:"level"`
	// Format is one of text|json. Empty means text.
	Format string `json:"format"`
}

// ApplyConfig builds a Logger from a declarative Config.
func ApplyConfig(cfg *Config) (Logger, error) {
	lvl := InfoLevel
	if cfg.Level != "" {
		parsed, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	var formatter Formatter = &TextFormatter{}
	if cfg.Format == "json" {
		formatter = &JSONFormatter{}
	}
	return NewLogger(WithLevel(lvl), WithFormatter(formatter), WithOutput(NewConsoleOutput())), nil
}
