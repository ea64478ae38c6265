package broker

import (
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	logpkg "github.com/alutan/trade-history/pkg/log"
)

// kgoLogger routes franz-go client logs through the service logger.
type kgoLogger struct {
	logger logpkg.Logger
}

func (l *kgoLogger) Level() kgo.LogLevel {
	switch l.logger.GetLevel() {
	case logpkg.DebugLevel:
		return kgo.LogLevelDebug
	case logpkg.InfoLevel:
		return kgo.LogLevelInfo
	case logpkg.WarnLevel:
		return kgo.LogLevelWarn
	default:
		return kgo.LogLevelError
	}
}

func (l *kgoLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	fields := make([]logpkg.Field, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		fields = append(fields, logpkg.Field{Key: key, Value: keyvals[i+1]})
	}
	switch level {
	case kgo.LogLevelDebug:
		l.logger.Debug(msg, fields...)
	case kgo.LogLevelInfo:
		l.logger.Info(msg, fields...)
	case kgo.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case kgo.LogLevelError:
		l.logger.Error(msg, fields...)
	}
}
