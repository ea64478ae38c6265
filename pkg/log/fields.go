package log

import "time"

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// Str returns a string field.
func Str(key, value string) Field { return Field{Key: key, Value: value} }

// Int returns an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int32 returns an int32 field.
func Int32(key string, value int32) Field { return Field{Key: key, Value: value} }

// Int64 returns an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Bool returns a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Dur returns a duration field rendered as a string.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value.String()} }

// Err returns an error field under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: ""}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Component tags entries with the emitting component name.
func Component(name string) Field { return Field{Key: "component", Value: name} }
