package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TextFormatter renders entries as a human-readable single line:
//
//	2006-01-02T15:04:05.000Z INFO server started component=server port=8080
type TextFormatter struct{}

// Format renders the entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(entry.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"))
	buf.WriteByte(' ')
	buf.WriteString(entry.Level.String())
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)
	for _, fld := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(fld.Key)
		buf.WriteByte('=')
		fmt.Fprintf(&buf, "%v", fld.Value)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct{}

// Format renders the entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]any, len(entry.Fields)+3)
	obj["ts"] = entry.Timestamp.UTC().Format(time.RFC3339Nano)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message
	for _, fld := range entry.Fields {
		obj[fld.Key] = fld.Value
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
