package log

import (
	"io"
	"os"
)

// ConsoleOutput writes formatted entries to a writer, stderr by default.
type ConsoleOutput struct {
	w io.Writer
}

// NewConsoleOutput returns a ConsoleOutput writing to stderr.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{w: os.Stderr} }

// NewWriterOutput returns a ConsoleOutput writing to the given writer.
func NewWriterOutput(w io.Writer) *ConsoleOutput { return &ConsoleOutput{w: w} }

// Write writes the formatted entry.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	_, err := o.w.Write(formatted)
	return err
}

// Close is a no-op for console outputs.
func (o *ConsoleOutput) Close() error { return nil }
