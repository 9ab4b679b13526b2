package logging

import "github.com/archora/archora/pkg/archora"

var _ archora.Logger = (*NullLogger)(nil)

// NullLogger drops every message. Stores and interpreters built without a
// logger use it, and so does the full-screen terminal when --verbose is off.
type NullLogger struct{}

// NewNullLogger returns the logger sessions use when nothing should be logged.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...any) {}

func (*NullLogger) Info(string, ...any) {}

func (*NullLogger) Error(string, ...any) {}
