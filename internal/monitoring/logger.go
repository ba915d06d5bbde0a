// Package monitoring holds the process-wide diagnostic logger.
package monitoring

import (
	"io"
	"log"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf and may
// be replaced with SetLogger, for example to mute the race loop in tests.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil sets a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetOutput points Logf at a standard logger writing to w with the given flags.
func SetOutput(w io.Writer, flags int) {
	SetLogger(log.New(w, "", flags).Printf)
}
