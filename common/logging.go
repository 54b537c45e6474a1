/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common provides logging shared across the pdf-extract packages.
package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Logger is the interface used for logging throughout pdf-extract.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// Log levels, least important first.
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// DummyLogger discards everything. It is the default logger so that
// importing pdf-extract never produces output unless the caller opts in.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) Trace(format string, args ...interface{})   {}

// IsLogLevel always returns true for DummyLogger so callers don't skip
// building log arguments under the assumption that nothing is logged.
func (DummyLogger) IsLogLevel(level LogLevel) bool { return true }

// ConsoleLogger writes to os.Stdout at or below its configured LogLevel.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger returns a ConsoleLogger at the given level.
func NewConsoleLogger(level LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: level}
}

func (l ConsoleLogger) IsLogLevel(level LogLevel) bool { return l.LogLevel >= level }

func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		output(os.Stdout, "[ERROR] ", format, args...)
	}
}

func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		output(os.Stdout, "[WARNING] ", format, args...)
	}
}

func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		output(os.Stdout, "[NOTICE] ", format, args...)
	}
}

func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		output(os.Stdout, "[INFO] ", format, args...)
	}
}

func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		output(os.Stdout, "[DEBUG] ", format, args...)
	}
}

func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		output(os.Stdout, "[TRACE] ", format, args...)
	}
}

// WriterLogger is a Logger that writes to an arbitrary io.Writer, useful for
// capturing interpreter diagnostics in tests or CLI verbose mode.
type WriterLogger struct {
	LogLevel LogLevel
	Output   io.Writer
}

// NewWriterLogger returns a WriterLogger at the given level.
func NewWriterLogger(level LogLevel, w io.Writer) *WriterLogger {
	return &WriterLogger{LogLevel: level, Output: w}
}

func (l WriterLogger) IsLogLevel(level LogLevel) bool { return l.LogLevel >= level }

func (l WriterLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		output(l.Output, "[ERROR] ", format, args...)
	}
}

func (l WriterLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		output(l.Output, "[WARNING] ", format, args...)
	}
}

func (l WriterLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		output(l.Output, "[NOTICE] ", format, args...)
	}
}

func (l WriterLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		output(l.Output, "[INFO] ", format, args...)
	}
}

func (l WriterLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		output(l.Output, "[DEBUG] ", format, args...)
	}
}

func (l WriterLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		output(l.Output, "[TRACE] ", format, args...)
	}
}

// output writes a prefixed, source-located log line, mirroring the format
// unipdf-style loggers use so log output from this module reads the same
// whether it comes from the interpreter, the font decoders or the sinks.
func output(w io.Writer, prefix, format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	} else {
		file = filepath.Base(file)
	}
	fmt.Fprintf(w, prefix+"%s:%d "+format+"\n", append([]interface{}{file, line}, args...)...)
}

// Log is the package-level logger used by pdf-extract. It defaults to
// DummyLogger so importing the library is silent unless SetLogger is called.
var Log Logger = DummyLogger{}

// SetLogger installs logger as the library-wide logger.
func SetLogger(logger Logger) {
	Log = logger
}
