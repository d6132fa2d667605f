package dockerutil

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Logger provides the logging operations that library code needs. Callers
// control where and how messages are written, rather than library code
// writing to global state.
type Logger interface {
	// Infof writes a formatted progress message.
	Infof(format string, v ...any)

	// Errorf writes a formatted error message.
	Errorf(format string, v ...any)
}

// ConsoleLogger implements Logger using standard output/error streams.
type ConsoleLogger struct {
	out io.Writer
	err io.Writer
}

// NewConsoleLogger creates a Logger that writes to stdout and stderr.
func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// NewCustomLogger creates a Logger with custom output streams. The out stream
// receives progress messages, while err receives error messages.
func NewCustomLogger(out, err io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		out: out,
		err: err,
	}
}

// Infof writes a formatted progress message to the output stream.
func (l *ConsoleLogger) Infof(format string, v ...any) {
	fmt.Fprintf(l.out, format+"\n", v...)
}

// Errorf writes a formatted error message to the error stream.
func (l *ConsoleLogger) Errorf(format string, v ...any) {
	fmt.Fprintf(l.err, format+"\n", v...)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// ZapLogger adapts a zap logger to the Logger interface for harnesses that
// route output through structured logging.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps the provided zap logger.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}

// Infof logs a formatted message at info level.
func (l *ZapLogger) Infof(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

// Errorf logs a formatted message at error level.
func (l *ZapLogger) Errorf(format string, v ...any) {
	l.sugar.Errorf(format, v...)
}
