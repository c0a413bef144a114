package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// String builds a Field carrying a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds a Field carrying an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a Field carrying a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 builds a Field carrying a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err builds a Field named "error" carrying err, which may be nil.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging surface used throughout the kernel. It stays
// field-based rather than Printf-only so call sites can attach structured
// context (operand lengths, prime indices, transform sizes) without
// building format strings by hand. Warn is used by the multiplication
// dispatcher when NTT convolution declines a size and falls back to
// Karatsuba.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger builds a ZerologAdapter writing to w, tagging every line with
// component.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger builds a ZerologAdapter writing console-formatted
// output to stderr, suitable for interactive use.
func NewDefaultLogger() Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return NewZerologAdapter(zl)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		case nil:
			e = e.Interface(f.Key, nil)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// Debug logs msg at debug level with the given fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Info logs msg at info level with the given fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Warn logs msg at warn level with the given fields.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.zl.Warn(), fields).Msg(msg)
}

// Error logs msg at error level, attaching err and the given fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.zl.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments, space-separated, at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// log.Logger, for callers that do not want a zerolog dependency in their
// own output path (e.g. plain CLI tooling built on top of this module).
type StdLoggerAdapter struct {
	std *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(std *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{std: std}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return s
}

// Debug logs msg at debug level with the given fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.std.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Info logs msg at info level with the given fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.std.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Warn logs msg at warn level with the given fields.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) {
	a.std.Printf("[WARN] %s%s", msg, formatFields(fields))
}

// Error logs msg at error level, attaching err and the given fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.std.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.std.Printf(format, args...)
}

// Println logs its arguments, space-separated.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.std.Println(args...)
}

// nopLogger discards everything. Used as the default logger for dispatch
// paths that have no caller-supplied Logger, so the hot multiplication
// path never pays for I/O.
type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)        {}
func (nopLogger) Info(string, ...Field)         {}
func (nopLogger) Warn(string, ...Field)         {}
func (nopLogger) Error(string, error, ...Field) {}
func (nopLogger) Printf(string, ...any)         {}
func (nopLogger) Println(...any)                {}

// Nop returns a Logger that discards all output.
func Nop() Logger { return nopLogger{} }
