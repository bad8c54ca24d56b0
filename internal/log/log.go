// Package log implements a small leveled logger with ordered key value
// context pairs.
package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
)

func (level Level) String() string {
	switch level {
	case Trace:
		return "TRCE"
	case Debug:
		return "DBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "EROR"
	default:
		return "???"
	}
}

type contextKeyValue struct {
	key   string
	value string
}

type settings struct {
	level   Level
	writer  io.Writer
	context []contextKeyValue
}

// Option is the type to specify settings modifiers
// for the logger operation.
type Option func(s *settings)

// SetLevel sets the level for the logger.
// The level defaults to the lowest level, trce.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// SetWriter sets the writer for the logger.
// The writer defaults to os.Stdout.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext adds a context key value pair for the logger.
// Pairs are logged in the order they were added.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.context = append(s.context, contextKeyValue{key: key, value: value})
	}
}

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings  settings
	stdLogger *stdlog.Logger
	mutex     *sync.Mutex // pointer for child loggers
}

// New creates a new logger.
func New(options ...Option) *Logger {
	s := settings{writer: os.Stdout}
	for _, option := range options {
		option(&s)
	}

	return &Logger{
		settings:  s,
		stdLogger: stdlog.New(s.writer, "", stdlog.LstdFlags),
		mutex:     new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// It inherits the parent's settings and context pairs.
func (l *Logger) New(options ...Option) *Logger {
	s := l.settings
	s.context = append([]contextKeyValue(nil), l.settings.context...)
	for _, option := range options {
		option(&s)
	}

	return &Logger{
		settings:  s,
		stdLogger: stdlog.New(s.writer, "", stdlog.LstdFlags),
		mutex:     l.mutex,
	}
}

func (l *Logger) log(logLevel Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.settings.level > logLevel {
		return
	}

	line := logLevel.String() + " " + s
	if len(l.settings.context) > 0 {
		keyValues := make([]string, 0, len(l.settings.context))
		for _, kv := range l.settings.context {
			keyValues = append(keyValues, kv.key+"="+kv.value)
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	const callDepth = 2
	_ = l.stdLogger.Output(callDepth, line)
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }
