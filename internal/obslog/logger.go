// Package obslog is the structured logger the core's search algorithms use
// to trace decisions, backtraces, and implications. It keeps the teacher's
// category-method call shape (Circuit/Algorithm/Decision/Backtrack/
// Implication/Frontier, plus Indent/Outdent for nested stages) but backs it
// with github.com/rs/zerolog instead of a hand-rolled writer, so output is
// leveled and structured rather than a fixed printf format.
package obslog

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger with indentation state for nested search
// stages (a decision's backtrace, its implication, its frontier update).
type Logger struct {
	zl     zerolog.Logger
	indent int
}

// New builds a Logger writing to w at the given level. Pass
// zerolog.ConsoleWriter{Out: os.Stdout} for human-readable output, or any
// io.Writer for newline-delimited JSON.
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).With().Timestamp().Logger().Level(level)}
}

// Indent increases the nesting level for subsequent messages.
func (l *Logger) Indent() { l.indent++ }

// Outdent decreases the nesting level, floored at zero.
func (l *Logger) Outdent() {
	if l.indent > 0 {
		l.indent--
	}
}

// ResetIndent zeroes the nesting level.
func (l *Logger) ResetIndent() { l.indent = 0 }

func (l *Logger) emit(level zerolog.Level, component, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if l.indent > 0 {
		msg = strings.Repeat("  ", l.indent) + msg
	}
	ev := l.zl.WithLevel(level)
	if component != "" {
		ev = ev.Str("component", component)
	}
	ev.Msg(msg)
}

func (l *Logger) Error(format string, args ...interface{})   { l.emit(zerolog.ErrorLevel, "", format, args...) }
func (l *Logger) Warning(format string, args ...interface{}) { l.emit(zerolog.WarnLevel, "", format, args...) }
func (l *Logger) Info(format string, args ...interface{})    { l.emit(zerolog.InfoLevel, "", format, args...) }
func (l *Logger) Debug(format string, args ...interface{})   { l.emit(zerolog.DebugLevel, "", format, args...) }
func (l *Logger) Trace(format string, args ...interface{})   { l.emit(zerolog.TraceLevel, "", format, args...) }

// Circuit logs circuit-construction/evaluation events.
func (l *Logger) Circuit(format string, args ...interface{}) {
	l.emit(zerolog.DebugLevel, "circuit", format, args...)
}

// Algorithm logs top-level PODEM search events.
func (l *Logger) Algorithm(format string, args ...interface{}) {
	l.emit(zerolog.DebugLevel, "algorithm", format, args...)
}

// Decision logs a decision-stack push/pop.
func (l *Logger) Decision(format string, args ...interface{}) {
	l.emit(zerolog.DebugLevel, "decision", format, args...)
}

// Backtrack logs a backtrack event.
func (l *Logger) Backtrack(format string, args ...interface{}) {
	l.emit(zerolog.DebugLevel, "backtrack", format, args...)
}

// Implication logs a full-circuit re-evaluation pass.
func (l *Logger) Implication(format string, args ...interface{}) {
	l.emit(zerolog.TraceLevel, "implication", format, args...)
}

// Frontier logs D-frontier recomputation.
func (l *Logger) Frontier(format string, args ...interface{}) {
	l.emit(zerolog.TraceLevel, "frontier", format, args...)
}
