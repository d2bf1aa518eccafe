// Package notify carries user-facing notices (the snackbar of the terminal
// client) from services to whatever surface is presenting them.
package notify

import "go.uber.org/zap"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier emits a single user-facing notice. Implementations must be safe
// for concurrent use.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Func adapts a function to the Notifier interface.
type Func func(message string, severity Severity)

func (f Func) Notify(message string, severity Severity) {
	f(message, severity)
}

// Logger routes notices to a zap logger. Used by the non-interactive CLI
// commands, where there is no panel to show a toast in.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Notify(message string, severity Severity) {
	switch severity {
	case SeverityError:
		l.log.Error(message)
	case SeverityWarning:
		l.log.Warn(message)
	default:
		l.log.Info(message)
	}
}
