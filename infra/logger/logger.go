package logger

import corelogger "github.com/kilianp07/chargeslot/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.Nop

// New returns a Logger for the given component. The output format is
// selected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}

// NewSession returns a Logger for component tagged with a session id.
func NewSession(component, session string) Logger {
	return NewZerologLogger(component).(*ZerologLogger).With("session", session)
}
