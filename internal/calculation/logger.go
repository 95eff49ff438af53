package calculation

import "log"

// Logger is a minimal logging interface for the calculator.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes through a standard library *log.Logger with a level prefix.
// Debug lines are dropped unless Debug is set.
type StdLogger struct {
	Out   *log.Logger
	Debug bool
}

// NewStdLogger wraps l; a nil l uses log.Default().
func NewStdLogger(l *log.Logger, debug bool) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{Out: l, Debug: debug}
}

func (s *StdLogger) Debugf(format string, args ...any) {
	if s.Debug {
		s.Out.Printf("DEBUG "+format, args...)
	}
}
func (s *StdLogger) Infof(format string, args ...any)  { s.Out.Printf("INFO "+format, args...) }
func (s *StdLogger) Warnf(format string, args ...any)  { s.Out.Printf("WARN "+format, args...) }
func (s *StdLogger) Errorf(format string, args ...any) { s.Out.Printf("ERROR "+format, args...) }
