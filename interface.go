package runlog

// Leveled is the emission surface of *Logger. Components that only log can
// accept it instead of the concrete type.
type Leveled interface {
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent

	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Exception(err error, format string, v ...interface{})
}

var _ Leveled = (*Logger)(nil)
