package runlog

import "github.com/rs/zerolog"

// Logger is a named node in a root's hierarchy. It holds no sink of its own:
// every record goes to the sink of the nearest configured root, looked up
// when the record is created, so a Logger obtained before Initialize starts
// writing as soon as its root is initialized.
type Logger struct {
	name     string
	registry *Registry
}

// Name returns the dotted logger name, e.g. "spl_flow.nodes.text2spl".
func (l *Logger) Name() string { return l.name }

// Enabled reports whether a record at level would currently be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	_, ok := l.target(level)
	return ok
}

func (l *Logger) target(level zerolog.Level) (*sink, bool) {
	root := l.registry.resolve(l.name)
	if root == nil || zerolog.Level(root.level.Load()) > level {
		return nil, false
	}
	s := root.sink.Load()
	if s == nil {
		return nil, false
	}
	return s, true
}

func (l *Logger) newEvent(level zerolog.Level) LogEvent {
	s, ok := l.target(level)
	if !ok {
		return newLogEvent(nil)
	}
	return newLogEvent(s.logger.WithLevel(level).Str(LoggerFieldName, l.name))
}

// WithLevel starts a record at an arbitrary level.
func (l *Logger) WithLevel(level zerolog.Level) LogEvent { return l.newEvent(level) }

func (l *Logger) DebugWith() LogEvent { return l.newEvent(zerolog.DebugLevel) }
func (l *Logger) InfoWith() LogEvent  { return l.newEvent(zerolog.InfoLevel) }
func (l *Logger) WarnWith() LogEvent  { return l.newEvent(zerolog.WarnLevel) }
func (l *Logger) ErrorWith() LogEvent { return l.newEvent(zerolog.ErrorLevel) }

func (l *Logger) Debugf(format string, v ...interface{}) { l.DebugWith().Msgf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})  { l.InfoWith().Msgf(format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})  { l.WarnWith().Msgf(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{}) { l.ErrorWith().Msgf(format, v...) }

// Exception logs at error level with err and its cause chain attached.
func (l *Logger) Exception(err error, format string, v ...interface{}) {
	l.ErrorWith().Err(err).Msgf(format, v...)
}
