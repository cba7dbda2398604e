package runlog

import "fmt"

// ConfigurationError reports an Options or run name value that Initialize
// refuses. No sink is attached and the root's previous state is kept.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == emptyString {
		return fmt.Sprintf("runlog: invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("runlog: invalid configuration: %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FilesystemError reports a failure to create the log directory or to open
// the log file. It is never retried.
type FilesystemError struct {
	Op   string // "mkdir", "open" or "readdir"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("runlog: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
