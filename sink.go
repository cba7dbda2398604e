package runlog

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// sink is the single output attached to a configured root: a lumberjack
// file plus an optional stderr mirror. The file side is guarded by the
// sink's own lock so a write racing Close is dropped instead of reopening
// the file.
type sink struct {
	path   string
	file   *lumberjack.Logger
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// openSink points file at path and opens it. file must not be in use by
// another open sink.
func openSink(path string, file *lumberjack.Logger, opts Options, level zerolog.Level, stderr io.Writer) (*sink, error) {
	configureFile(file, path, opts)
	s := &sink{path: path, file: file}

	// An empty write opens the file now: appended to if it exists, created otherwise.
	if _, err := s.file.Write(nil); err != nil {
		return nil, &FilesystemError{Op: "open", Path: path, Err: err}
	}

	writers := s.initializeWriters(opts, stderr)
	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	s.logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return s, nil
}

// configureFile only assigns settings that changed; lumberjack's mill
// goroutine reads them without a lock.
func configureFile(f *lumberjack.Logger, path string, opts Options) {
	if f.Filename != path {
		f.Filename = path
	}
	if f.MaxSize != opts.MaxSizeMB {
		f.MaxSize = opts.MaxSizeMB
	}
	if f.MaxBackups != opts.MaxBackups {
		f.MaxBackups = opts.MaxBackups
	}
	if f.MaxAge != opts.MaxAgeDays {
		f.MaxAge = opts.MaxAgeDays
	}
	if f.Compress != opts.Compress {
		f.Compress = opts.Compress
	}
}

func (s *sink) initializeWriters(opts Options, stderr io.Writer) []io.Writer {
	var writers []io.Writer

	if opts.Format == FormatJSON {
		writers = append(writers, s)
	} else {
		writers = append(writers, textWriter(s, true))
	}

	if opts.Console && stderr != nil {
		if opts.Format == FormatJSON {
			writers = append(writers, stderr)
		} else {
			writers = append(writers, textWriter(stderr, !isTerminal(stderr)))
		}
	}

	return writers
}

// textWriter renders "HH:MM:SS LEVEL   logger.name message key=value".
func textWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: RecordTimeLayout,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			LoggerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{LoggerFieldName},
		FormatLevel:   formatLevel,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return len(p), nil
	}
	return s.file.Write(p)
}

// Close is safe to call more than once.
func (s *sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
