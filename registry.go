package runlog

import (
	stderrs "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rootNode is a logger namespace that Initialize or Disable has configured.
// Records from descendant loggers stop at the nearest configured root.
type rootNode struct {
	name       string
	sink       atomic.Pointer[sink]
	level      atomic.Int32
	configured atomic.Bool

	// mu serializes Initialize, Disable and Close on this root. file is
	// reused by every sink the root gets, so lumberjack's mill goroutine
	// is started once per root.
	mu   sync.Mutex
	file *lumberjack.Logger
}

// detach removes the current sink, if any, and closes it.
func (n *rootNode) detach() error {
	if old := n.sink.Swap(nil); old != nil {
		return old.Close()
	}
	return nil
}

// Registry owns the named logger handles and the sinks attached to roots.
// Most programs use the process-wide registry through the package-level
// functions; tests create their own with NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	roots   map[string]*rootNode
	loggers map[string]*Logger

	now    func() time.Time
	stderr io.Writer
}

func NewRegistry() *Registry {
	return &Registry{
		roots:   make(map[string]*rootNode),
		loggers: make(map[string]*Logger),
		now:     time.Now,
		stderr:  os.Stderr,
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Initialize creates <LogDir>/<runName>[-<Adapter>]-<YYYYMMDD-HHMMSS>.log and
// attaches it to the RootName logger, replacing and closing any sink a
// previous call attached. It returns the absolute path of the file.
//
// An invalid option fails with *ConfigurationError before anything is
// touched. A directory or file failure returns *FilesystemError and leaves
// the root without a sink.
func (r *Registry) Initialize(runName string, opts Options) (string, error) {
	opts = opts.normalize()
	if err := validateOptions(runName, &opts); err != nil {
		return emptyString, err
	}
	level, _ := parseLevel(opts.Level)

	root := r.root(opts.RootName)
	root.mu.Lock()
	defer root.mu.Unlock()

	_ = root.detach()
	root.level.Store(int32(level))
	root.configured.Store(true)

	dir, err := filepath.Abs(opts.LogDir)
	if err != nil {
		return emptyString, &FilesystemError{Op: "mkdir", Path: opts.LogDir, Err: err}
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return emptyString, &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	path := filepath.Join(dir, LogFileName(runName, opts.Adapter, r.now()))

	if root.file == nil {
		root.file = &lumberjack.Logger{LocalTime: true}
	}
	s, err := openSink(path, root.file, opts, level, r.stderr)
	if err != nil {
		return emptyString, err
	}
	root.sink.Store(s)

	return path, nil
}

// GetLogger returns the logger named "<rootName>.<suffix>", or the root
// logger itself when suffix is empty. It is safe to call before Initialize;
// records are dropped until a root above the logger is configured.
func (r *Registry) GetLogger(suffix, rootName string) *Logger {
	return r.Logger(joinName(rootName, suffix))
}

// Logger returns the handle for a full dotted name. The same name always
// yields the same handle.
func (r *Registry) Logger(name string) *Logger {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.loggers[name]; ok {
		return l
	}
	l = &Logger{name: name, registry: r}
	r.loggers[name] = l
	return l
}

// Disable closes the root's sink and silences every logger under it until
// the next Initialize. Calling it on a root that was never initialized is
// fine.
func (r *Registry) Disable(rootName string) {
	root := r.root(rootName)
	root.mu.Lock()
	defer root.mu.Unlock()
	_ = root.detach()
	root.level.Store(int32(zerolog.Disabled))
	root.configured.Store(true)
}

// Close closes every sink the registry holds. Records logged afterwards are
// dropped until the next Initialize.
func (r *Registry) Close() error {
	r.mu.RLock()
	roots := make([]*rootNode, 0, len(r.roots))
	for _, n := range r.roots {
		roots = append(roots, n)
	}
	r.mu.RUnlock()

	var errs []error
	for _, n := range roots {
		n.mu.Lock()
		if err := n.detach(); err != nil {
			errs = append(errs, err)
		}
		n.mu.Unlock()
	}
	return stderrs.Join(errs...)
}

// ActivePath reports the file the root currently writes to.
func (r *Registry) ActivePath(rootName string) (string, bool) {
	r.mu.RLock()
	n, ok := r.roots[rootName]
	r.mu.RUnlock()
	if !ok {
		return emptyString, false
	}
	s := n.sink.Load()
	if s == nil {
		return emptyString, false
	}
	return s.path, true
}

func (r *Registry) root(name string) *rootNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.roots[name]
	if !ok {
		n = &rootNode{name: name}
		r.roots[name] = n
	}
	return n
}

// resolve walks from name towards the top of the hierarchy and returns the
// first configured root, or nil.
func (r *Registry) resolve(name string) *rootNode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for {
		if n, ok := r.roots[name]; ok && n.configured.Load() {
			return n
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return nil
		}
		name = name[:i]
	}
}

func joinName(rootName, suffix string) string {
	if suffix == emptyString {
		return rootName
	}
	return rootName + "." + suffix
}

// Initialize configures rootName on the process-wide registry.
func Initialize(runName string, opts Options) (string, error) {
	return defaultRegistry.Initialize(runName, opts)
}

// GetLogger returns a logger from the process-wide registry.
func GetLogger(suffix, rootName string) *Logger {
	return defaultRegistry.GetLogger(suffix, rootName)
}

// Disable silences rootName on the process-wide registry.
func Disable(rootName string) {
	defaultRegistry.Disable(rootName)
}

// Close closes every sink of the process-wide registry.
func Close() error {
	return defaultRegistry.Close()
}
