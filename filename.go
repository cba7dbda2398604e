package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LogFileName returns "<run>[-<adapter>]-<YYYYMMDD-HHMMSS>.log" for t.
func LogFileName(runName, adapter string, t time.Time) string {
	label := runName
	if adapter != emptyString {
		label += "-" + adapter
	}
	return label + "-" + t.Format(FileTimestampLayout) + logFileExt
}

// RunFile is a log file name split back into its parts. Label is
// "<run>[-<adapter>]"; the boundary between run and adapter is not
// recoverable because both may contain dashes.
type RunFile struct {
	Path  string
	Label string
	Time  time.Time
}

// ParseLogFileName splits a base name produced by LogFileName. The time is
// interpreted in the local zone, matching how it was formatted.
func ParseLogFileName(base string) (RunFile, error) {
	name, ok := strings.CutSuffix(base, logFileExt)
	if !ok {
		return RunFile{}, fmt.Errorf("runlog: %q is not a .log file", base)
	}
	// "-" + layout
	if len(name) < len(FileTimestampLayout)+2 {
		return RunFile{}, fmt.Errorf("runlog: %q is too short for a run log name", base)
	}
	stamp := name[len(name)-len(FileTimestampLayout):]
	sep := len(name) - len(FileTimestampLayout) - 1
	if name[sep] != '-' {
		return RunFile{}, fmt.Errorf("runlog: %q has no timestamp separator", base)
	}
	t, err := time.ParseInLocation(FileTimestampLayout, stamp, time.Local)
	if err != nil {
		return RunFile{}, fmt.Errorf("runlog: %q: %w", base, err)
	}
	return RunFile{Path: base, Label: name[:sep], Time: t}, nil
}

// ListRunFiles returns the run log files in dir, newest first. When label is
// set only files whose label equals it or starts with "<label>-" are kept.
// Files not following the naming convention are skipped.
func ListRunFiles(dir, label string) ([]RunFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &FilesystemError{Op: "readdir", Path: dir, Err: err}
	}

	var files []RunFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		rf, err := ParseLogFileName(e.Name())
		if err != nil {
			continue
		}
		if label != emptyString && rf.Label != label && !strings.HasPrefix(rf.Label, label+"-") {
			continue
		}
		rf.Path = filepath.Join(dir, e.Name())
		files = append(files, rf)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Time.Equal(files[j].Time) {
			return files[i].Path > files[j].Path
		}
		return files[i].Time.After(files[j].Time)
	})
	return files, nil
}
