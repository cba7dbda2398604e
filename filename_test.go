package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFileName(t *testing.T) {
	at := time.Date(2026, 2, 15, 14, 30, 22, 0, time.Local)

	assert.Equal(t, "run-openrouter-20260215-143022.log", LogFileName("run", "openrouter", at))
	assert.Equal(t, "benchmark-claude_cli-20260215-143022.log", LogFileName("benchmark", "claude_cli", at))
	assert.Equal(t, "generate-20260215-143022.log", LogFileName("generate", "", at))
}

func TestParseLogFileName(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		at := time.Date(2026, 2, 15, 14, 50, 1, 0, time.Local)
		rf, err := ParseLogFileName(LogFileName("run", "openrouter", at))
		require.NoError(t, err)
		assert.Equal(t, "run-openrouter", rf.Label)
		assert.True(t, at.Equal(rf.Time))
	})

	t.Run("rejects foreign names", func(t *testing.T) {
		for _, name := range []string{
			"notes.txt",
			"x.log",
			"run_20260215-143022.log",
			"run-2026021X-143022.log",
			"run-20261399-143022.log",
		} {
			_, err := ParseLogFileName(name)
			assert.Error(t, err, name)
		}
	})
}

func TestListRunFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 2, 15, 14, 0, 0, 0, time.Local)
	names := []string{
		LogFileName("run", "openrouter", base),
		LogFileName("run", "", base.Add(time.Minute)),
		LogFileName("generate", "", base.Add(2*time.Minute)),
		LogFileName("runner", "", base.Add(3*time.Minute)),
		"README.md",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, LogFileName("dir", "", base)), 0o755))

	t.Run("all, newest first", func(t *testing.T) {
		files, err := ListRunFiles(dir, "")
		require.NoError(t, err)
		require.Len(t, files, 4)
		assert.Equal(t, "runner", files[0].Label)
		assert.Equal(t, "generate", files[1].Label)
		assert.Equal(t, "run", files[2].Label)
		assert.Equal(t, "run-openrouter", files[3].Label)
		assert.Equal(t, filepath.Join(dir, names[0]), files[3].Path)
	})

	t.Run("filtered by run name", func(t *testing.T) {
		files, err := ListRunFiles(dir, "run")
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "run", files[0].Label)
		assert.Equal(t, "run-openrouter", files[1].Label)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := ListRunFiles(filepath.Join(dir, "nope"), "")
		var fsErr *FilesystemError
		require.ErrorAs(t, err, &fsErr)
		assert.Equal(t, "readdir", fsErr.Op)
	})
}
