package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Station-Manager/runlog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reg := runlog.NewRegistry()
	t.Cleanup(func() { _ = reg.Close() })

	cmd := newRootCmd(reg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make(map[string]bool)
	for _, sc := range cmd.Commands() {
		names[sc.Name()] = true
	}
	assert.True(t, names["emit"], "should have emit command")
	assert.True(t, names["ls"], "should have ls command")
}

func TestEmitCmd_FlagDefaults(t *testing.T) {
	emitCmd, _, err := NewRootCmd().Find([]string{"emit"})
	require.NoError(t, err)

	for name, def := range map[string]string{
		"dir":       runlog.DefaultLogDirName,
		"level":     "info",
		"format":    runlog.FormatText,
		"console":   "false",
		"logger":    "cli",
		"msg-level": "info",
	} {
		flag := emitCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, def, flag.DefValue, name)
	}
}

func TestEmit_WritesRecord(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "emit", "--root", "app", "--run", "run", "--adapter", "openrouter",
		"--dir", dir, "--level", "debug", "--logger", "mod", "x=5")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, `^run-openrouter-\d{8}-\d{6}\.log$`, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `INFO\s+app\.mod x=5`, string(data))
}

func TestEmit_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "runlog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`run_name: benchmark
root_name: spl_flow
adapter: claude_cli
log_dir: /nonexistent/overridden
log_level: debug
format: json
`), 0o644))

	out, err := run(t, "emit", "--config", cfgPath, "--dir", dir, "--msg-level", "debug", "hello")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Regexp(t, `^benchmark-claude_cli-\d{8}-\d{6}\.log$`, filepath.Base(path))
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "spl_flow.cli", entry[runlog.LoggerFieldName])
	assert.Equal(t, "hello", entry["message"])
}

func TestEmit_Errors(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, err := run(t, "emit", "--root", "app", "--run", "run", "--dir", t.TempDir(), "--level", "verbose")
		var cfgErr *runlog.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "Level", cfgErr.Field)
	})

	t.Run("invalid message level", func(t *testing.T) {
		_, err := run(t, "emit", "--root", "app", "--run", "run", "--dir", t.TempDir(), "--msg-level", "loud", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "msg-level")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := run(t, "emit", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 2, 15, 14, 30, 22, 0, time.Local)
	for i, n := range []string{
		runlog.LogFileName("run", "openrouter", base),
		runlog.LogFileName("run", "", base.Add(time.Minute)),
		runlog.LogFileName("generate", "", base.Add(2*time.Minute)),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte{byte('a' + i)}, 0o644))
	}

	t.Run("all", func(t *testing.T) {
		out, err := run(t, "ls", "--dir", dir)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "generate-20260215-143222.log")
	})

	t.Run("by run", func(t *testing.T) {
		out, err := run(t, "ls", "--dir", dir, "--run", "run")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "run-20260215-143122.log")
		assert.Contains(t, lines[1], "run-openrouter-20260215-143022.log")
	})

	t.Run("latest", func(t *testing.T) {
		out, err := run(t, "ls", "--dir", dir, "--run", "run", "--latest")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := run(t, "ls", "--dir", filepath.Join(dir, "nope"))
		var fsErr *runlog.FilesystemError
		require.ErrorAs(t, err, &fsErr)
	})
}
