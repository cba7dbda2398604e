package cli

import (
	"fmt"
	"strings"

	"github.com/Station-Manager/utils"
	"github.com/spf13/cobra"

	"github.com/Station-Manager/runlog"
)

type emitFlags struct {
	config   string
	runName  string
	root     string
	adapter  string
	dir      string
	level    string
	format   string
	console  bool
	logger   string
	msgLevel string
}

func newEmitCmd(reg *runlog.Registry) *cobra.Command {
	var f emitFlags

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Initialize a run log and write one record to it",
		Long: `Initialize a run log for --root and write MESSAGE through the logger
<root>.<logger> at --msg-level. Prints the path of the log file.

Values from --config are used unless the matching flag is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, reg, f, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "YAML file with run_name, root_name, adapter, log_dir, log_level, ...")
	cmd.Flags().StringVar(&f.runName, "run", "", "Run name used in the file name (default: executable name)")
	cmd.Flags().StringVar(&f.root, "root", "", "Root logger namespace")
	cmd.Flags().StringVar(&f.adapter, "adapter", "", "Adapter name appended to the file name")
	cmd.Flags().StringVar(&f.dir, "dir", runlog.DefaultLogDirName, "Log directory")
	cmd.Flags().StringVar(&f.level, "level", "info", "Threshold: debug, info, warning or error")
	cmd.Flags().StringVar(&f.format, "format", runlog.FormatText, "Record format: text or json")
	cmd.Flags().BoolVar(&f.console, "console", false, "Mirror records to stderr")
	cmd.Flags().StringVar(&f.logger, "logger", "cli", "Logger suffix below the root")
	cmd.Flags().StringVar(&f.msgLevel, "msg-level", "info", "Level of the emitted record")

	return cmd
}

func runEmit(cmd *cobra.Command, reg *runlog.Registry, f emitFlags, message string) error {
	var cfg fileConfig
	if f.config != "" {
		loaded, err := loadConfig(f.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) || *dst == "" {
			*dst = val
		}
	}
	override("run", &cfg.RunName, f.runName)
	override("root", &cfg.RootName, f.root)
	override("adapter", &cfg.Adapter, f.adapter)
	override("dir", &cfg.LogDir, f.dir)
	override("level", &cfg.Level, f.level)
	override("format", &cfg.Format, f.format)
	if flags.Changed("console") {
		cfg.Console = f.console
	}

	if cfg.RunName == "" {
		name, err := utils.ExecName(true)
		if err != nil {
			return fmt.Errorf("resolving default run name: %w", err)
		}
		cfg.RunName = name
	}

	level, ok := runlog.Levels[strings.ToLower(f.msgLevel)]
	if !ok {
		return fmt.Errorf("unknown --msg-level %q", f.msgLevel)
	}

	path, err := reg.Initialize(cfg.RunName, cfg.Options)
	if err != nil {
		return err
	}

	if message != "" {
		reg.GetLogger(f.logger, cfg.RootName).WithLevel(level).Msg(message)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
