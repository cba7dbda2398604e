// Package cli provides the runlog command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Station-Manager/runlog"
)

// NewRootCmd creates the root command bound to the process-wide registry.
func NewRootCmd() *cobra.Command {
	return newRootCmd(runlog.Default())
}

func newRootCmd(reg *runlog.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runlog",
		Short: "Create and inspect per-run log files",
		Long: `runlog sets up timestamped per-run log files the same way the library
does for applications, and lists the files a log directory holds.

Files are named <log_dir>/<run_name>[-<adapter>]-<YYYYMMDD-HHMMSS>.log`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEmitCmd(reg))
	cmd.AddCommand(newLsCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
