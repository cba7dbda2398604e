package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Station-Manager/runlog"
)

func newLsCmd() *cobra.Command {
	var dir, run string
	var latest bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List run log files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := runlog.ListRunFiles(dir, run)
			if err != nil {
				return err
			}
			if latest && len(files) > 1 {
				files = files[:1]
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				if _, err := fmt.Fprintf(out, "%s  %-24s  %s\n",
					f.Time.Format("2006-01-02 15:04:05"), f.Label, f.Path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", runlog.DefaultLogDirName, "Log directory")
	cmd.Flags().StringVar(&run, "run", "", "Only files of this run name (adapter variants included)")
	cmd.Flags().BoolVar(&latest, "latest", false, "Print only the newest file")
	return cmd
}
