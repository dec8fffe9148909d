package mindmeal

import (
	"fmt"

	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored data for corrupt records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(env runEnv) error {
			report, err := service.RunDoctor(env.ctx, env.store, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "KEY\tPRESENT\tSTATUS")
			for _, c := range report.Checks {
				status := "ok"
				switch {
				case c.Removed:
					status = "removed: " + c.Problem
				case !c.Valid:
					status = "corrupt: " + c.Problem
				}
				fmt.Fprintf(out, "%s\t%t\t%s\n", c.Key, c.Present, status)
			}
			fmt.Fprintf(out, "Corrupt keys: %d\n", report.CorruptKeys)
			if doctorFix {
				fmt.Fprintf(out, "Fixed keys: %d\n", report.FixedKeys)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(env.ctx, env.store, false)
				if err != nil {
					return err
				}
			}
			if report.CorruptKeys > 0 {
				return fmt.Errorf("doctor found integrity issues (run with --fix to remove corrupt keys)")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Remove corrupt keys so they read as empty")
}
