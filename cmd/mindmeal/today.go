package mindmeal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	todayJSON   bool
	historyDays int
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, water and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			status := env.app.TodaySummary()
			if todayJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}
			out := cmd.OutOrStdout()
			s := status.Stats
			fmt.Fprintf(out, "Date: %s\n", s.Date)
			fmt.Fprintf(out, "Intake: %.0f / %d kcal (%.0f%%)\n", s.CaloriesConsumed, s.CalorieGoal, status.ProgressPercent)
			fmt.Fprintf(out, "Remaining: %.0f kcal\n", status.RemainingCalories)
			fmt.Fprintf(out, "Macros: P %.1f/%dg | C %.1f/%dg | F %.1f/%dg\n",
				s.Protein, status.Macros.Protein, s.Carbs, status.Macros.Carbs, s.Fat, status.Macros.Fat)
			fmt.Fprintf(out, "Water: %d/%d glasses\n", s.Water, status.WaterGoal)
			if !status.HasProfile {
				fmt.Fprintln(out, "Goal: default estimate (run `mindmeal profile set`)")
			}
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show daily calories for recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			days, err := env.app.CalorieHistory(historyDays)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tDATE\tKCAL")
			for _, d := range days {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\n", d.Day, d.Date, d.Calories)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd, historyCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print JSON")
	historyCmd.Flags().IntVar(&historyDays, "days", 7, "Number of days to show, ending today")
}
