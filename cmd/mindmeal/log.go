package mindmeal

import (
	"fmt"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/spf13/cobra"
)

var (
	logMeal     string
	logServings float64
	logDate     string
	logListMeal string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review meals",
}

var logAddCmd = &cobra.Command{
	Use:   "add <food-id>",
	Short: "Log a catalog food for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := refdata.FoodByID(args[0])
		if !ok {
			return apperrors.ErrFoodNotFound
		}
		return withSession(cmd, func(env runEnv) error {
			entry, err := env.app.FoodLogs.Add(env.ctx, item, model.MealType(logMeal), logServings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s x%.1f for %s (%.0f kcal) [%s]\n",
				item.Name, entry.Servings, entry.MealType, item.Calories*entry.Servings, entry.ID)
			return nil
		})
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			date := logDate
			if date == "" {
				date = env.app.FoodLogs.Today()
			}
			var logs []model.FoodLog
			if logListMeal != "" {
				logs = env.app.FoodLogs.ByMealType(model.MealType(logListMeal), date)
			} else {
				logs = env.app.FoodLogs.ByDate(date)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTIME\tMEAL\tFOOD\tSERVINGS\tKCAL")
			for _, l := range logs {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%.1f\t%.0f\n",
					l.ID, l.Timestamp.Local().Format("15:04"), l.MealType, l.FoodItem.Name, l.Servings, l.FoodItem.Calories*l.Servings)
			}
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <log-id>",
	Short: "Remove one log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			removed, err := env.app.FoodLogs.Remove(env.ctx, args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No log entry %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed log entry %s\n", args[0])
			return nil
		})
	},
}

var logClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all of today's log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			n, err := env.app.FoodLogs.ClearToday(env.ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d log entr(ies)\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd, logRemoveCmd, logClearCmd)

	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal: breakfast, lunch, snack or dinner")
	logAddCmd.Flags().Float64Var(&logServings, "servings", 1, "Servings in steps of 0.5")
	_ = logAddCmd.MarkFlagRequired("meal")
	logListCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logListCmd.Flags().StringVar(&logListMeal, "meal", "", "Only this meal")
}
