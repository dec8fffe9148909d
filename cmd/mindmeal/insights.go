package mindmeal

import (
	"fmt"

	"github.com/mindmeal/mindmeal-cli/internal/metrics"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/spf13/cobra"
)

var insightsJSON bool

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show BMI, BMR, TDEE, calorie goal, macros and emotional balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(cmd, func(env runEnv) error {
			m := env.app.Session.Metrics()
			if insightsJSON {
				return writeJSON(cmd.OutOrStdout(), m)
			}
			out := cmd.OutOrStdout()
			if _, ok := env.app.Session.Profile(); !ok {
				fmt.Fprintln(out, "No profile yet; showing default estimates.")
			}
			info := metrics.BMICategoryInfo(m.BMICategory)
			diet := metrics.DietType(m.DailyCalorieGoal)
			fmt.Fprintf(out, "BMI: %.1f (%s - %s)\n", m.BMI, info.Label, info.Description)
			fmt.Fprintf(out, "BMR: %d kcal | TDEE: %d kcal\n", m.BMR, m.TDEE)
			fmt.Fprintf(out, "Daily goal: %d kcal (%s: %s)\n", m.DailyCalorieGoal, diet.Type, diet.Description)
			fmt.Fprintf(out, "Macros: P %dg | C %dg | F %dg\n", m.Macros.Protein, m.Macros.Carbs, m.Macros.Fat)
			fmt.Fprintf(out, "Emotional balance: %d/100\n", m.EmotionalBalanceIndex)
			return nil
		})
	},
}

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Show the wellness group your profile falls into",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			c, err := env.app.Session.Cluster()
			if err != nil {
				return err
			}
			if insightsJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Group %d: %s\n", c.ClusterID, c.ClusterName)
			for _, ch := range c.Characteristics {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", ch)
			}
			return nil
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show personalized recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			recs, err := env.app.Session.Recommendations()
			if err != nil {
				return err
			}
			if insightsJSON {
				return writeJSON(cmd.OutOrStdout(), recs)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Confidence: %d%%\n", env.app.Confidence())
			fmt.Fprintln(out, "SCORE\tPRIORITY\tTYPE\tTITLE")
			for _, r := range recs {
				fmt.Fprintf(out, "%.2f\t%s\t%s\t%s\n", r.RelevanceScore, r.Priority, r.Type, r.Title)
				fmt.Fprintf(out, "\t%s\n", r.Description)
			}
			return nil
		})
	},
}

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Meal planning helpers",
}

var mealsSuggestCmd = &cobra.Command{
	Use:       "suggest <breakfast|lunch|snack|dinner>",
	Short:     "Suggest catalog foods for a meal",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"breakfast", "lunch", "snack", "dinner"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			foods, err := env.app.Session.MealSuggestions(model.MealType(args[0]), refdata.AllFoods())
			if err != nil {
				return err
			}
			if insightsJSON {
				return writeJSON(cmd.OutOrStdout(), foods)
			}
			printFoods(cmd.OutOrStdout(), foods)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd, clusterCmd, recommendCmd, mealsCmd)
	mealsCmd.AddCommand(mealsSuggestCmd)
	for _, c := range []*cobra.Command{metricsCmd, clusterCmd, recommendCmd, mealsSuggestCmd} {
		c.Flags().BoolVar(&insightsJSON, "json", false, "Print JSON")
	}
}
