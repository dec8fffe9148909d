package mindmeal

import (
	"fmt"
	"io"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/spf13/cobra"
)

var foodsCategory string

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Browse the food catalog",
}

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := refdata.AllFoods()
		if foodsCategory != "" {
			foods = refdata.FoodsByCategory(model.FoodCategory(foodsCategory))
		}
		printFoods(cmd.OutOrStdout(), foods)
		return nil
	},
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by English or Hindi name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods := refdata.SearchFoods(args[0])
		if len(foods) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No foods match %q\n", args[0])
			return nil
		}
		printFoods(cmd.OutOrStdout(), foods)
		return nil
	},
}

var foodsShowCmd = &cobra.Command{
	Use:   "show <food-id>",
	Short: "Show nutrition for one food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, ok := refdata.FoodByID(args[0])
		if !ok {
			return apperrors.ErrFoodNotFound
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", f.Name, valueOr(f.NameHindi, "-"))
		fmt.Fprintf(out, "ID: %s | Category: %s\n", f.ID, f.Category)
		fmt.Fprintf(out, "Serving: %s (%.0fg)\n", f.ServingSize, f.ServingGrams)
		fmt.Fprintf(out, "Calories: %.0f kcal\n", f.Calories)
		fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg | Fiber %.1fg\n", f.Protein, f.Carbs, f.Fat, f.Fiber)
		return nil
	},
}

func printFoods(w io.Writer, foods []model.FoodItem) {
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSERVING\tKCAL\tP\tC\tF")
	for _, f := range foods {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n", f.ID, f.Name, f.Category, f.ServingSize, f.Calories, f.Protein, f.Carbs, f.Fat)
	}
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.AddCommand(foodsListCmd, foodsSearchCmd, foodsShowCmd)
	foodsListCmd.Flags().StringVar(&foodsCategory, "category", "", "Filter by category (breakfast, grain, protein, ...)")
}
