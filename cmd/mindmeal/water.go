package mindmeal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track glasses of water for today",
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			printWater(cmd, env.app.Water.Glasses(), env.app.Water.Goal())
			return nil
		})
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one glass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			n, err := env.app.Water.Add(env.ctx)
			if err != nil {
				return err
			}
			printWater(cmd, n, env.app.Water.Goal())
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove one glass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(env runEnv) error {
			n, err := env.app.Water.Remove(env.ctx)
			if err != nil {
				return err
			}
			printWater(cmd, n, env.app.Water.Goal())
			return nil
		})
	},
}

func printWater(cmd *cobra.Command, glasses, goal int) {
	bar := strings.Repeat("#", glasses) + strings.Repeat(".", goal-glasses)
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses [%s]\n", glasses, goal, bar)
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterShowCmd, waterAddCmd, waterRemoveCmd)
}
