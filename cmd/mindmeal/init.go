package mindmeal

import (
	"errors"
	"fmt"

	"github.com/mindmeal/mindmeal-cli/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initWriteConfig bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local mindmeal storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(env runEnv) error {
			out := cmd.OutOrStdout()
			switch env.cfg.Store.Driver {
			case "sqlite":
				fmt.Fprintf(out, "Initialized mindmeal database at %s\n", env.cfg.Store.SQLitePath)
			default:
				fmt.Fprintf(out, "Connected to %s store\n", env.cfg.Store.Driver)
			}
			if !initWriteConfig {
				return nil
			}
			path, err := app.DefaultConfigPath()
			if err != nil {
				return err
			}
			if err := app.EnsureDBDir(path); err != nil {
				return err
			}
			v := viper.New()
			v.Set("store.driver", env.cfg.Store.Driver)
			v.Set("store.sqlite_path", env.cfg.Store.SQLitePath)
			v.Set("log.level", env.cfg.Log.Level)
			v.Set("water.goal", env.cfg.Water.Goal)
			if err := v.SafeWriteConfigAs(path); err != nil {
				var exists viper.ConfigFileAlreadyExistsError
				if errors.As(err, &exists) {
					fmt.Fprintf(out, "Config already exists at %s\n", path)
					return nil
				}
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(out, "Wrote config to %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initWriteConfig, "write-config", false, "Write a starter config file if none exists")
}
