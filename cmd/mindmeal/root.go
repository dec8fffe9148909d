package mindmeal

import (
	"fmt"
	"os"

	"github.com/mindmeal/mindmeal-cli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	storeDriver string
	dbPath      string
	redisAddr   string
	postgresDSN string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:           "mindmeal",
	Short:         "mindmeal tracks meals, water and wellbeing from your terminal",
	Long:          "mindmeal is a health companion CLI: profile-driven calorie goals and metrics, an Indian food log, water tracking, rule-based recommendations and a nutrition chat assistant.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to config file (default: <user config dir>/mindmeal/config.yaml)")
	flags.StringVar(&storeDriver, "store", "", "Storage driver: sqlite, redis, postgres or memory")
	flags.StringVar(&dbPath, "db", "", "Path to SQLite database")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for the redis driver")
	flags.StringVar(&postgresDSN, "postgres-dsn", "", "Postgres DSN for the postgres driver")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}
