package mindmeal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mindmeal/mindmeal-cli/internal/config"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type runEnv struct {
	ctx   context.Context
	cfg   *config.Config
	store storage.Store
	app   *service.App
}

var flagKeys = map[string]string{
	"store":        "store.driver",
	"db":           "store.sqlite_path",
	"redis-addr":   "store.redis_addr",
	"postgres-dsn": "store.postgres_dsn",
	"log-level":    "log.level",
}

// loadConfig resolves configuration with persistent flags taking precedence
// and installs the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}
	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Output,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger.Debug("configuration loaded", "store", cfg.Store.Driver, "command", cmd.CommandPath())
	return cfg, nil
}

func withStore(cmd *cobra.Command, run func(env runEnv) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()
	return run(runEnv{ctx: ctx, cfg: cfg, store: store})
}

func withApp(cmd *cobra.Command, run func(env runEnv) error) error {
	return withStore(cmd, func(env runEnv) error {
		env.app = service.New(env.ctx, env.store, service.Options{WaterGoal: env.cfg.Water.Goal})
		return run(env)
	})
}

// withUser runs only while someone is signed in.
func withUser(cmd *cobra.Command, run func(env runEnv) error) error {
	return withApp(cmd, func(env runEnv) error {
		if _, err := env.app.Session.RequireUser(); err != nil {
			return fmt.Errorf("%w (run `mindmeal login` or `mindmeal signup`)", err)
		}
		return run(env)
	})
}

// withSession additionally requires finished onboarding, mirroring the
// app's protected screens.
func withSession(cmd *cobra.Command, run func(env runEnv) error) error {
	return withApp(cmd, func(env runEnv) error {
		if _, err := env.app.Session.RequireOnboarded(); err != nil {
			if errors.Is(err, apperrors.ErrOnboardingIncomplete) {
				return fmt.Errorf("%w (run `mindmeal profile set` then `mindmeal profile complete`)", err)
			}
			return fmt.Errorf("%w (run `mindmeal login` or `mindmeal signup`)", err)
		}
		return run(env)
	})
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
