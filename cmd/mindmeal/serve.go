package mindmeal

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/api"
	"github.com/mindmeal/mindmeal-cli/internal/auth"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	serveAddr      string
	serveRateLimit int
	serveQuiet     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MindMeal HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			tokens, err := auth.NewTokenService(env.cfg.Server.JWTSecret, env.cfg.Server.TokenTTL)
			if err != nil {
				return fmt.Errorf("server.jwt_secret: %w", err)
			}
			addr := serveAddr
			if addr == "" {
				addr = env.cfg.Server.Addr
			}
			opts := api.Options{RateLimit: serveRateLimit, RateLimitReset: time.Second}
			if !serveQuiet {
				opts.AccessLog = cmd.OutOrStdout()
			}
			server := api.NewApp(env.app, tokens, opts)

			ctx, stop := signal.NotifyContext(env.ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- server.Listen(addr) }()
			logger.Info("api listening", "addr", addr, "store", env.cfg.Store.Driver)
			fmt.Fprintf(cmd.OutOrStdout(), "MindMeal API listening on %s\n", addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown api: %w", err)
			}
			logger.Info("api stopped")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from server.addr)")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 20, "Max requests per second per client, 0 to disable")
	serveCmd.Flags().BoolVar(&serveQuiet, "quiet", false, "Disable the access log")
}
