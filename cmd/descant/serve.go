package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	fileAdapter "github.com/aretw0/descant/internal/adapters/file"
	httpAdapter "github.com/aretw0/descant/internal/adapters/http"
	"github.com/aretw0/descant/internal/adapters/memory"
	redisAdapter "github.com/aretw0/descant/internal/adapters/redis"
	"github.com/aretw0/descant/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the descant generator in server mode, exposing a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := appLogger(cmd)

		port, _ := cmd.Flags().GetString("port")
		budget, _ := cmd.Flags().GetInt("budget")

		store, closeStore, err := buildStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		handler := httpAdapter.NewHandler(store,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithStepBudget(budget),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting descant server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			logger.Info("descant server stopped gracefully")
			return nil
		}
	},
}

// buildStore constructs the score store selected by --store.
func buildStore(cmd *cobra.Command) (ports.ScoreStore, func(), error) {
	kind, _ := cmd.Flags().GetString("store")
	noop := func() {}

	switch kind {
	case "memory":
		return memory.NewStore(), noop, nil
	case "file":
		path, _ := cmd.Flags().GetString("store-path")
		return fileAdapter.New(path), noop, nil
	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		password, _ := cmd.Flags().GetString("redis-password")
		db, _ := cmd.Flags().GetInt("redis-db")
		ttl, _ := cmd.Flags().GetDuration("redis-ttl")

		var opts []redisAdapter.Option
		if ttl > 0 {
			opts = append(opts, redisAdapter.WithTTL(ttl))
		}
		store := redisAdapter.New(addr, password, db, opts...)
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown store %q: supported: memory, file, redis", kind)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().IntP("budget", "b", 0, "Default search budget per request (0 = unbounded)")
	serveCmd.Flags().String("store", "memory", "Score store backend: memory, file or redis")
	serveCmd.Flags().String("store-path", "", "Score directory for the file store (default .descant/scores)")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (redis store)")
	serveCmd.Flags().String("redis-password", "", "Redis password (redis store)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number (redis store)")
	serveCmd.Flags().Duration("redis-ttl", 0, "Expiry for stored scores (redis store, 0 = keep forever)")
}
