package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KuroiKoyani/pareto-chart/pkg/cache"
	"github.com/KuroiKoyani/pareto-chart/pkg/httpapi"
	"github.com/KuroiKoyani/pareto-chart/pkg/pipeline"
)

// serveCommand creates the serve command for running the render API server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		redisDB   int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Run the HTTP render API.

The serve command starts an HTTP server exposing the render pipeline:

  POST /api/render                render a chart and return one artifact
  GET  /api/capabilities/{token}  editable styles and actions for a part
  GET  /healthz                   liveness probe
  GET  /version                   build information

By default stage results are cached on disk. With --redis the cache moves to
a shared Redis instance so multiple server processes reuse each other's work.
The Redis password is read from the REDIS_PASSWORD environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, redisDB, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (host:port) for a shared cache")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis logical database")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is cancelled
// or the listener fails. Cancellation shuts the server down gracefully.
func (c *CLI) runServe(ctx context.Context, addr, redisAddr string, redisDB int, noCache bool) error {
	store, err := serveCache(ctx, redisAddr, redisDB, noCache)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.New(runner, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printInfo("Serving on %s", addr)
	printDetail("Press Ctrl-C to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		printNewline()
		printSuccess("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// serveCache selects the cache backend for the server process.
func serveCache(ctx context.Context, redisAddr string, redisDB int, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		})
	}
	return newCache(false)
}
