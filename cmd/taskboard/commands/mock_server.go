package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskboard/internal/infrastructure/api/fakeapi"
)

// mockServerCmd serves the in-memory backend
var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run an in-memory task board server",
	Long: `Run an in-memory server that speaks the task board REST API.

Useful for trying taskboard without the real backend. Data is lost when the
server stops.

Examples:
  # Terminal 1
  taskboard mock-server --addr :5000

  # Terminal 2
  taskboard --api-url http://localhost:5000 tui`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		seed, _ := cmd.Flags().GetStringSlice("seed")

		backend := fakeapi.New()
		if len(seed) > 0 {
			backend.SeedBoards(seed...)
		}

		server := &http.Server{
			Addr:              addr,
			Handler:           requestLogger(container.Logger, backend.Router()),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx := getContext(cmd)
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		printer.Success("Serving task board API on %s", addr)
		printer.Subtle("Press Ctrl+C to stop")

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("mock server failed: %w", err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		}
	},
}

// requestLogger logs one line per request through zap
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logger.Info("mock request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", r.Header.Get("X-Request-ID")),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func init() {
	rootCmd.AddCommand(mockServerCmd)

	mockServerCmd.Flags().String("addr", ":5000", "Address to listen on")
	mockServerCmd.Flags().StringSlice("seed", []string{"My Board"}, "Boards to create at startup")
}
