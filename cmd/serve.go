package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"ytnotes/internal/server"
)

// Serve starts the HTTP API and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	host := r.config.Server.Host
	if h := cmd.String("host"); h != "" {
		host = h
	}
	port := r.config.Server.Port
	if p := int(cmd.Int("port")); p != 0 {
		port = p
	}

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger), server.JSON())
	router.Handler(server.NewNotesHandler(r.engine))

	addr := fmt.Sprintf("%s:%d", host, port)
	// CORS wraps the whole router so preflight requests are answered before
	// method matching can reject them.
	srv := &http.Server{Addr: addr, Handler: server.CORS()(router)}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
