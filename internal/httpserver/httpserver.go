package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"shareit/internal/middleware"
	"shareit/pkg/log"
)

// Handler builds the routes and returns the CORS-wrapped engine.
func (srv HTTPServer) Handler() (http.Handler, error) {
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return middleware.CORS(srv.allowedOrigins, srv.gin), nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv HTTPServer) Run(ctx context.Context) error {
	handler, err := srv.Handler()
	if err != nil {
		return err
	}
	return Serve(ctx, srv.l, srv.port, handler)
}

// Serve runs handler on port until ctx is cancelled and shuts down gracefully.
func Serve(ctx context.Context, l log.Logger, port int, handler http.Handler) error {
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver shutdown: %w", err)
	}
	return <-errCh
}
