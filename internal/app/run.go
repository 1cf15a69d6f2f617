package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/riskibarqy/fut-draft/internal/config"
	"github.com/riskibarqy/fut-draft/internal/observability"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

// StartObservability enables tracing, profiling and the pprof side server as configured and
// returns one function that stops all of them.
func StartObservability(cfg config.Config, logger *logging.Logger) (func(context.Context), error) {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	pprofServer := observability.StartPprofServer(cfg, logger)

	return func(ctx context.Context) {
		if err := observability.StopPprofServer(ctx, pprofServer, logger); err != nil {
			logger.Warn("stop pprof server failed", "error", err)
		}
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope failed", "error", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace failed", "error", err)
		}
	}, nil
}

// Serve runs srv until ctx is cancelled and then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, name string, logger *logging.Logger) error {
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", name, err)
	}
	return serveListener(ctx, srv, listener, name, logger)
}

func serveListener(ctx context.Context, srv *http.Server, listener net.Listener, name string, logger *logging.Logger) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("server starting", "server", name, "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s server failed: %w", name, err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s graceful shutdown failed: %w", name, err)
		}
		logger.Info("server stopped", "server", name)
		return nil
	})

	return group.Wait()
}
