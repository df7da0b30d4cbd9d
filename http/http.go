package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/awantoch/edgebridge/config"
	"github.com/awantoch/edgebridge/constants"
	"github.com/awantoch/edgebridge/logger"
	"github.com/awantoch/edgebridge/telemetry"
)

const shutdownTimeout = 10 * time.Second

// Addr is the listen address for cfg's local server.
func Addr(cfg *config.Config) string {
	host, port := constants.DefaultHTTPHost, constants.DefaultHTTPPort
	if cfg != nil {
		if cfg.HTTP.Host != "" {
			host = cfg.HTTP.Host
		}
		if cfg.HTTP.Port != 0 {
			port = cfg.HTTP.Port
		}
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// StartServer serves h on the configured address until ctx is done, the way the
// host would invoke it: h receives every request unchanged. When metrics.addr is
// set, Prometheus metrics are served on that separate listener.
func StartServer(ctx context.Context, cfg *config.Config, h http.Handler) error {
	if h == nil {
		return errors.New("no application to serve")
	}
	servers := []*http.Server{{
		Addr:              Addr(cfg),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if cfg != nil && cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle(constants.PathMetrics, telemetry.MetricsHandler())
		servers = append(servers, &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		})
	}
	return serve(ctx, servers...)
}

func serve(ctx context.Context, servers ...*http.Server) error {
	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			shutdown(servers...)
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		logger.Info("listening on %s", ln.Addr())
		go func(srv *http.Server, ln net.Listener) {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv, ln)
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down local server")
		return shutdown(servers...)
	case err := <-errCh:
		shutdown(servers...)
		return err
	}
}

func shutdown(servers ...*http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
