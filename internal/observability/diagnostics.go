package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// DiagnosticsServer serves the operational endpoints (/healthz, /readyz,
// /metrics) for the duration of an analysis run.
type DiagnosticsServer struct {
	httpServer *http.Server
	bound      net.Addr
}

// NewDiagnosticsServer binds addr and starts serving liveness, readiness
// and Prometheus metrics in a background goroutine. An addr port of 0
// picks a free port; the bound address is available via Addr.
func NewDiagnosticsServer(addr string, metrics *Metrics, checks ...ReadyCheck) (*DiagnosticsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/healthz", HealthHandler())
	mux.Handle("/readyz", ReadyHandler(checks...))
	mux.Handle("/metrics", metrics.Handler())

	var lc net.ListenConfig

	listener, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &http.Server{Handler: mux}

	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Warn("diagnostics server stopped", "error", serveErr)
		}
	}()

	return &DiagnosticsServer{httpServer: server, bound: listener.Addr()}, nil
}

// Addr returns the address the server actually bound.
func (d *DiagnosticsServer) Addr() string {
	return d.bound.String()
}

// Close gracefully drains in-flight requests and stops the server.
func (d *DiagnosticsServer) Close() error {
	if err := d.httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown diagnostics server: %w", err)
	}

	return nil
}
