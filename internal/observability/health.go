package observability

import (
	"context"
	"encoding/json"
	"net/http"
)

// ReadyCheck reports whether one subsystem is ready to serve; a nil
// return means ready.
type ReadyCheck func(ctx context.Context) error

// healthResponse is the body of every /healthz and /readyz reply.
type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandler serves liveness checks at /healthz. It unconditionally
// answers 200 with {"status":"ok"}.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		respond(rw, http.StatusOK, "ok")
	})
}

// ReadyHandler serves readiness checks at /readyz, running every check
// in order. The first failure short-circuits to a 503 with
// {"status":"unavailable"}; no checks, or all passing, answers 200.
func ReadyHandler(checks ...ReadyCheck) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		for _, check := range checks {
			if err := check(hr.Context()); err != nil {
				respond(rw, http.StatusServiceUnavailable, "unavailable")

				return
			}
		}

		respond(rw, http.StatusOK, "ok")
	})
}

func respond(rw http.ResponseWriter, code int, status string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	if err := json.NewEncoder(rw).Encode(healthResponse{Status: status}); err != nil {
		return
	}
}
