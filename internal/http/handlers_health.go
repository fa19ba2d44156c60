package httpx

import (
	"io"
	"net/http"

	"github.com/kwakyosong/platform-ui/internal/core"
)

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// readyHandler reports readiness. When a cache backend is configured its
// health is part of the check; without one the process is always ready.
func readyHandler(cache core.CacheRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cache != nil {
			if err := cache.Health(r.Context()); err != nil {
				WriteError(w, ErrorParams{
					Code:    http.StatusServiceUnavailable,
					ErrCode: "cache_unavailable",
					Err:     err,
				})
				return
			}
		}
		healthHandler(w, r)
	}
}
