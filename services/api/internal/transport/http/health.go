package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency the API cannot serve without.
type HealthCheck struct {
	Name  string
	Probe func(context.Context) error
}

// HealthHandler answers "ok" when every probe passes and 503 naming the
// first failing dependency otherwise. With no probes it is a liveness check.
func HealthHandler(checks []HealthCheck, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		for _, check := range checks {
			if err := check.Probe(ctx); err != nil {
				logger.WithError(err).WithField("dependency", check.Name).Warn("health check failed")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(check.Name + " unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
