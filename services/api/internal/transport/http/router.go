package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Services bundles what the router needs to serve the API.
type Services struct {
	Events    EventService
	Reference ReferenceService
	Profiles  interface {
		ProfileService
		ViewerResolver
	}
	Verifier TokenVerifier
}

type RouterOptions struct {
	CORSOrigins    []string
	HealthChecks   []HealthCheck
	RequestTimeout time.Duration
	Logger         logrus.FieldLogger
}

// NewRouter mounts every endpoint and wraps the mux with logging, CORS and
// the request timeout.
func NewRouter(svc Services, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	authed := func(h http.Handler) http.Handler {
		return RequireViewer(h, svc.Verifier, svc.Profiles, logger)
	}

	mux := http.NewServeMux()
	mux.Handle("/health", HealthHandler(opts.HealthChecks, logger))
	mux.Handle("/categories", HandleCategories(svc.Reference, logger))
	mux.Handle("/cities", HandleCities(svc.Reference, logger))
	mux.Handle("/areas", HandleAreas(svc.Reference, logger))
	mux.Handle("/events", authed(HandleEvents(svc.Events, logger)))
	mux.Handle("/events/", authed(HandleEvent(svc.Events, logger)))
	mux.Handle("/profile", authed(HandleProfile(svc.Profiles, logger)))
	mux.Handle("/", NotFoundHandler())

	return RequestLogger(NewCORSPolicy(opts.CORSOrigins).Wrap(Timeout(mux, opts.RequestTimeout)), logger)
}
