package http

import (
	"context"
	"net/http"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/auth"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

// TokenVerifier turns a bearer token into a verified identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// ViewerResolver loads the stored role for a verified identity.
type ViewerResolver interface {
	ViewerFor(ctx context.Context, userID, name string) (domain.Viewer, error)
}

type viewerKey struct{}

// RequireViewer rejects requests without a valid bearer token and stores
// the resolved viewer on the request context.
func RequireViewer(next http.Handler, verifier TokenVerifier, viewers ViewerResolver, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
			return
		}
		viewer, err := viewers.ViewerFor(r.Context(), identity.UserID, identity.Name)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, viewer)))
	})
}

func viewerFromContext(ctx context.Context) (domain.Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(domain.Viewer)
	return v, ok && v.UserID != ""
}
