package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

type ProfileService interface {
	Get(ctx context.Context, userID, name string) (domain.Profile, error)
	Update(ctx context.Context, viewer domain.Viewer, in domain.ProfileUpdate) (domain.Profile, error)
}

// HandleProfile serves GET and PUT on /profile for the calling viewer.
func HandleProfile(svc ProfileService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		var profile domain.Profile
		var err error
		switch r.Method {
		case http.MethodGet:
			profile, err = svc.Get(r.Context(), viewer.UserID, viewer.DisplayName)
		case http.MethodPut:
			var req profileRequest
			if err := decodeJSON(w, r, &req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			profile, err = svc.Update(r.Context(), viewer, domain.ProfileUpdate{
				FullName: req.FullName,
				Phone:    req.Phone,
				Location: req.Location,
				Bio:      req.Bio,
			})
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, profileResponse{
			ID:        profile.ID,
			FullName:  profile.FullName,
			Phone:     profile.Phone,
			Location:  profile.Location,
			Bio:       profile.Bio,
			Role:      string(profile.Role),
			CreatedAt: profile.CreatedAt,
		})
	}
}

type profileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
