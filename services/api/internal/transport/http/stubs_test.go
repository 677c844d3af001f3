package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/auth"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/logging"
)

const (
	ownerID   = "11111111-1111-1111-1111-111111111111"
	otherID   = "22222222-2222-2222-2222-222222222222"
	adminID   = "33333333-3333-3333-3333-333333333333"
	testToken = "valid-token"
)

var quietLogger = logging.NewWithOutput(io.Discard, "error", "text")

type stubEvents struct {
	events []domain.Event
	err    error

	created  domain.EventPayload
	updateID string
	ownerID  string
	updated  domain.EventPayload
	retired  string
	viewer   domain.Viewer
}

func (s *stubEvents) ListActiveEvents(context.Context) ([]domain.Event, error) {
	return s.events, s.err
}

func (s *stubEvents) GetEvent(_ context.Context, id string) (domain.Event, error) {
	if s.err != nil {
		return domain.Event{}, s.err
	}
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, domain.ErrEventNotFound
}

func (s *stubEvents) CreateEvent(_ context.Context, viewer domain.Viewer, p domain.EventPayload) (domain.Event, error) {
	s.viewer, s.created = viewer, p
	if s.err != nil {
		return domain.Event{}, s.err
	}
	return domain.Event{ID: "new-event", Title: p.Title, OrganizerID: viewer.UserID, IsActive: true}, nil
}

func (s *stubEvents) UpdateEvent(_ context.Context, viewer domain.Viewer, id, ownerID string, p domain.EventPayload) error {
	s.viewer, s.updateID, s.ownerID, s.updated = viewer, id, ownerID, p
	return s.err
}

func (s *stubEvents) RetireEvent(_ context.Context, viewer domain.Viewer, id string) error {
	s.viewer, s.retired = viewer, id
	return s.err
}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (auth.Identity, error) {
	switch token {
	case testToken:
		return auth.Identity{UserID: ownerID, Name: "Sam"}, nil
	case "admin-token":
		return auth.Identity{UserID: adminID, Name: "Ann"}, nil
	case "other-token":
		return auth.Identity{UserID: otherID}, nil
	}
	return auth.Identity{}, auth.ErrInvalidToken
}

type stubProfiles struct {
	err     error
	updated domain.ProfileUpdate
}

func (s *stubProfiles) ViewerFor(_ context.Context, userID, name string) (domain.Viewer, error) {
	if s.err != nil {
		return domain.Viewer{}, s.err
	}
	role := domain.RoleMember
	if userID == adminID {
		role = domain.RoleAdmin
	}
	return domain.Viewer{UserID: userID, Role: role, DisplayName: name}, nil
}

func (s *stubProfiles) Get(_ context.Context, userID, name string) (domain.Profile, error) {
	if s.err != nil {
		return domain.Profile{}, s.err
	}
	return domain.Profile{ID: userID, FullName: name, Role: domain.RoleMember}, nil
}

func (s *stubProfiles) Update(_ context.Context, viewer domain.Viewer, in domain.ProfileUpdate) (domain.Profile, error) {
	s.updated = in
	if len(in.Bio) > 500 {
		return domain.Profile{}, domain.ErrBioTooLong
	}
	return domain.Profile{ID: viewer.UserID, FullName: in.FullName, Bio: in.Bio, Role: viewer.Role}, nil
}

type stubReference struct {
	err    error
	cityID string
}

func (s *stubReference) ListCategories(context.Context) ([]domain.SportCategory, error) {
	return []domain.SportCategory{{ID: "basketball", Name: "Basketball"}}, s.err
}

func (s *stubReference) ListCities(context.Context) ([]domain.City, error) {
	return []domain.City{{ID: "NYC", Name: "New York"}, {ID: "SF", Name: "San Francisco"}}, s.err
}

func (s *stubReference) ListAreas(_ context.Context, cityID string) ([]domain.Area, error) {
	s.cityID = cityID
	all := []domain.Area{
		{ID: "Manhattan", Name: "Manhattan", CityID: "NYC"},
		{ID: "Mission", Name: "Mission", CityID: "SF"},
	}
	if cityID == "" {
		return all, s.err
	}
	return domain.FilterAreas(all, cityID), s.err
}

func newTestRouter(events *stubEvents, profiles *stubProfiles, ref *stubReference) http.Handler {
	return NewRouter(Services{
		Events:    events,
		Reference: ref,
		Profiles:  profiles,
		Verifier:  stubVerifier{},
	}, RouterOptions{Logger: quietLogger})
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}
