package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

// EventService is the subset of app.EventService the event endpoints use.
type EventService interface {
	ListActiveEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, viewer domain.Viewer, p domain.EventPayload) (domain.Event, error)
	UpdateEvent(ctx context.Context, viewer domain.Viewer, id, ownerID string, p domain.EventPayload) error
	RetireEvent(ctx context.Context, viewer domain.Viewer, id string) error
}

// HandleEvents serves GET and POST on /events. It expects RequireViewer
// upstream.
func HandleEvents(svc EventService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, ok := viewerFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		switch r.Method {
		case http.MethodGet:
			events, err := svc.ListActiveEvents(r.Context())
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			resp := make([]eventResponse, 0, len(events))
			for _, event := range events {
				resp = append(resp, newEventResponse(event, viewer))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req eventRequest
			if err := decodeJSON(w, r, &req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			event, err := svc.CreateEvent(r.Context(), viewer, req.payload())
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			writeJSON(w, http.StatusCreated, newEventResponse(event, viewer))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleEvent serves GET, PUT and DELETE on /events/{id}. DELETE retires
// the event; rows are never removed.
func HandleEvent(svc EventService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseEventPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		viewer, ok := viewerFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, domain.ErrUnauthorized.Error())
			return
		}

		switch r.Method {
		case http.MethodGet:
			event, err := svc.GetEvent(r.Context(), id)
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			writeJSON(w, http.StatusOK, newEventResponse(event, viewer))
		case http.MethodPut:
			var req eventRequest
			if err := decodeJSON(w, r, &req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}
			ownerID := r.URL.Query().Get("organizer_id")
			if err := svc.UpdateEvent(r.Context(), viewer, id, ownerID, req.payload()); err != nil {
				writeServiceError(w, logger, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			if err := svc.RetireEvent(r.Context(), viewer, id); err != nil {
				writeServiceError(w, logger, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

func parseEventPath(path string) (string, bool) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] != "events" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type eventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	SportCategoryID string `json:"sport_category_id"`
	CityID          string `json:"city_id"`
	AreaID          string `json:"area_id"`
	EventDate       string `json:"event_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Venue           string `json:"venue"`
	MaxParticipants *int   `json:"max_participants"`
	SkillLevel      string `json:"skill_level,omitempty"`
	ContactInfo     string `json:"contact_info,omitempty"`
}

// payload normalizes the body the same way a form submission is normalized.
func (req eventRequest) payload() domain.EventPayload {
	p := domain.EventDraft{
		Title:           req.Title,
		Description:     req.Description,
		SportCategoryID: strings.TrimSpace(req.SportCategoryID),
		CityID:          strings.TrimSpace(req.CityID),
		AreaID:          strings.TrimSpace(req.AreaID),
		EventDate:       strings.TrimSpace(req.EventDate),
		StartTime:       strings.TrimSpace(req.StartTime),
		EndTime:         strings.TrimSpace(req.EndTime),
		Venue:           req.Venue,
		SkillLevel:      req.SkillLevel,
		ContactInfo:     req.ContactInfo,
	}.Payload()
	p.MaxParticipants = req.MaxParticipants
	return p
}

type eventResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	SportCategoryID     string    `json:"sport_category_id"`
	OrganizerID         string    `json:"organizer_id"`
	CityID              string    `json:"city_id"`
	AreaID              string    `json:"area_id"`
	EventDate           string    `json:"event_date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	Venue               string    `json:"venue"`
	MaxParticipants     *int      `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	SkillLevel          string    `json:"skill_level,omitempty"`
	ContactInfo         string    `json:"contact_info,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	CategoryName        string    `json:"category_name,omitempty"`
	CityName            string    `json:"city_name,omitempty"`
	AreaName            string    `json:"area_name,omitempty"`
	OrganizerName       string    `json:"organizer_name,omitempty"`
	CanManage           bool      `json:"can_manage"`
}

func newEventResponse(e domain.Event, viewer domain.Viewer) eventResponse {
	return eventResponse{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		SportCategoryID:     e.SportCategoryID,
		OrganizerID:         e.OrganizerID,
		CityID:              e.CityID,
		AreaID:              e.AreaID,
		EventDate:           e.EventDate,
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		Venue:               e.Venue,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		SkillLevel:          string(e.SkillLevel),
		ContactInfo:         e.ContactInfo,
		IsActive:            e.IsActive,
		CreatedAt:           e.CreatedAt,
		CategoryName:        e.CategoryName,
		CityName:            e.CityName,
		AreaName:            e.AreaName,
		OrganizerName:       e.OrganizerName,
		CanManage:           domain.CanManage(e, viewer),
	}
}
