package http

import (
	"context"
	"net/http"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

type ReferenceService interface {
	ListCategories(ctx context.Context) ([]domain.SportCategory, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	ListAreas(ctx context.Context, cityID string) ([]domain.Area, error)
}

type namedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type areaResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"city_id"`
}

func HandleCategories(svc ReferenceService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}
		resp := make([]namedResponse, 0, len(categories))
		for _, c := range categories {
			resp = append(resp, namedResponse{ID: c.ID, Name: c.Name})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func HandleCities(svc ReferenceService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		cities, err := svc.ListCities(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}
		resp := make([]namedResponse, 0, len(cities))
		for _, c := range cities {
			resp = append(resp, namedResponse{ID: c.ID, Name: c.Name})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleAreas lists areas, narrowed to one city with ?city_id=.
func HandleAreas(svc ReferenceService, logger logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
		areas, err := svc.ListAreas(r.Context(), r.URL.Query().Get("city_id"))
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}
		resp := make([]areaResponse, 0, len(areas))
		for _, a := range areas {
			resp = append(resp, areaResponse{ID: a.ID, Name: a.Name, CityID: a.CityID})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
