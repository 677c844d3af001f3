package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/auth"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidID          = "invalid_id"
	codeValidationFailed   = "validation_failed"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeEventNotFound      = "event_not_found"
	codeProfileNotFound    = "profile_not_found"
	codeTimeout            = "timeout"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error      string   `json:"error"`
	Code       string   `json:"code"`
	Violations []string `json:"violations,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeErrorResponse(w, status, errorResponse{Error: msg, Code: code})
}

func writeErrorResponse(w http.ResponseWriter, status int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(resp)
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps service and repository errors onto the API error
// shape. Unknown errors are logged and reported as internal.
func writeServiceError(w http.ResponseWriter, logger logrus.FieldLogger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrorResponse(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      verr.Error(),
			Code:       codeValidationFailed,
			Violations: verr.Violations,
		})
	case errors.Is(err, domain.ErrReferenceNotFound), errors.Is(err, domain.ErrAreaCityMismatch):
		writeError(w, http.StatusUnprocessableEntity, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrFullNameTooLong), errors.Is(err, domain.ErrBioTooLong):
		writeError(w, http.StatusUnprocessableEntity, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "you can only modify your own events")
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, codeEventNotFound, err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, codeProfileNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, codeTimeout, "request timed out")
	default:
		logger.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
