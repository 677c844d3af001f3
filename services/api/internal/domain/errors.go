package domain

import (
	"errors"
	"strings"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrAreaNotFound      = errors.New("area not found")
	ErrAreaCityMismatch  = errors.New("selected area does not belong to the selected city")
	ErrReferenceNotFound = errors.New("referenced category, city or area not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrFullNameTooLong   = errors.New("full name must be at most 100 characters")
	ErrBioTooLong        = errors.New("bio must be at most 500 characters")
)

// ValidationError carries every rule a draft violated, in rule order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// CheckDraft returns a *ValidationError when violations is non-empty.
func CheckDraft(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
