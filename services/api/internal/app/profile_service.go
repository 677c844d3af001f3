package app

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	// CreateProfile inserts p unless a profile with the same id exists.
	CreateProfile(ctx context.Context, p domain.Profile) error
	UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) (domain.Profile, error)
}

type ProfileService struct {
	repo  ProfileRepository
	clock clock.Clock
}

func NewProfileService(repo ProfileRepository, clk clock.Clock) *ProfileService {
	return &ProfileService{repo: repo, clock: clk}
}

// Get returns the profile of userID, creating a member profile on first use.
func (s *ProfileService) Get(ctx context.Context, userID, name string) (domain.Profile, error) {
	if userID == "" {
		return domain.Profile{}, domain.ErrUnauthorized
	}
	p, err := s.repo.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{}, err
	}

	if err := s.repo.CreateProfile(ctx, domain.Profile{
		ID:        userID,
		FullName:  strings.TrimSpace(name),
		Role:      domain.RoleMember,
		CreatedAt: s.clock.Now(),
	}); err != nil {
		return domain.Profile{}, err
	}
	return s.repo.GetProfile(ctx, userID)
}

// ViewerFor resolves the acting viewer for a verified identity. The role is
// read from the stored profile.
func (s *ProfileService) ViewerFor(ctx context.Context, userID, name string) (domain.Viewer, error) {
	p, err := s.Get(ctx, userID, name)
	if err != nil {
		return domain.Viewer{}, err
	}
	v := p.Viewer()
	if v.DisplayName == "" {
		v.DisplayName = name
	}
	return v, nil
}

func (s *ProfileService) Update(ctx context.Context, viewer domain.Viewer, in domain.ProfileUpdate) (domain.Profile, error) {
	if viewer.UserID == "" {
		return domain.Profile{}, domain.ErrUnauthorized
	}
	in = domain.ProfileUpdate{
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
		Location: strings.TrimSpace(in.Location),
		Bio:      strings.TrimSpace(in.Bio),
	}
	if utf8.RuneCountInString(in.FullName) > 100 {
		return domain.Profile{}, domain.ErrFullNameTooLong
	}
	if utf8.RuneCountInString(in.Bio) > 500 {
		return domain.Profile{}, domain.ErrBioTooLong
	}

	if _, err := s.Get(ctx, viewer.UserID, viewer.DisplayName); err != nil {
		return domain.Profile{}, err
	}
	return s.repo.UpdateProfile(ctx, viewer.UserID, in)
}
