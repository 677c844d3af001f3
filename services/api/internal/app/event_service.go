package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/notify"
	"github.com/sirupsen/logrus"
)

type EventRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListActiveEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	GetEventForUpdate(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event) error
	UpdateOwnedEvent(ctx context.Context, id, organizerID string, p domain.EventPayload) (bool, error)
	SetEventActive(ctx context.Context, id string, active bool) error
	GetArea(ctx context.Context, id string) (domain.Area, error)
}

type EventService struct {
	repo     EventRepository
	clock    clock.Clock
	loc      *time.Location
	notifier notify.Notifier
	logger   logrus.FieldLogger
}

type EventServiceOption func(*EventService)

// WithLocation sets the zone whose calendar day counts as "today".
func WithLocation(loc *time.Location) EventServiceOption {
	return func(s *EventService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithNotifier publishes an activity notification after each mutation.
func WithNotifier(n notify.Notifier) EventServiceOption {
	return func(s *EventService) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLogger(logger logrus.FieldLogger) EventServiceOption {
	return func(s *EventService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewEventService(repo EventRepository, clk clock.Clock, opts ...EventServiceOption) *EventService {
	svc := &EventService{
		repo:     repo,
		clock:    clk,
		loc:      time.UTC,
		notifier: notify.Discard,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListActiveEvents returns every active event ordered by date and start time.
func (s *EventService) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	return s.repo.ListActiveEvents(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	if !event.IsActive {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

// CreateEvent validates p and stores it as a new active event organized by viewer.
func (s *EventService) CreateEvent(ctx context.Context, viewer domain.Viewer, p domain.EventPayload) (domain.Event, error) {
	if viewer.UserID == "" {
		return domain.Event{}, domain.ErrUnauthorized
	}
	if err := s.validate(ctx, p); err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		ID:                  newID(),
		Title:               p.Title,
		Description:         p.Description,
		SportCategoryID:     p.SportCategoryID,
		OrganizerID:         viewer.UserID,
		CityID:              p.CityID,
		AreaID:              p.AreaID,
		EventDate:           p.EventDate,
		StartTime:           p.StartTime,
		EndTime:             p.EndTime,
		Venue:               p.Venue,
		MaxParticipants:     p.MaxParticipants,
		CurrentParticipants: 0,
		SkillLevel:          p.SkillLevel,
		ContactInfo:         p.ContactInfo,
		IsActive:            true,
		CreatedAt:           s.clock.Now(),
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}

	s.logger.WithFields(logrus.Fields{"event_id": event.ID, "user_id": viewer.UserID}).Info("event created")
	s.notifier.Notify(notify.Notification{
		Title:       "New event",
		Description: fmt.Sprintf("%s on %s at %s", event.Title, event.EventDate, event.Venue),
	})

	stored, err := s.repo.GetEvent(ctx, event.ID)
	if err != nil {
		// The insert committed; fall back to the record without display names.
		s.logger.WithError(err).WithField("event_id", event.ID).Warn("reload created event")
		return event, nil
	}
	return stored, nil
}

// UpdateEvent replaces the fields of an active event owned by viewer. ownerID,
// when set, must name the viewer.
func (s *EventService) UpdateEvent(ctx context.Context, viewer domain.Viewer, id, ownerID string, p domain.EventPayload) error {
	if viewer.UserID == "" {
		return domain.ErrUnauthorized
	}
	if ownerID != "" && ownerID != viewer.UserID {
		return domain.ErrForbidden
	}
	if err := s.validate(ctx, p); err != nil {
		return err
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		updated, err := s.repo.UpdateOwnedEvent(txCtx, id, viewer.UserID, p)
		if err != nil {
			return err
		}
		if updated {
			return nil
		}
		existing, err := s.repo.GetEvent(txCtx, id)
		if err != nil {
			return err
		}
		if !existing.IsActive {
			return domain.ErrEventNotFound
		}
		return domain.ErrForbidden
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"event_id": id, "user_id": viewer.UserID}).Info("event updated")
	s.notifier.Notify(notify.Notification{
		Title:       "Event updated",
		Description: fmt.Sprintf("%s on %s at %s", p.Title, p.EventDate, p.Venue),
	})
	return nil
}

// RetireEvent soft-deletes an event. The organizer and admins may retire;
// retiring an inactive event is a no-op.
func (s *EventService) RetireEvent(ctx context.Context, viewer domain.Viewer, id string) error {
	if viewer.UserID == "" {
		return domain.ErrUnauthorized
	}

	var title string
	var changed bool
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEventForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanManage(event, viewer) {
			return domain.ErrForbidden
		}
		if !event.IsActive {
			return nil
		}
		title = event.Title
		changed = true
		return s.repo.SetEventActive(txCtx, id, false)
	})
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	s.logger.WithFields(logrus.Fields{"event_id": id, "user_id": viewer.UserID}).Info("event retired")
	s.notifier.Notify(notify.Notification{
		Title:       "Event cancelled",
		Description: title,
	})
	return nil
}

func (s *EventService) validate(ctx context.Context, p domain.EventPayload) error {
	violations := domain.Validate(p.Draft(), clock.Today(s.clock, s.loc))

	if p.CityID != "" && p.AreaID != "" {
		area, err := s.repo.GetArea(ctx, p.AreaID)
		switch {
		case errors.Is(err, domain.ErrAreaNotFound), errors.Is(err, domain.ErrInvalidID):
			violations = append(violations, domain.MsgAreaCityMismatch)
		case err != nil:
			return err
		case area.CityID != p.CityID:
			violations = append(violations, domain.MsgAreaCityMismatch)
		}
	}
	return domain.CheckDraft(violations)
}
