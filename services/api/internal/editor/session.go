// Package editor holds the client-side state of the events page: the loaded
// lists, the create/edit dialog and the submit workflow.
package editor

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/notify"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const DefaultTimeout = 15 * time.Second

var (
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrFormClosed     = errors.New("no event dialog is open")
)

// Gateway is the remote events API as the session sees it.
type Gateway interface {
	ListActiveEvents(ctx context.Context) ([]domain.Event, error)
	ListCategories(ctx context.Context) ([]domain.SportCategory, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	ListAreas(ctx context.Context) ([]domain.Area, error)
	CreateEvent(ctx context.Context, p domain.EventPayload) (domain.Event, error)
	UpdateEvent(ctx context.Context, id, ownerID string, p domain.EventPayload) error
	SetEventActive(ctx context.Context, id string, active bool) error
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	}
	return "idle"
}

// Form is a snapshot of the create/edit dialog.
type Form struct {
	Open       bool
	EditingID  string
	Draft      domain.EventDraft
	Submitting bool
}

// Editing reports whether the dialog targets an existing event.
func (f Form) Editing() bool {
	return f.EditingID != ""
}

// Session is the state of one signed-in viewer's events page. All methods
// are safe for concurrent use; gateway calls run outside the lock.
type Session struct {
	gateway  Gateway
	viewer   domain.Viewer
	notifier notify.Notifier
	clock    clock.Clock
	loc      *time.Location
	timeout  time.Duration
	logger   logrus.FieldLogger

	mu         sync.Mutex
	events     []domain.Event
	categories []domain.SportCategory
	cities     []domain.City
	areas      []domain.Area
	form       Form
	phase      Phase
}

type Option func(*Session)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLocation sets the zone used to decide what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithTimeout bounds every gateway call. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(gw Gateway, viewer domain.Viewer, opts ...Option) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Session{
		gateway:  gw,
		viewer:   viewer,
		notifier: notify.Discard,
		clock:    clock.NewSystem(),
		loc:      time.Local,
		timeout:  DefaultTimeout,
		logger:   discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Viewer() domain.Viewer {
	return s.viewer
}

// CanManage reports whether edit and delete controls apply to event.
func (s *Session) CanManage(event domain.Event) bool {
	return domain.CanManage(event, s.viewer)
}

// Load fetches events and the three reference lists concurrently and waits
// for all of them. A failed read leaves its list empty and raises an error
// notification; the other lists are still stored.
func (s *Session) Load(ctx context.Context) error {
	var (
		events     []domain.Event
		categories []domain.SportCategory
		cities     []domain.City
		areas      []domain.Area
	)

	var g errgroup.Group
	var eventsErr, catErr, cityErr, areaErr error
	g.Go(func() error {
		events, eventsErr = callWithTimeout(ctx, s.timeout, s.gateway.ListActiveEvents)
		return eventsErr
	})
	g.Go(func() error {
		categories, catErr = callWithTimeout(ctx, s.timeout, s.gateway.ListCategories)
		return catErr
	})
	g.Go(func() error {
		cities, cityErr = callWithTimeout(ctx, s.timeout, s.gateway.ListCities)
		return cityErr
	})
	g.Go(func() error {
		areas, areaErr = callWithTimeout(ctx, s.timeout, s.gateway.ListAreas)
		return areaErr
	})
	err := g.Wait()

	s.mu.Lock()
	s.events = events
	s.categories = categories
	s.cities = cities
	s.areas = areas
	s.mu.Unlock()

	if eventsErr != nil {
		s.logger.WithError(eventsErr).Warn("load events")
		s.notifyError("Error fetching events", eventsErr)
	}
	if refErr := errors.Join(catErr, cityErr, areaErr); refErr != nil {
		s.logger.WithError(refErr).Warn("load reference data")
		s.notifyError("Error fetching reference data", refErr)
	}
	return err
}

// Refresh replaces the event list with the server's current active set.
func (s *Session) Refresh(ctx context.Context) error {
	events, err := callWithTimeout(ctx, s.timeout, s.gateway.ListActiveEvents)
	if err != nil {
		s.logger.WithError(err).Warn("refresh events")
		s.notifyError("Error fetching events", err)
		return err
	}
	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

func (s *Session) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func (s *Session) Categories() []domain.SportCategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SportCategory(nil), s.categories...)
}

func (s *Session) Cities() []domain.City {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.City(nil), s.cities...)
}

func (s *Session) Areas() []domain.Area {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Area(nil), s.areas...)
}

// AvailableAreas returns the areas offered for the draft's current city.
func (s *Session) AvailableAreas() []domain.Area {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FilterAreas(s.areas, s.form.Draft.CityID)
}

func (s *Session) Form() Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) notifyError(title string, err error) {
	s.notifier.Notify(notify.Notification{Title: title, Description: err.Error(), IsError: true})
}

func (s *Session) notifySuccess(title, description string) {
	s.notifier.Notify(notify.Notification{Title: title, Description: description})
}

func callWithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(ctx)
}
