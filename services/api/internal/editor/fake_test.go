package editor

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/notify"
)

// fakeGateway keeps events in memory and answers the way the API does:
// only active events are listed, soonest first.
type fakeGateway struct {
	mu     sync.Mutex
	rows   []domain.Event
	areas  []domain.Area
	nextID int

	listErr   error
	refErr    error
	createErr error
	updateErr error
	retireErr error

	// block, when set, holds CreateEvent until it is closed.
	block   chan struct{}
	entered chan struct{}

	creates []domain.EventPayload
	updates []string
	retires []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{areas: []domain.Area{
		{ID: "Manhattan", Name: "Manhattan", CityID: "NYC"},
		{ID: "Brooklyn", Name: "Brooklyn", CityID: "NYC"},
		{ID: "Mission", Name: "Mission", CityID: "SF"},
	}}
}

func (g *fakeGateway) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.listErr != nil {
		return nil, g.listErr
	}
	var out []domain.Event
	for _, e := range g.rows {
		if e.IsActive {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate < out[j].EventDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (g *fakeGateway) ListCategories(context.Context) ([]domain.SportCategory, error) {
	if g.refErr != nil {
		return nil, g.refErr
	}
	return []domain.SportCategory{{ID: "basketball", Name: "Basketball"}}, nil
}

func (g *fakeGateway) ListCities(context.Context) ([]domain.City, error) {
	if g.refErr != nil {
		return nil, g.refErr
	}
	return []domain.City{{ID: "NYC", Name: "New York"}, {ID: "SF", Name: "San Francisco"}}, nil
}

func (g *fakeGateway) ListAreas(context.Context) ([]domain.Area, error) {
	if g.refErr != nil {
		return nil, g.refErr
	}
	return g.areas, nil
}

func (g *fakeGateway) CreateEvent(ctx context.Context, p domain.EventPayload) (domain.Event, error) {
	g.mu.Lock()
	g.creates = append(g.creates, p)
	block, entered := g.block, g.entered
	g.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return domain.Event{}, ctx.Err()
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return domain.Event{}, g.createErr
	}
	g.nextID++
	e := domain.Event{
		ID:                  fmt.Sprintf("event-%d", g.nextID),
		Title:               p.Title,
		SportCategoryID:     p.SportCategoryID,
		OrganizerID:         "organizer",
		CityID:              p.CityID,
		AreaID:              p.AreaID,
		EventDate:           p.EventDate,
		StartTime:           p.StartTime,
		EndTime:             p.EndTime,
		Venue:               p.Venue,
		MaxParticipants:     p.MaxParticipants,
		CurrentParticipants: 0,
		IsActive:            true,
	}
	g.rows = append(g.rows, e)
	return e, nil
}

func (g *fakeGateway) UpdateEvent(_ context.Context, id, ownerID string, p domain.EventPayload) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates = append(g.updates, id+"/"+ownerID)
	if g.updateErr != nil {
		return g.updateErr
	}
	for i, e := range g.rows {
		if e.ID == id && e.OrganizerID == ownerID && e.IsActive {
			g.rows[i].Title = p.Title
			g.rows[i].Venue = p.Venue
			return nil
		}
	}
	return fmt.Errorf("you can only modify your own events")
}

func (g *fakeGateway) SetEventActive(_ context.Context, id string, active bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.retires = append(g.retires, id)
	if g.retireErr != nil {
		return g.retireErr
	}
	for i, e := range g.rows {
		if e.ID == id {
			g.rows[i].IsActive = active
			return nil
		}
	}
	return fmt.Errorf("event not found")
}

func (g *fakeGateway) row(id string) (domain.Event, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.rows {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

type recorder struct {
	mu   sync.Mutex
	seen []notify.Notification
}

func (r *recorder) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

func (r *recorder) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Notification(nil), r.seen...)
}

func (r *recorder) last() notify.Notification {
	all := r.all()
	if len(all) == 0 {
		return notify.Notification{}
	}
	return all[len(all)-1]
}
