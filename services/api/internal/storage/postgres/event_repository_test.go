package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/testutil"
	"github.com/google/uuid"
)

const (
	organizerID = "11111111-1111-1111-1111-111111111111"
	strangerID  = "22222222-2222-2222-2222-222222222222"
)

func newEvent(ref testutil.Reference, date, start string) domain.Event {
	limit := 10
	return domain.Event{
		ID:              uuid.NewString(),
		Title:           "Pickup game",
		SportCategoryID: ref.CategoryID,
		OrganizerID:     organizerID,
		CityID:          ref.CityID,
		AreaID:          ref.AreaID,
		EventDate:       date,
		StartTime:       start,
		EndTime:         "23:00",
		Venue:           "Court 3",
		MaxParticipants: &limit,
		SkillLevel:      domain.SkillAll,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestEventRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewEventRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	setup := func(t *testing.T) (context.Context, testutil.Reference) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		testutil.InsertProfile(t, ctx, pool, organizerID, "Sam Lee", "member")
		testutil.InsertProfile(t, ctx, pool, strangerID, "", "member")
		return ctx, testutil.InsertReference(t, ctx, pool)
	}

	t.Run("CreateEvent and GetEvent round trip with display names", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		event.Description = ""
		event.ContactInfo = "sam@example.com"

		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.EventDate != "2030-06-01" || got.StartTime != "18:00" || got.EndTime != "23:00" {
			t.Fatalf("unexpected schedule: %+v", got)
		}
		if got.CategoryName != "Basketball" || got.CityName != "New York" || got.AreaName != "Manhattan" || got.OrganizerName != "Sam Lee" {
			t.Fatalf("unexpected names: %+v", got)
		}
		if got.MaxParticipants == nil || *got.MaxParticipants != 10 || got.CurrentParticipants != 0 {
			t.Fatalf("unexpected participants: %+v", got)
		}
		if got.Description != "" || got.ContactInfo != "sam@example.com" || got.SkillLevel != domain.SkillAll {
			t.Fatalf("unexpected optional fields: %+v", got)
		}
	})

	t.Run("CreateEvent stores an unlimited event", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		event.MaxParticipants = nil
		event.SkillLevel = ""
		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := repo.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.MaxParticipants != nil || got.SkillLevel != "" {
			t.Fatalf("expected unset optional fields, got %+v", got)
		}
	})

	t.Run("CreateEvent rejects an area from another city", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		event.AreaID = ref.OtherAreaID
		if err := repo.CreateEvent(ctx, event); !errors.Is(err, domain.ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("GetEvent maps missing and malformed ids", func(t *testing.T) {
		ctx, _ := setup(t)
		if _, err := repo.GetEvent(ctx, uuid.NewString()); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
		if _, err := repo.GetEvent(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("ListActiveEvents orders by date then start time and skips retired", func(t *testing.T) {
		ctx, ref := setup(t)
		late := newEvent(ref, "2030-06-02", "09:00")
		evening := newEvent(ref, "2030-06-01", "19:00")
		morning := newEvent(ref, "2030-06-01", "08:00")
		retired := newEvent(ref, "2030-05-01", "08:00")
		retired.IsActive = false
		for _, e := range []domain.Event{late, evening, morning, retired} {
			if err := repo.CreateEvent(ctx, e); err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		events, err := repo.ListActiveEvents(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		want := []string{morning.ID, evening.ID, late.ID}
		if len(events) != len(want) {
			t.Fatalf("expected %d events, got %d", len(want), len(events))
		}
		for i, id := range want {
			if events[i].ID != id {
				t.Fatalf("position %d: expected %s, got %s", i, id, events[i].ID)
			}
		}
	})

	t.Run("UpdateOwnedEvent only matches the organizer", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create: %v", err)
		}
		payload := event.Draft().Payload()
		payload.Title = "Evening run"
		payload.MaxParticipants = nil

		ok, err := repo.UpdateOwnedEvent(ctx, event.ID, strangerID, payload)
		if err != nil || ok {
			t.Fatalf("expected no match for stranger, got ok=%v err=%v", ok, err)
		}

		ok, err = repo.UpdateOwnedEvent(ctx, event.ID, organizerID, payload)
		if err != nil || !ok {
			t.Fatalf("expected update, got ok=%v err=%v", ok, err)
		}
		got, err := repo.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != "Evening run" || got.MaxParticipants != nil || got.OrganizerID != organizerID {
			t.Fatalf("unexpected event after update: %+v", got)
		}
	})

	t.Run("SetEventActive retires and GetEventForUpdate locks in a tx", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create: %v", err)
		}

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			locked, err := repo.GetEventForUpdate(txCtx, event.ID)
			if err != nil {
				return err
			}
			if !locked.IsActive {
				t.Fatalf("expected active event")
			}
			return repo.SetEventActive(txCtx, event.ID, false)
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}

		got, err := repo.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.IsActive {
			t.Fatalf("expected retired event")
		}
		if err := repo.SetEventActive(ctx, uuid.NewString(), false); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		ctx, ref := setup(t)
		event := newEvent(ref, "2030-06-01", "18:00")
		boom := errors.New("boom")
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			if err := repo.CreateEvent(txCtx, event); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if _, err := repo.GetEvent(ctx, event.ID); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected rollback, got %v", err)
		}
	})

	t.Run("GetArea returns the owning city", func(t *testing.T) {
		ctx, ref := setup(t)
		area, err := repo.GetArea(ctx, ref.OtherAreaID)
		if err != nil {
			t.Fatalf("get area: %v", err)
		}
		if area.CityID != ref.OtherCityID || area.Name != "Mission" {
			t.Fatalf("unexpected area: %+v", area)
		}
		if _, err := repo.GetArea(ctx, uuid.NewString()); !errors.Is(err, domain.ErrAreaNotFound) {
			t.Fatalf("expected ErrAreaNotFound, got %v", err)
		}
	})
}
