package editor

import (
	"context"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/clock"
	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
)

// OpenCreate opens the dialog with an empty draft.
func (s *Session) OpenCreate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form.Submitting {
		return ErrSubmitInFlight
	}
	s.form = Form{Open: true}
	return nil
}

// OpenEdit opens the dialog on event. Only viewers who can manage the event
// get an edit dialog.
func (s *Session) OpenEdit(event domain.Event) error {
	if !domain.CanManage(event, s.viewer) {
		return domain.ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form.Submitting {
		return ErrSubmitInFlight
	}
	s.form = Form{Open: true, EditingID: event.ID, Draft: event.Draft()}
	return nil
}

// Cancel closes the dialog and drops the draft.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form.Submitting {
		return ErrSubmitInFlight
	}
	s.form = Form{}
	return nil
}

// SetCity selects cityID. A different city clears the chosen area in the
// same transition.
func (s *Session) SetCity(cityID string) {
	s.Change(func(d *domain.EventDraft) {
		d.CityID = cityID
	})
}

// Change edits the draft. If fn moves the draft to another city without
// picking an area, the old area is cleared.
func (s *Session) Change(fn func(d *domain.EventDraft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.form.Draft
	next := before
	fn(&next)
	if next.CityID != before.CityID && next.AreaID == before.AreaID {
		next.AreaID = ""
	}
	s.form.Draft = next
}

// Check runs the local rules on the current draft without submitting.
func (s *Session) Check() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkLocked()
}

func (s *Session) checkLocked() []string {
	d := s.form.Draft
	violations := domain.Validate(d, clock.Today(s.clock, s.loc))
	// Without a loaded area list the server is the only judge.
	if d.CityID != "" && d.AreaID != "" && len(s.areas) > 0 && !domain.AreaInCity(s.areas, d.CityID, d.AreaID) {
		violations = append(violations, domain.MsgAreaCityMismatch)
	}
	return violations
}

// Submit validates the open draft and sends it. Local violations are
// reported together and nothing is sent. A remote failure keeps the dialog
// and draft as they were. Success closes the dialog and reloads the list.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.form.Open {
		s.mu.Unlock()
		return ErrFormClosed
	}
	if s.form.Submitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	s.phase = PhaseValidating
	if err := domain.CheckDraft(s.checkLocked()); err != nil {
		s.phase = PhaseIdle
		s.mu.Unlock()
		s.notifyError("Validation Error", err)
		return err
	}

	payload := s.form.Draft.Payload()
	editingID := s.form.EditingID
	s.form.Submitting = true
	s.phase = PhaseSubmitting
	s.mu.Unlock()

	var err error
	if editingID == "" {
		_, err = callWithTimeout(ctx, s.timeout, func(ctx context.Context) (domain.Event, error) {
			return s.gateway.CreateEvent(ctx, payload)
		})
	} else {
		_, err = callWithTimeout(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.gateway.UpdateEvent(ctx, editingID, s.viewer.UserID, payload)
		})
	}

	s.mu.Lock()
	s.form.Submitting = false
	s.phase = PhaseIdle
	if err == nil {
		s.form = Form{}
	}
	s.mu.Unlock()

	if err != nil {
		title := "Error creating event"
		if editingID != "" {
			title = "Error updating event"
		}
		s.logger.WithError(err).WithField("event_id", editingID).Warn("submit event")
		s.notifyError(title, err)
		return err
	}

	if editingID == "" {
		s.notifySuccess("Success!", "Your event has been created successfully and is now live.")
	} else {
		s.notifySuccess("Success!", "Your event has been updated successfully.")
	}
	_ = s.Refresh(ctx)
	return nil
}

// Retire soft-deletes event id and reloads the list.
func (s *Session) Retire(ctx context.Context, id string) error {
	_, err := callWithTimeout(ctx, s.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.gateway.SetEventActive(ctx, id, false)
	})
	if err != nil {
		s.logger.WithError(err).WithField("event_id", id).Warn("retire event")
		s.notifyError("Error deleting event", err)
		return err
	}
	s.notifySuccess("Event deleted", "The event has been removed successfully.")
	_ = s.Refresh(ctx)
	return nil
}
