package domain

import "testing"

func TestEventDraft_Payload(t *testing.T) {
	t.Parallel()

	d := validDraft()
	d.Title = "  Pickup Game  "
	d.Description = "   "
	d.MaxParticipants = "10"
	d.SkillLevel = " "
	d.ContactInfo = " 555-0100 "

	p := d.Payload()
	if p.Title != "Pickup Game" {
		t.Fatalf("expected trimmed title, got %q", p.Title)
	}
	if p.Description != "" {
		t.Fatalf("expected blank description to be empty, got %q", p.Description)
	}
	if p.MaxParticipants == nil || *p.MaxParticipants != 10 {
		t.Fatalf("expected max participants 10, got %v", p.MaxParticipants)
	}
	if p.SkillLevel != "" {
		t.Fatalf("expected unspecified skill, got %q", p.SkillLevel)
	}
	if p.ContactInfo != "555-0100" {
		t.Fatalf("expected trimmed contact, got %q", p.ContactInfo)
	}

	d.MaxParticipants = ""
	if got := d.Payload().MaxParticipants; got != nil {
		t.Fatalf("expected unlimited participants, got %d", *got)
	}
}

func TestEvent_DraftRoundTrip(t *testing.T) {
	t.Parallel()

	limit := 12
	e := Event{
		ID:              "e1",
		Title:           "Tennis",
		SportCategoryID: "tennis",
		CityID:          "SF",
		AreaID:          "Mission",
		EventDate:       "2026-04-01",
		StartTime:       "08:00",
		EndTime:         "09:00",
		Venue:           "Dolores Park",
		MaxParticipants: &limit,
		SkillLevel:      SkillAdvanced,
	}

	d := e.Draft()
	if d.MaxParticipants != "12" || d.SkillLevel != "advanced" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	p := d.Payload()
	if p.Draft() != d {
		t.Fatalf("expected payload to convert back to %+v, got %+v", d, p.Draft())
	}
}
