package domain

import (
	"strconv"
	"strings"
)

// Payload trims the draft and converts it into a mutation body. It assumes
// the draft already passed Validate; an unparseable participant count is
// treated as unlimited.
func (d EventDraft) Payload() EventPayload {
	p := EventPayload{
		Title:           strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		SportCategoryID: d.SportCategoryID,
		CityID:          d.CityID,
		AreaID:          d.AreaID,
		EventDate:       d.EventDate,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Venue:           strings.TrimSpace(d.Venue),
		SkillLevel:      SkillLevel(strings.TrimSpace(d.SkillLevel)),
		ContactInfo:     strings.TrimSpace(d.ContactInfo),
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.MaxParticipants)); err == nil {
		p.MaxParticipants = &n
	}
	return p
}

// Draft converts a payload back into form text, used when a mutation body
// arrives over the wire and needs the same validation as a form.
func (p EventPayload) Draft() EventDraft {
	d := EventDraft{
		Title:           p.Title,
		Description:     p.Description,
		SportCategoryID: p.SportCategoryID,
		CityID:          p.CityID,
		AreaID:          p.AreaID,
		EventDate:       p.EventDate,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Venue:           p.Venue,
		SkillLevel:      string(p.SkillLevel),
		ContactInfo:     p.ContactInfo,
	}
	if p.MaxParticipants != nil {
		d.MaxParticipants = itoa(*p.MaxParticipants)
	}
	return d
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
