package domain

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillAll          SkillLevel = "all"
)

var skillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillAll}

func (s SkillLevel) Valid() bool {
	for _, lvl := range skillLevels {
		if s == lvl {
			return true
		}
	}
	return false
}

// EventDraft is an unsaved event as typed into a form. Every field is kept
// as text; an empty string means "not provided".
type EventDraft struct {
	Title           string
	Description     string
	SportCategoryID string
	CityID          string
	AreaID          string
	EventDate       string // YYYY-MM-DD
	StartTime       string // HH:MM
	EndTime         string // HH:MM
	Venue           string
	MaxParticipants string
	SkillLevel      string
	ContactInfo     string
}

// Event is a persisted sports event together with its display names.
type Event struct {
	ID                  string
	Title               string
	Description         string
	SportCategoryID     string
	OrganizerID         string
	CityID              string
	AreaID              string
	EventDate           string
	StartTime           string
	EndTime             string
	Venue               string
	MaxParticipants     *int
	CurrentParticipants int
	SkillLevel          SkillLevel
	ContactInfo         string
	IsActive            bool
	CreatedAt           time.Time

	CategoryName  string
	CityName      string
	AreaName      string
	OrganizerName string
}

// Draft returns the editable form of a persisted event.
func (e Event) Draft() EventDraft {
	d := EventDraft{
		Title:           e.Title,
		Description:     e.Description,
		SportCategoryID: e.SportCategoryID,
		CityID:          e.CityID,
		AreaID:          e.AreaID,
		EventDate:       e.EventDate,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Venue:           e.Venue,
		SkillLevel:      string(e.SkillLevel),
		ContactInfo:     e.ContactInfo,
	}
	if e.MaxParticipants != nil {
		d.MaxParticipants = itoa(*e.MaxParticipants)
	}
	return d
}

// EventPayload is the normalized body of a create or update mutation.
// Empty optional strings are stored as NULL.
type EventPayload struct {
	Title           string
	Description     string
	SportCategoryID string
	CityID          string
	AreaID          string
	EventDate       string
	StartTime       string
	EndTime         string
	Venue           string
	MaxParticipants *int
	SkillLevel      SkillLevel
	ContactInfo     string
}
