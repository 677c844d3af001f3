package gateway

import (
	"time"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
)

type namedBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type areaBody struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CityID string `json:"city_id"`
}

type payloadBody struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	SportCategoryID string `json:"sport_category_id"`
	CityID          string `json:"city_id"`
	AreaID          string `json:"area_id"`
	EventDate       string `json:"event_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Venue           string `json:"venue"`
	MaxParticipants *int   `json:"max_participants"`
	SkillLevel      string `json:"skill_level,omitempty"`
	ContactInfo     string `json:"contact_info,omitempty"`
}

func newPayloadBody(p domain.EventPayload) payloadBody {
	return payloadBody{
		Title:           p.Title,
		Description:     p.Description,
		SportCategoryID: p.SportCategoryID,
		CityID:          p.CityID,
		AreaID:          p.AreaID,
		EventDate:       p.EventDate,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Venue:           p.Venue,
		MaxParticipants: p.MaxParticipants,
		SkillLevel:      string(p.SkillLevel),
		ContactInfo:     p.ContactInfo,
	}
}

type eventBody struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	SportCategoryID     string    `json:"sport_category_id"`
	OrganizerID         string    `json:"organizer_id"`
	CityID              string    `json:"city_id"`
	AreaID              string    `json:"area_id"`
	EventDate           string    `json:"event_date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	Venue               string    `json:"venue"`
	MaxParticipants     *int      `json:"max_participants"`
	CurrentParticipants int       `json:"current_participants"`
	SkillLevel          string    `json:"skill_level"`
	ContactInfo         string    `json:"contact_info"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	CategoryName        string    `json:"category_name"`
	CityName            string    `json:"city_name"`
	AreaName            string    `json:"area_name"`
	OrganizerName       string    `json:"organizer_name"`
}

func (b eventBody) event() domain.Event {
	return domain.Event{
		ID:                  b.ID,
		Title:               b.Title,
		Description:         b.Description,
		SportCategoryID:     b.SportCategoryID,
		OrganizerID:         b.OrganizerID,
		CityID:              b.CityID,
		AreaID:              b.AreaID,
		EventDate:           b.EventDate,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		Venue:               b.Venue,
		MaxParticipants:     b.MaxParticipants,
		CurrentParticipants: b.CurrentParticipants,
		SkillLevel:          domain.SkillLevel(b.SkillLevel),
		ContactInfo:         b.ContactInfo,
		IsActive:            b.IsActive,
		CreatedAt:           b.CreatedAt,
		CategoryName:        b.CategoryName,
		CityName:            b.CityName,
		AreaName:            b.AreaName,
		OrganizerName:       b.OrganizerName,
	}
}

type profileBody struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
