package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MsgTitleRequired    = "Event title is required"
	MsgCategoryRequired = "Sport category is required"
	MsgCityRequired     = "City is required"
	MsgAreaRequired     = "Area is required"
	MsgVenueRequired    = "Venue is required"
	MsgDateRequired     = "Event date is required"
	MsgStartRequired    = "Start time is required"
	MsgEndRequired      = "End time is required"
	MsgDateInPast       = "Event date cannot be in the past"
	MsgEndBeforeStart   = "End time must be after start time"
	MsgMinParticipants  = "Minimum 2 participants required"
	MsgDateInvalid      = "Event date must be a valid date"
	MsgStartInvalid     = "Start time must be in HH:MM format"
	MsgEndInvalid       = "End time must be in HH:MM format"
	MsgParticipantsNaN  = "Max participants must be a number"
	MsgMaxParticipants  = "Maximum 100 participants allowed"
	MsgSkillInvalid     = "Skill level must be one of beginner, intermediate, advanced, all"
	MsgTitleTooLong     = "Event title must be at most 100 characters"
	MsgDescTooLong      = "Description must be at most 500 characters"
	MsgVenueTooLong     = "Venue must be at most 100 characters"
	MsgContactTooLong   = "Contact info must be at most 100 characters"
	MsgAreaCityMismatch = "Selected area does not belong to the selected city"
)

const (
	MinParticipants = 2
	MaxParticipants = 100

	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxVenueLen       = 100
	maxContactLen     = 100

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Validate checks a draft against every event rule and returns the
// messages of the rules it breaks, in rule order. today is the viewer's
// current calendar date; only its year, month and day are used.
func Validate(d EventDraft, today time.Time) []string {
	var out []string
	add := func(cond bool, msg string) {
		if cond {
			out = append(out, msg)
		}
	}

	add(strings.TrimSpace(d.Title) == "", MsgTitleRequired)
	add(d.SportCategoryID == "", MsgCategoryRequired)
	add(d.CityID == "", MsgCityRequired)
	add(d.AreaID == "", MsgAreaRequired)
	add(strings.TrimSpace(d.Venue) == "", MsgVenueRequired)
	add(d.EventDate == "", MsgDateRequired)
	add(d.StartTime == "", MsgStartRequired)
	add(d.EndTime == "", MsgEndRequired)

	date, dateOK := parseDate(d.EventDate)
	add(dateOK && date.Before(calendarDate(today)), MsgDateInPast)

	startOK := validClock(d.StartTime)
	endOK := validClock(d.EndTime)
	add(startOK && endOK && d.StartTime >= d.EndTime, MsgEndBeforeStart)

	maxStr := strings.TrimSpace(d.MaxParticipants)
	maxN, maxErr := strconv.Atoi(maxStr)
	add(maxStr != "" && maxErr == nil && maxN < MinParticipants, MsgMinParticipants)

	add(d.EventDate != "" && !dateOK, MsgDateInvalid)
	add(d.StartTime != "" && !startOK, MsgStartInvalid)
	add(d.EndTime != "" && !endOK, MsgEndInvalid)
	add(maxStr != "" && maxErr != nil, MsgParticipantsNaN)
	add(maxStr != "" && maxErr == nil && maxN > MaxParticipants, MsgMaxParticipants)

	skill := strings.TrimSpace(d.SkillLevel)
	add(skill != "" && !SkillLevel(skill).Valid(), MsgSkillInvalid)

	add(runeLen(strings.TrimSpace(d.Title)) > maxTitleLen, MsgTitleTooLong)
	add(runeLen(strings.TrimSpace(d.Description)) > maxDescriptionLen, MsgDescTooLong)
	add(runeLen(strings.TrimSpace(d.Venue)) > maxVenueLen, MsgVenueTooLong)
	add(runeLen(strings.TrimSpace(d.ContactInfo)) > maxContactLen, MsgContactTooLong)

	return out
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// validClock accepts exactly HH:MM so that string comparison orders times.
func validClock(s string) bool {
	if len(s) != len(TimeLayout) || s[2] != ':' {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
