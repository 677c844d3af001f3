package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	db
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db{pool: pool}}
}

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

const eventColumns = `
SELECT e.id, e.title, COALESCE(e.description, ''), e.sport_category_id, e.organizer_id,
	e.city_id, e.area_id,
	to_char(e.event_date, 'YYYY-MM-DD'), to_char(e.start_time, 'HH24:MI'), to_char(e.end_time, 'HH24:MI'),
	e.venue, e.max_participants, e.current_participants,
	COALESCE(e.skill_level, ''), COALESCE(e.contact_info, ''), e.is_active, e.created_at,
	c.name, ci.name, a.name, COALESCE(p.full_name, '')
FROM sports_events e
JOIN sports_categories c ON c.id = e.sport_category_id
JOIN cities ci ON ci.id = e.city_id
JOIN areas a ON a.id = e.area_id
LEFT JOIN profiles p ON p.id = e.organizer_id`

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	var skill string
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.SportCategoryID, &e.OrganizerID,
		&e.CityID, &e.AreaID,
		&e.EventDate, &e.StartTime, &e.EndTime,
		&e.Venue, &e.MaxParticipants, &e.CurrentParticipants,
		&skill, &e.ContactInfo, &e.IsActive, &e.CreatedAt,
		&e.CategoryName, &e.CityName, &e.AreaName, &e.OrganizerName,
	)
	e.SkillLevel = domain.SkillLevel(skill)
	return e, err
}

// ListActiveEvents returns active events, soonest first.
func (r *EventRepository) ListActiveEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.query(ctx, eventColumns+`
WHERE e.is_active
ORDER BY e.event_date ASC, e.start_time ASC, e.created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

// GetEvent returns the event with id whether or not it is active.
func (r *EventRepository) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	return r.getEvent(ctx, eventColumns+` WHERE e.id = $1`, id)
}

func (r *EventRepository) GetEventForUpdate(ctx context.Context, id string) (domain.Event, error) {
	return r.getEvent(ctx, eventColumns+` WHERE e.id = $1 FOR UPDATE OF e`, id)
}

func (r *EventRepository) getEvent(ctx context.Context, query, id string) (domain.Event, error) {
	event, err := scanEvent(r.queryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Event{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO sports_events (
	id, title, description, sport_category_id, organizer_id, city_id, area_id,
	event_date, start_time, end_time, venue, max_participants, current_participants,
	skill_level, contact_info, is_active, created_at
) VALUES (
	$1, $2, NULLIF($3, ''), $4, $5, $6, $7,
	$8::date, $9::time, $10::time, $11, $12, $13,
	NULLIF($14, ''), NULLIF($15, ''), $16, $17
)`
	_, err := r.exec(ctx, stmt,
		event.ID, event.Title, event.Description, event.SportCategoryID, event.OrganizerID,
		event.CityID, event.AreaID,
		event.EventDate, event.StartTime, event.EndTime, event.Venue,
		event.MaxParticipants, event.CurrentParticipants,
		string(event.SkillLevel), event.ContactInfo, event.IsActive, event.CreatedAt,
	)
	if err != nil {
		return mapWriteError("create event", err)
	}
	return nil
}

// UpdateOwnedEvent rewrites an active event only when organizerID owns it.
// It reports whether a row matched.
func (r *EventRepository) UpdateOwnedEvent(ctx context.Context, id, organizerID string, p domain.EventPayload) (bool, error) {
	const stmt = `
UPDATE sports_events SET
	title = $3,
	description = NULLIF($4, ''),
	sport_category_id = $5,
	city_id = $6,
	area_id = $7,
	event_date = $8::date,
	start_time = $9::time,
	end_time = $10::time,
	venue = $11,
	max_participants = $12,
	skill_level = NULLIF($13, ''),
	contact_info = NULLIF($14, ''),
	updated_at = NOW()
WHERE id = $1 AND organizer_id = $2 AND is_active`
	tag, err := r.exec(ctx, stmt,
		id, organizerID,
		p.Title, p.Description, p.SportCategoryID, p.CityID, p.AreaID,
		p.EventDate, p.StartTime, p.EndTime, p.Venue, p.MaxParticipants,
		string(p.SkillLevel), p.ContactInfo,
	)
	if err != nil {
		return false, mapWriteError("update event", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EventRepository) SetEventActive(ctx context.Context, id string, active bool) error {
	const stmt = `UPDATE sports_events SET is_active = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.exec(ctx, stmt, id, active)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("set event active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) GetArea(ctx context.Context, id string) (domain.Area, error) {
	const query = `SELECT id, name, city_id FROM areas WHERE id = $1`
	var a domain.Area
	if err := r.queryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.CityID); err != nil {
		if isInvalidUUID(err) {
			return domain.Area{}, domain.ErrInvalidID
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Area{}, domain.ErrAreaNotFound
		}
		return domain.Area{}, fmt.Errorf("get area: %w", err)
	}
	return a, nil
}

func mapWriteError(op string, err error) error {
	switch {
	case isInvalidUUID(err):
		return domain.ErrInvalidID
	case isForeignKeyViolation(err):
		return domain.ErrReferenceNotFound
	case isCheckViolation(err):
		return &domain.ValidationError{Violations: []string{"Event violates a database constraint"}}
	}
	return fmt.Errorf("%s: %w", op, err)
}
