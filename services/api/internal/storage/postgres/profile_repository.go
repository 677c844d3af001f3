package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db{pool: pool}}
}

const profileColumns = `
SELECT id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(location, ''),
	COALESCE(bio, ''), role, created_at
FROM profiles`

func scanProfile(row pgx.Row) (domain.Profile, error) {
	var p domain.Profile
	var role string
	err := row.Scan(&p.ID, &p.FullName, &p.Phone, &p.Location, &p.Bio, &role, &p.CreatedAt)
	p.Role = domain.Role(role)
	return p, err
}

func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, err := scanProfile(r.queryRow(ctx, profileColumns+` WHERE id = $1`, id))
	if err != nil {
		return domain.Profile{}, mapProfileError("get profile", err)
	}
	return p, nil
}

// CreateProfile inserts p; an existing profile with the same id is left as is.
func (r *ProfileRepository) CreateProfile(ctx context.Context, p domain.Profile) error {
	const stmt = `
INSERT INTO profiles (id, full_name, role, created_at)
VALUES ($1, NULLIF($2, ''), $3, $4)
ON CONFLICT (id) DO NOTHING`
	role := p.Role
	if role == "" {
		role = domain.RoleMember
	}
	if _, err := r.exec(ctx, stmt, p.ID, p.FullName, string(role), p.CreatedAt); err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, id string, in domain.ProfileUpdate) (domain.Profile, error) {
	const stmt = `
UPDATE profiles SET
	full_name = NULLIF($2, ''),
	phone = NULLIF($3, ''),
	location = NULLIF($4, ''),
	bio = NULLIF($5, ''),
	updated_at = NOW()
WHERE id = $1
RETURNING id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(location, ''),
	COALESCE(bio, ''), role, created_at`
	p, err := scanProfile(r.queryRow(ctx, stmt, id, in.FullName, in.Phone, in.Location, in.Bio))
	if err != nil {
		return domain.Profile{}, mapProfileError("update profile", err)
	}
	return p, nil
}

func mapProfileError(op string, err error) error {
	if isInvalidUUID(err) {
		return domain.ErrInvalidID
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
