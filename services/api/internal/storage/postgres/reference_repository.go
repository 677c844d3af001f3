package postgres

import (
	"context"
	"fmt"

	"github.com/Anchal-Prasad/SportsBuddy/services/api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferenceRepository struct {
	db
}

func NewReferenceRepository(pool *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db{pool: pool}}
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]domain.SportCategory, error) {
	rows, err := r.query(ctx, `SELECT id, name FROM sports_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (domain.SportCategory, error) {
		var c domain.SportCategory
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

func (r *ReferenceRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.query(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (domain.City, error) {
		var c domain.City
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

func (r *ReferenceRepository) ListAreas(ctx context.Context) ([]domain.Area, error) {
	rows, err := r.query(ctx, `SELECT id, name, city_id FROM areas ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	return collect(rows, func(row pgx.CollectableRow) (domain.Area, error) {
		var a domain.Area
		err := row.Scan(&a.ID, &a.Name, &a.CityID)
		return a, err
	})
}

func collect[T any](rows pgx.Rows, fn pgx.RowToFunc[T]) ([]T, error) {
	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, fmt.Errorf("scan rows: %w", err)
	}
	return items, nil
}
