package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civichero/civichero-backend/internal/locations/domain"
)

// Repository is the storage contract the location service depends on
type Repository interface {
	List(ctx context.Context) ([]domain.Location, error)
	Create(ctx context.Context, loc *domain.Location) error
}

// LocationRepository handles PostgreSQL operations for locations
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns all locations, newest first
func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, address, created_at
		FROM locations
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var loc domain.Location
		if err := rows.Scan(&loc.ID, &loc.Latitude, &loc.Longitude, &loc.Address, &loc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}

// Create inserts loc and sets its ID and CreatedAt from the database
func (r *LocationRepository) Create(ctx context.Context, loc *domain.Location) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO locations (latitude, longitude, address)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, loc.Latitude, loc.Longitude, loc.Address).Scan(&loc.ID, &loc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}
