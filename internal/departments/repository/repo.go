package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civichero/civichero-backend/internal/departments/domain"
)

// Repository is the storage contract the department service depends on
type Repository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, d *domain.Department) error
}

// DepartmentRepository handles PostgreSQL operations for departments
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns every department ordered by id
func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description
		FROM departments
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Create inserts d and sets its generated ID
func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id
	`, d.Name, d.Description).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}
