package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/departments/domain"
	"github.com/civichero/civichero-backend/internal/departments/repository"
	"github.com/civichero/civichero-backend/internal/logging"
)

type DepartmentService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewDepartmentService(repo repository.Repository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		repo:   repo,
		logger: logger,
	}
}

// List returns all departments
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

// Create validates req and stores the new department
func (s *DepartmentService) Create(ctx context.Context, req domain.CreateDepartmentRequest) (*domain.Department, error) {
	d, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, err
	}

	logging.For(ctx, s.logger).Info("department created",
		zap.Int64("department_id", d.ID),
		zap.String("name", d.Name),
	)
	return &d, nil
}
