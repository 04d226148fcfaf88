package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/locations/domain"
	"github.com/civichero/civichero-backend/internal/locations/repository"
	"github.com/civichero/civichero-backend/internal/logging"
)

// LivePublisher mirrors stored locations to connected clients
type LivePublisher interface {
	PublishLocation(ctx context.Context, loc domain.Location) error
}

type LocationService struct {
	repo   repository.Repository
	live   LivePublisher
	logger *zap.Logger
}

// NewLocationService wires the service. live may be nil, in which case new
// locations are only stored.
func NewLocationService(repo repository.Repository, live LivePublisher, logger *zap.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		live:   live,
		logger: logger,
	}
}

// List returns all locations, newest first
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.repo.List(ctx)
}

// Create validates req, stores the location and mirrors it to the live feed.
// PostgreSQL is the system of record, so a failed mirror is only logged.
func (s *LocationService) Create(ctx context.Context, req domain.CreateLocationRequest) (*domain.Location, error) {
	loc, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &loc); err != nil {
		return nil, err
	}

	log := logging.For(ctx, s.logger)
	log.Info("location reported", zap.Int64("location_id", loc.ID), zap.Stringer("location", loc))

	if s.live != nil {
		if err := s.live.PublishLocation(ctx, loc); err != nil {
			log.Warn("failed to mirror location to live feed", zap.Int64("location_id", loc.ID), zap.Error(err))
		}
	}

	return &loc, nil
}
