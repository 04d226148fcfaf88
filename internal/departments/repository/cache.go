package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/departments/domain"
)

const (
	generationKey = "civichero:departments:gen"
	listKeyPrefix = "civichero:departments:list:"
)

// listKey is generational: Create bumps the generation, so a List that read
// the store before the bump writes to a key no later reader looks up.
func listKey(gen int64) string {
	return listKeyPrefix + strconv.FormatInt(gen, 10)
}

// CachedRepository is a read-through redis cache in front of another
// Repository. Redis failures are logged and the call falls through.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedRepository) List(ctx context.Context) ([]domain.Department, error) {
	gen, err := r.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		r.logger.Warn("department cache read failed", zap.Error(err))
		return r.next.List(ctx)
	}
	key := listKey(gen)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var departments []domain.Department
		if err := json.Unmarshal(data, &departments); err == nil {
			return departments, nil
		}
		r.logger.Warn("discarding corrupt department cache entry")
	case err != redis.Nil:
		r.logger.Warn("department cache read failed", zap.Error(err))
	}

	departments, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(departments); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.logger.Warn("department cache write failed", zap.Error(err))
		}
	}

	return departments, nil
}

func (r *CachedRepository) Create(ctx context.Context, d *domain.Department) error {
	if err := r.next.Create(ctx, d); err != nil {
		return err
	}
	if err := r.client.Incr(ctx, generationKey).Err(); err != nil {
		r.logger.Warn("department cache invalidation failed", zap.Error(err))
	}
	return nil
}
