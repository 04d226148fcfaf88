package realtime

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/locations/domain"
	"github.com/civichero/civichero-backend/internal/logging"
)

const (
	LocationsPath = "locations"
	keyPrefix     = "loc-"
)

// LiveLocation is the shape clients read from the feed.
type LiveLocation struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	CreatedAt int64   `json:"created_at"`
}

// Feed mirrors stored locations into the Realtime Database so that map
// clients receive them without polling.
type Feed struct {
	store  Store
	logger *zap.Logger
}

func NewFeed(store Store, logger *zap.Logger) *Feed {
	return &Feed{store: store, logger: logger}
}

// Key returns the child key for a location id. The prefix keeps the database
// from treating the node as an array.
func Key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

func (f *Feed) PublishLocation(ctx context.Context, loc domain.Location) error {
	entry := LiveLocation{
		ID:        loc.ID,
		Latitude:  loc.Latitude.Float64(),
		Longitude: loc.Longitude.Float64(),
		Address:   loc.Address,
		CreatedAt: loc.CreatedAt.UnixMilli(),
	}
	if err := f.store.Set(ctx, LocationsPath+"/"+Key(loc.ID), entry); err != nil {
		return fmt.Errorf("publish location %d: %w", loc.ID, err)
	}
	return nil
}

// Trim removes the oldest entries so that at most keep remain, and reports
// how many were removed. keep <= 0 leaves the feed alone.
func (f *Feed) Trim(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	var entries map[string]LiveLocation
	if err := f.store.Get(ctx, LocationsPath, &entries); err != nil {
		return 0, fmt.Errorf("read live feed: %w", err)
	}
	if len(entries) <= keep {
		return 0, nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := entries[keys[i]], entries[keys[j]]
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return keys[i] < keys[j]
	})

	stale := keys[:len(keys)-keep]
	updates := make(map[string]interface{}, len(stale))
	for _, k := range stale {
		updates[k] = nil
	}
	if err := f.store.Update(ctx, LocationsPath, updates); err != nil {
		return 0, fmt.Errorf("trim live feed: %w", err)
	}

	logging.For(ctx, f.logger).Info("live feed trimmed", zap.Int("removed", len(stale)), zap.Int("kept", keep))
	return len(stale), nil
}
