package realtime

import (
	"context"

	"firebase.google.com/go/v4/db"
)

// Store is the subset of the Realtime Database API the feed uses. Paths are
// slash separated and relative to the database root.
type Store interface {
	Set(ctx context.Context, path string, v interface{}) error
	Get(ctx context.Context, path string, dest interface{}) error
	Update(ctx context.Context, path string, values map[string]interface{}) error
}

// DatabaseStore adapts the database handle from backend.Clients.
type DatabaseStore struct {
	client *db.Client
}

func NewDatabaseStore(client *db.Client) *DatabaseStore {
	return &DatabaseStore{client: client}
}

func (s *DatabaseStore) Set(ctx context.Context, path string, v interface{}) error {
	return s.client.NewRef(path).Set(ctx, v)
}

func (s *DatabaseStore) Get(ctx context.Context, path string, dest interface{}) error {
	return s.client.NewRef(path).Get(ctx, dest)
}

func (s *DatabaseStore) Update(ctx context.Context, path string, values map[string]interface{}) error {
	return s.client.NewRef(path).Update(ctx, values)
}
