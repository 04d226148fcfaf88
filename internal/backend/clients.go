package backend

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// Clients is the handle set derived from one Firebase app. Build it once at
// start-up and pass it to whatever needs it.
type Clients struct {
	Config   Config
	App      *firebase.App
	Auth     *auth.Client
	Database *db.Client
}

// NewClients validates cfg, creates the Firebase app and derives the
// authentication and realtime database handles from it. No network call is
// made; bad credentials or an unreachable database surface on first use.
func NewClients(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Clients, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Database client: %w", err)
	}

	return &Clients{
		Config:   cfg,
		App:      app,
		Auth:     authClient,
		Database: dbClient,
	}, nil
}

// CredentialsOptions returns the client options for a service account key
// file. An empty path means application default credentials.
func CredentialsOptions(credentialsPath string) []option.ClientOption {
	if credentialsPath == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(credentialsPath)}
}
