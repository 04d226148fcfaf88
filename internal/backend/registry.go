package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/api/option"
)

// DefaultAppName is the name the Firebase SDKs give the unnamed app.
const DefaultAppName = "[DEFAULT]"

// ErrDuplicateApp is returned when a name is reused with a different config.
var ErrDuplicateApp = errors.New("firebase app already exists with a different config")

// Registry hands out one Clients per app name for the life of the process.
// The zero value is ready to use.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*registration
}

type registration struct {
	clients *Clients
	// credentials is nil when the app was registered through Get, whose
	// options are opaque.
	credentials *string
}

// Shared is the process-wide registry used by the server entry point.
var Shared = &Registry{}

// Get returns the Clients registered under name, initializing them from cfg
// on first use. Later calls with an equal cfg return the same Clients.
// opts only apply to the first initialization and are not compared on later
// calls; use GetWithCredentials when the credentials must match too.
func (r *Registry) Get(ctx context.Context, name string, cfg Config, opts ...option.ClientOption) (*Clients, error) {
	return r.get(ctx, name, cfg, nil, opts)
}

// GetWithCredentials is Get with the service account key path as part of the
// app identity. A later call with another path fails with ErrDuplicateApp.
func (r *Registry) GetWithCredentials(ctx context.Context, name string, cfg Config, credentialsPath string, opts ...option.ClientOption) (*Clients, error) {
	all := append(CredentialsOptions(credentialsPath), opts...)
	return r.get(ctx, name, cfg, &credentialsPath, all)
}

func (r *Registry) get(ctx context.Context, name string, cfg Config, credentials *string, opts []option.ClientOption) (*Clients, error) {
	if name == "" {
		name = DefaultAppName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.clients[name]; ok {
		if existing.clients.Config != cfg {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateApp, name)
		}
		if credentials != nil && existing.credentials != nil && *credentials != *existing.credentials {
			return nil, fmt.Errorf("%w: %s: credentials differ", ErrDuplicateApp, name)
		}
		return existing.clients, nil
	}

	clients, err := NewClients(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	if r.clients == nil {
		r.clients = make(map[string]*registration)
	}
	r.clients[name] = &registration{clients: clients, credentials: credentials}
	return clients, nil
}

// Lookup returns the Clients registered under name, if any.
func (r *Registry) Lookup(name string) (*Clients, bool) {
	if name == "" {
		name = DefaultAppName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.clients[name]
	if !ok {
		return nil, false
	}
	return reg.clients, true
}

// Delete forgets the app registered under name.
func (r *Registry) Delete(name string) {
	if name == "" {
		name = DefaultAppName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, name)
}
