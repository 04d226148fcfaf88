package backend

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

func testConfig() Config {
	return Config{
		APIKey:            "test-api-key",
		AuthDomain:        "civichero-test.firebaseapp.com",
		DatabaseURL:       "https://civichero-test-default-rtdb.firebaseio.com",
		ProjectID:         "civichero-test",
		StorageBucket:     "civichero-test.firebasestorage.app",
		MessagingSenderID: "1234567890",
		AppID:             "1:1234567890:web:abcdef",
	}
}

// offlineOptions keeps client construction away from application default
// credentials and the metadata server.
func offlineOptions(t *testing.T) []option.ClientOption {
	t.Helper()
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "127.0.0.1:9099")
	t.Setenv("FIREBASE_DATABASE_EMULATOR_HOST", "")
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return []option.ClientOption{option.WithTokenSource(ts)}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts a complete record", func(t *testing.T) {
		require.NoError(t, testConfig().Validate())
	})

	t.Run("accepts an emulator database url", func(t *testing.T) {
		cfg := testConfig()
		cfg.DatabaseURL = "http://127.0.0.1:9000?ns=civichero-test"
		assert.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing project id", func(c *Config) { c.ProjectID = "" }, "projectId is required"},
		{"blank project id", func(c *Config) { c.ProjectID = "   " }, "projectId is required"},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, "databaseURL is required"},
		{"relative database url", func(c *Config) { c.DatabaseURL = "civichero.firebaseio.com" }, "must be absolute"},
		{"plain http database url", func(c *Config) { c.DatabaseURL = "http://civichero.firebaseio.com" }, "must use https"},
		{"auth domain with scheme", func(c *Config) { c.AuthDomain = "https://civichero.firebaseapp.com" }, "bare host name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("reports every problem at once", func(t *testing.T) {
		err := Config{}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "projectId is required")
		assert.Contains(t, err.Error(), "databaseURL is required")
	})
}

func TestParseConfigJSON(t *testing.T) {
	raw := `{
		"apiKey": "test-api-key",
		"authDomain": "civichero-test.firebaseapp.com",
		"databaseURL": "https://civichero-test-default-rtdb.firebaseio.com",
		"projectId": "civichero-test",
		"storageBucket": "civichero-test.firebasestorage.app",
		"messagingSenderId": "1234567890",
		"appId": "1:1234567890:web:abcdef",
		"measurementId": "G-IGNORED"
	}`

	cfg, err := ParseConfigJSON([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, testConfig(), cfg)

	_, err = ParseConfigJSON([]byte(`{"projectId":`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigValue(t *testing.T) {
	t.Run("empty value yields zero config", func(t *testing.T) {
		cfg, err := LoadConfigValue("  ")
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("inline json", func(t *testing.T) {
		cfg, err := LoadConfigValue(`{"projectId":"inline-project"}`)
		require.NoError(t, err)
		assert.Equal(t, "inline-project", cfg.ProjectID)
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "firebase.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"projectId":"file-project","databaseURL":"https://file.firebaseio.com"}`), 0o600))

		cfg, err := LoadConfigValue(path)
		require.NoError(t, err)
		assert.Equal(t, "file-project", cfg.ProjectID)
		assert.Equal(t, "https://file.firebaseio.com", cfg.DatabaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigValue(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestConfig_Public(t *testing.T) {
	pub := testConfig().Public()
	assert.Equal(t, "test-api-key", pub.APIKey)
	assert.Equal(t, "civichero-test", pub.ProjectID)
	assert.Equal(t, "1:1234567890:web:abcdef", pub.AppID)
}

func TestNewClients(t *testing.T) {
	opts := offlineOptions(t)

	t.Run("exposes both handles without a network round trip", func(t *testing.T) {
		clients, err := NewClients(context.Background(), testConfig(), opts...)
		require.NoError(t, err)
		require.NotNil(t, clients)
		assert.NotNil(t, clients.App)
		assert.NotNil(t, clients.Auth)
		assert.NotNil(t, clients.Database)
		assert.Equal(t, testConfig(), clients.Config)
	})

	t.Run("fails on a structurally invalid record", func(t *testing.T) {
		cfg := testConfig()
		cfg.ProjectID = ""

		clients, err := NewClients(context.Background(), cfg, opts...)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, clients)
	})

	t.Run("leaves the input record untouched", func(t *testing.T) {
		cfg := testConfig()
		before := cfg

		_, err := NewClients(context.Background(), cfg, opts...)
		require.NoError(t, err)
		assert.Equal(t, before, cfg)
	})
}

func TestRegistry_Get(t *testing.T) {
	opts := offlineOptions(t)
	ctx := context.Background()

	t.Run("same config returns the same handles", func(t *testing.T) {
		reg := &Registry{}

		first, err := reg.Get(ctx, "", testConfig(), opts...)
		require.NoError(t, err)
		second, err := reg.Get(ctx, DefaultAppName, testConfig(), opts...)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Same(t, first.Auth, second.Auth)
		assert.Same(t, first.Database, second.Database)
	})

	t.Run("different config under the same name is rejected", func(t *testing.T) {
		reg := &Registry{}

		_, err := reg.Get(ctx, "reports", testConfig(), opts...)
		require.NoError(t, err)

		other := testConfig()
		other.ProjectID = "another-project"
		_, err = reg.Get(ctx, "reports", other, opts...)
		assert.ErrorIs(t, err, ErrDuplicateApp)
	})

	t.Run("options are only used on first initialization", func(t *testing.T) {
		reg := &Registry{}

		first, err := reg.Get(ctx, "", testConfig(), opts...)
		require.NoError(t, err)
		second, err := reg.Get(ctx, "", testConfig())
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("different credentials under the same name are rejected", func(t *testing.T) {
		reg := &Registry{}

		first, err := reg.GetWithCredentials(ctx, "", testConfig(), "", opts...)
		require.NoError(t, err)

		again, err := reg.GetWithCredentials(ctx, "", testConfig(), "", opts...)
		require.NoError(t, err)
		assert.Same(t, first, again)

		_, err = reg.GetWithCredentials(ctx, "", testConfig(), "/etc/civichero/other-service-account.json", opts...)
		assert.ErrorIs(t, err, ErrDuplicateApp)
	})

	t.Run("named apps are independent", func(t *testing.T) {
		reg := &Registry{}

		a, err := reg.Get(ctx, "a", testConfig(), opts...)
		require.NoError(t, err)
		b, err := reg.Get(ctx, "b", testConfig(), opts...)
		require.NoError(t, err)
		assert.NotSame(t, a, b)
	})

	t.Run("failed initialization is not cached", func(t *testing.T) {
		reg := &Registry{}
		bad := testConfig()
		bad.DatabaseURL = ""

		_, err := reg.Get(ctx, "", bad, opts...)
		require.Error(t, err)

		_, ok := reg.Lookup("")
		assert.False(t, ok)

		_, err = reg.Get(ctx, "", testConfig(), opts...)
		assert.NoError(t, err)
	})

	t.Run("delete allows re-initialization", func(t *testing.T) {
		reg := &Registry{}

		first, err := reg.Get(ctx, "", testConfig(), opts...)
		require.NoError(t, err)
		reg.Delete("")

		second, err := reg.Get(ctx, "", testConfig(), opts...)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
	})

	t.Run("concurrent callers initialize once", func(t *testing.T) {
		reg := &Registry{}

		var wg sync.WaitGroup
		results := make([]*Clients, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				c, err := reg.Get(ctx, "", testConfig(), opts...)
				assert.NoError(t, err)
				results[i] = c
			}(i)
		}
		wg.Wait()

		for _, c := range results[1:] {
			assert.Same(t, results[0], c)
		}
	})
}
