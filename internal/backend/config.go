// Package backend builds the Firebase client handles the rest of the service
// depends on: the app handle, the authentication service handle and the
// realtime database service handle.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ErrInvalidConfig is wrapped by every structural configuration error.
var ErrInvalidConfig = errors.New("invalid firebase config")

// Config is the configuration record of a Firebase project. It has the same
// shape as the web SDK's firebaseConfig object so one JSON document can feed
// both the server and browser clients.
type Config struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	DatabaseURL       string `json:"databaseURL"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
}

// WebConfig is the part of Config handed to browser clients.
type WebConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	DatabaseURL       string `json:"databaseURL"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket,omitempty"`
	MessagingSenderID string `json:"messagingSenderId,omitempty"`
	AppID             string `json:"appId,omitempty"`
}

// Validate checks the record's structure. It does not contact Firebase.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.ProjectID) == "" {
		problems = append(problems, "projectId is required")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "databaseURL is required")
	} else if err := validateDatabaseURL(c.DatabaseURL); err != nil {
		problems = append(problems, err.Error())
	}

	if c.AuthDomain != "" && strings.ContainsAny(c.AuthDomain, "/:?#") {
		problems = append(problems, fmt.Sprintf("authDomain %q must be a bare host name", c.AuthDomain))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Public returns the browser-facing view of the record.
func (c Config) Public() WebConfig {
	return WebConfig(c)
}

func validateDatabaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("databaseURL %q: %v", raw, err)
	}
	if u.Host == "" {
		return fmt.Errorf("databaseURL %q must be absolute", raw)
	}
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		// The database emulator only speaks plain http.
		if isLocalHost(u.Hostname()) {
			return nil
		}
	}
	return fmt.Errorf("databaseURL %q must use https", raw)
}

func isLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// ParseConfigJSON decodes a web config JSON object. Unknown keys are ignored.
func ParseConfigJSON(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode json: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadConfigValue follows the Admin SDK FIREBASE_CONFIG convention: a value
// starting with "{" is inline JSON, anything else names a JSON file.
func LoadConfigValue(value string) (Config, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Config{}, nil
	}
	if strings.HasPrefix(value, "{") {
		return ParseConfigJSON([]byte(value))
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return Config{}, fmt.Errorf("read firebase config file: %w", err)
	}
	return ParseConfigJSON(data)
}
