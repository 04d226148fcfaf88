package http

import "github.com/civichero/civichero-backend/internal/backend"

type Handler struct {
	webConfig backend.WebConfig
}

func New(webConfig backend.WebConfig) *Handler {
	return &Handler{
		webConfig: webConfig,
	}
}

type MeResponse struct {
	UID      string                 `json:"uid"`
	Email    string                 `json:"email,omitempty"`
	Provider string                 `json:"provider,omitempty"`
	Claims   map[string]interface{} `json:"claims,omitempty"`
}
