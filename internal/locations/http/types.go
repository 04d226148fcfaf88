package http

import "github.com/civichero/civichero-backend/internal/locations/service"

type Handler struct {
	locationService *service.LocationService
}

func New(locationService *service.LocationService) *Handler {
	return &Handler{
		locationService: locationService,
	}
}
