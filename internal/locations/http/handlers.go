package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civichero/civichero-backend/internal/locations/domain"
	"github.com/civichero/civichero-backend/internal/validation"
)

// List returns every location, newest first
func (h *Handler) List(c *gin.Context) {
	locations, err := h.locationService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Create stores a reported location. id and created_at in the body are ignored.
func (h *Handler) Create(c *gin.Context) {
	var req domain.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body", "details": err.Error()})
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), req)
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create location"})
		return
	}

	c.JSON(http.StatusCreated, location)
}
