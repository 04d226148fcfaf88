package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civichero/civichero-backend/internal/departments/domain"
	"github.com/civichero/civichero-backend/internal/validation"
)

// List returns every department
func (h *Handler) List(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list departments"})
		return
	}

	c.JSON(http.StatusOK, departments)
}

// Create stores a new department
func (h *Handler) Create(c *gin.Context) {
	var req domain.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body", "details": err.Error()})
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create department"})
		return
	}

	c.JSON(http.StatusCreated, department)
}
