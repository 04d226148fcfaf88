package http

import "github.com/civichero/civichero-backend/internal/departments/service"

type Handler struct {
	departmentService *service.DepartmentService
}

func New(departmentService *service.DepartmentService) *Handler {
	return &Handler{
		departmentService: departmentService,
	}
}
