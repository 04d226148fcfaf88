package http

import "github.com/gin-gonic/gin"

// Register mounts the department routes. write runs before Create only.
func (h *Handler) Register(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	create := append(append([]gin.HandlerFunc{}, write...), h.Create)

	rg.GET("/departments/", h.List)
	rg.POST("/departments/", create...)
}
