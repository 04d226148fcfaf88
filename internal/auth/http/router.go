package http

import "github.com/gin-gonic/gin"

// Register mounts the public config route on rg and the identity route
// behind requireAuth.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/firebase-config", h.FirebaseConfig)
	rg.GET("/auth/me", requireAuth, h.Me)
}
