package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civichero/civichero-backend/internal/auth"
)

// Me returns the identity carried by the caller's ID token
func (h *Handler) Me(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	resp := MeResponse{
		UID:   uid,
		Email: auth.UserEmail(c),
	}
	if tok := auth.Token(c); tok != nil {
		resp.Provider = tok.Firebase.SignInProvider
		resp.Claims = tok.Claims
	}

	c.JSON(http.StatusOK, resp)
}

// FirebaseConfig serves the web SDK configuration so browser clients never
// ship it in their bundle.
func (h *Handler) FirebaseConfig(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, h.webConfig)
}
