package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/auth"
	"github.com/civichero/civichero-backend/internal/logging"
)

// TokenVerifier is the part of the Firebase auth handle the middleware needs.
// *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseAuthMiddleware validates Firebase ID tokens and extracts user info
func FirebaseAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		if !verify(c, verifier, logger, token) {
			return
		}
		c.Next()
	}
}

// OptionalFirebaseAuthMiddleware lets anonymous requests through but still
// rejects a token that is present and invalid.
func OptionalFirebaseAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" && !verify(c, verifier, logger, token) {
			return
		}
		c.Next()
	}
}

func verify(c *gin.Context, verifier TokenVerifier, logger *zap.Logger, token string) bool {
	decodedToken, err := verifier.VerifyIDToken(c.Request.Context(), token)
	if err != nil {
		logging.For(c.Request.Context(), logger).Debug("id token rejected", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return false
	}

	c.Set(auth.CtxFirebaseUID, decodedToken.UID)

	if email, ok := decodedToken.Claims["email"].(string); ok {
		c.Set(auth.CtxEmail, email)
	}

	c.Set(auth.CtxFirebaseToken, decodedToken)
	return true
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
