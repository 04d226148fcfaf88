package auth

import (
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID   = "firebase_uid"
	CtxEmail         = "email"
	CtxFirebaseToken = "firebase_token"
)

// UserFirebaseUID extracts the Firebase UID from the Gin context
// This is set by FirebaseAuthMiddleware
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}

func UserEmail(c *gin.Context) string {
	return c.GetString(CtxEmail)
}

// Token returns the decoded ID token, or nil for anonymous requests.
func Token(c *gin.Context) *fbauth.Token {
	v, ok := c.Get(CtxFirebaseToken)
	if !ok {
		return nil
	}
	tok, _ := v.(*fbauth.Token)
	return tok
}
