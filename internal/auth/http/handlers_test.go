package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civichero/civichero-backend/internal/auth"
	"github.com/civichero/civichero-backend/internal/backend"
)

func setupRouter(requireAuth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(backend.Config{
		APIKey:      "public-key",
		AuthDomain:  "civichero-test.firebaseapp.com",
		DatabaseURL: "https://civichero-test-default-rtdb.firebaseio.com",
		ProjectID:   "civichero-test",
	}.Public())
	h.Register(r.Group("/api"), requireAuth)
	return r
}

func TestFirebaseConfig(t *testing.T) {
	r := setupRouter(func(c *gin.Context) { c.Next() })

	req := httptest.NewRequest(http.MethodGet, "/api/firebase-config", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=300", rr.Header().Get("Cache-Control"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "public-key", got["apiKey"])
	assert.Equal(t, "civichero-test", got["projectId"])
	assert.Equal(t, "https://civichero-test-default-rtdb.firebaseio.com", got["databaseURL"])
	assert.NotContains(t, got, "appId")
}

func TestMe(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		r := setupRouter(func(c *gin.Context) {
			tok := &fbauth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": "a@b.c"}}
			tok.Firebase.SignInProvider = "password"
			c.Set(auth.CtxFirebaseUID, tok.UID)
			c.Set(auth.CtxEmail, "a@b.c")
			c.Set(auth.CtxFirebaseToken, tok)
			c.Next()
		})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got MeResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "uid-1", got.UID)
		assert.Equal(t, "a@b.c", got.Email)
		assert.Equal(t, "password", got.Provider)
	})

	t.Run("no identity in context", func(t *testing.T) {
		r := setupRouter(func(c *gin.Context) { c.Next() })

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
