package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/departments/domain"
	"github.com/civichero/civichero-backend/internal/departments/service"
)

type fakeRepo struct {
	departments []domain.Department
	err         error
}

func (f *fakeRepo) List(context.Context) ([]domain.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Department{}, f.departments...), nil
}

func (f *fakeRepo) Create(_ context.Context, d *domain.Department) error {
	if f.err != nil {
		return f.err
	}
	d.ID = int64(len(f.departments) + 1)
	f.departments = append(f.departments, *d)
	return nil
}

func setupRouter(repo *fakeRepo, write ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewDepartmentService(repo, zap.NewNop())).Register(r.Group("/api"), write...)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListDepartments(t *testing.T) {
	r := setupRouter(&fakeRepo{departments: []domain.Department{{ID: 1, Name: "Roads", Description: "Potholes"}}})

	rr := serve(r, http.MethodGet, "/api/departments/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Roads","description":"Potholes"}]`, rr.Body.String())
}

func TestListDepartments_Empty(t *testing.T) {
	r := setupRouter(&fakeRepo{})

	rr := serve(r, http.MethodGet, "/api/departments/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListDepartments_StoreError(t *testing.T) {
	r := setupRouter(&fakeRepo{err: errors.New("db down")})

	rr := serve(r, http.MethodGet, "/api/departments/", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db down")
}

func TestCreateDepartment(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := &fakeRepo{}
		r := setupRouter(repo)

		rr := serve(r, http.MethodPost, "/api/departments/", `{"name":"Roads","description":"Potholes"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":1,"name":"Roads","description":"Potholes"}`, rr.Body.String())
		assert.Len(t, repo.departments, 1)
	})

	t.Run("validation errors name the fields", func(t *testing.T) {
		r := setupRouter(&fakeRepo{})

		rr := serve(r, http.MethodPost, "/api/departments/", `{"name":""}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var body struct {
			Error  string              `json:"error"`
			Fields map[string][]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Fields, "name")
		assert.Contains(t, body.Fields, "description")
	})

	t.Run("malformed json", func(t *testing.T) {
		r := setupRouter(&fakeRepo{})

		rr := serve(r, http.MethodPost, "/api/departments/", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid JSON body")
	})

	t.Run("write middleware guards create only", func(t *testing.T) {
		deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
		r := setupRouter(&fakeRepo{}, deny)

		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/api/departments/", `{}`).Code)
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/departments/", "").Code)
	})
}
