package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/auth"
)

type stubAuthenticator struct {
	user *entity.User
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.user, nil
}

func newEngine(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", mw, func(c *gin.Context) {
		actor, ok := auth.ActorFromContext(c.Request.Context())
		id, _ := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"actor": actor.String(), "ok": ok, "id": id})
	})
	return r
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleWare(t *testing.T) {
	r := newEngine(AuthMiddleWare(stubAuthenticator{user: &entity.User{ID: 7, Role: entity.UserRoleUser}}))

	w := serve(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, "Basic good")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":"users:7"`)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestOptionalAuthMiddleWare(t *testing.T) {
	r := newEngine(OptionalAuthMiddleWare(stubAuthenticator{user: &entity.User{ID: 7}}))

	w := serve(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)

	w = serve(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)

	w = serve(r, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer    ", "good"} {
		w = serve(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Contains(t, w.Body.String(), "bearer token", header)
	}
}
