package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	handler "github.com/mikiasgoitom/Remarks/internal/handler/http"
	dto "github.com/mikiasgoitom/Remarks/internal/handler/http/dto"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/Remarks/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterCustomValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupRouter(h *handler.UserHandler, users *mocks.MockUserUsecase) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.POST("/login", h.Login)
	r.GET("/users", middleware.OptionalAuthMiddleWare(users), h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	authed := r.Group("/", middleware.AuthMiddleWare(users))
	authed.GET("/me", h.GetCurrentUser)
	authed.DELETE("/me", h.DeleteCurrentUser)
	authed.POST("/logout", h.Logout)
	return r
}

func newUserHandler() (*gin.Engine, *mocks.MockUserUsecase, *mocks.MockRemarkUsecase) {
	users := mocks.NewMockUserUsecase()
	remarks := mocks.NewMockRemarkUsecase()
	return setupRouter(handler.NewUserHandler(users, remarks), users), users, remarks
}

func doJSON(r http.Handler, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	r, _, _ := newUserHandler()
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	w := doJSON(r, http.MethodPost, "/register", payload, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"testuser"`)
	assert.NotContains(t, w.Body.String(), "Password")
}

func TestCreateUser_Fail(t *testing.T) {
	r, users, _ := newUserHandler()

	// Missing password to trigger validation error
	w := doJSON(r, http.MethodPost, "/register", dto.CreateUserRequest{Username: "testuser", Email: "test@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")

	w = doJSON(r, http.MethodPost, "/register", dto.CreateUserRequest{Username: "testuser", Email: "test@example.com", Password: "weakpassword"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "containsuppercase")

	users.ShouldFailCreateUser = true
	w = doJSON(r, http.MethodPost, "/register", dto.CreateUserRequest{Username: "testuser", Email: "test@example.com", Password: "Password123!"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r, _, _ := newUserHandler()
	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Email: "test@example.com", Password: "Password123!"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_Fail(t *testing.T) {
	r, users, _ := newUserHandler()
	users.ShouldFailLogin = true
	w := doJSON(r, http.MethodPost, "/login", dto.LoginRequest{Email: "test@example.com", Password: "Password123!"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doJSON(r, http.MethodPost, "/login", map[string]string{"email": "test@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	r, _, _ := newUserHandler()
	w := doJSON(r, http.MethodGet, "/users/5", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":5`)

	w = doJSON(r, http.MethodGet, "/users/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser_Fail(t *testing.T) {
	r, users, _ := newUserHandler()
	users.ShouldFailGetByID = true
	w := doJSON(r, http.MethodGet, "/users/5", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestGetCurrentUser(t *testing.T) {
	r, _, _ := newUserHandler()

	w := doJSON(r, http.MethodGet, "/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/me", nil, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestDeleteCurrentUser(t *testing.T) {
	r, users, _ := newUserHandler()

	w := doJSON(r, http.MethodDelete, "/me?permanent=true", nil, "mock_access_token")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(1), users.DeletedID)
	assert.True(t, users.DeletePermanent)
	assert.Equal(t, []string{"mock_access_token"}, users.LoggedOut)

	w = doJSON(r, http.MethodDelete, "/me", nil, "mock_access_token")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, users.DeletePermanent)
}

func TestLogout(t *testing.T) {
	r, users, _ := newUserHandler()
	w := doJSON(r, http.MethodPost, "/logout", nil, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"mock_access_token"}, users.LoggedOut)

	users.ShouldFailLogout = true
	w = doJSON(r, http.MethodPost, "/logout", nil, "mock_access_token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListUsers_RemarkFilters(t *testing.T) {
	r, users, _ := newUserHandler()
	users.MockUsers = []entity.User{{ID: 2, Username: "bob"}}

	w := doJSON(r, http.MethodGet, "/users?liked_by=7", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
	if assert.NotNil(t, users.LastScope.RemarkedBy) {
		assert.Equal(t, entity.NewRef(entity.UserRefType, 7), users.LastScope.RemarkedBy.Actor)
		assert.Equal(t, entity.RemarkKindLike, users.LastScope.RemarkedBy.Kind)
		assert.Equal(t, entity.UserRefType, users.LastScope.RemarkedBy.Subject.Type)
	}

	w = doJSON(r, http.MethodGet, "/users", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, users.LastScope.RemarkedBy)

	w = doJSON(r, http.MethodGet, "/users?liked_by=7&disliked_by=7", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/users?remarked_by=someone", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
