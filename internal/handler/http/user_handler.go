package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/dto"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	GetUser(*gin.Context)
	ListUsers(*gin.Context)
	GetCurrentUser(*gin.Context)
	DeleteCurrentUser(*gin.Context)
	DeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	remarks     usecasecontract.IRemarkUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, remarks usecasecontract.IRemarkUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		remarks:     remarks,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrUserExists) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, accessToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

// Logout revokes the access token the request was authenticated with.
func (h *UserHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextAccessToken)
	if token == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	if err := h.userUsecase.Logout(c.Request.Context(), token); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to logout")
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out successfully")
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c.Param("id"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ListUsers handles GET /users with the liked_by, disliked_by and remarked_by filters.
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	scope, err := remarkScope(ctx, h.remarks, entity.UserRefType, c.Query("liked_by"), c.Query("disliked_by"), c.Query("remarked_by"))
	if err != nil {
		respondError(c, err)
		return
	}
	users, err := h.userUsecase.ListUsers(ctx, entity.SubjectScope{RemarkedBy: scope})
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserListResponse(users))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteCurrentUser closes the caller's account. With permanent=true the account's remarks go too.
func (h *UserHandler) DeleteCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	permanent, _ := strconv.ParseBool(c.Query("permanent"))
	ctx := c.Request.Context()
	if err := h.userUsecase.DeleteUser(ctx, userID, permanent); err != nil {
		respondError(c, err)
		return
	}
	if token := c.GetString(middleware.ContextAccessToken); token != "" {
		_ = h.userUsecase.Logout(ctx, token)
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/:id for admins. Accounts closed with a soft delete can
// only be purged this way since their owners can no longer sign in.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if !isAdmin(c) {
		ErrorHandler(c, http.StatusForbidden, "Admin role required")
		return
	}
	userID, ok := parseID(c.Param("id"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	permanent, _ := strconv.ParseBool(c.Query("permanent"))
	if err := h.userUsecase.DeleteUser(c.Request.Context(), userID, permanent); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadSubject resolves a user profile for the remark handler.
func (h *UserHandler) LoadSubject(ctx context.Context, id uint) (entity.Ref, error) {
	user, err := h.userUsecase.GetUserByID(ctx, id)
	if err != nil {
		return entity.Ref{}, err
	}
	return user.RemarkSubject(), nil
}
