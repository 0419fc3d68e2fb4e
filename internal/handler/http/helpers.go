package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/dto"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// remarkErrorStatus maps domain errors to HTTP status codes.
func remarkErrorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidKind),
		errors.Is(err, entity.ErrInvalidActor),
		errors.Is(err, entity.ErrInvalidSubject),
		errors.Is(err, errOneRemarkFilter):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNoActor):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrRemarkConflict),
		errors.Is(err, entity.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrRemarkNotFound),
		errors.Is(err, entity.ErrPostNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Internal errors are not echoed to the client.
func respondError(c *gin.Context, err error) {
	status := remarkErrorStatus(err)
	if status == http.StatusInternalServerError {
		ErrorHandler(c, status, "internal server error")
		return
	}
	ErrorHandler(c, status, err.Error())
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get(middleware.ContextUserRole)
	return role == entity.UserRoleAdmin
}

// actorParam turns a liked_by style value into an actor. "me" leaves the actor to the request context.
func actorParam(raw string) (*entity.Ref, error) {
	if raw == "me" {
		return nil, nil
	}
	id, ok := parseID(raw)
	if !ok {
		return nil, entity.ErrInvalidActor
	}
	ref := entity.NewRef(entity.UserRefType, id)
	return &ref, nil
}
