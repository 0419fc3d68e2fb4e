package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/auth"
)

// Keys set on the gin context for authenticated requests.
const (
	ContextUserID      = "userID"
	ContextUserRole    = "userRole"
	ContextAccessToken = "accessToken"
)

// Authenticator resolves an access token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

// AuthMiddleWare rejects requests without a valid bearer token.
func AuthMiddleWare(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abort(c, "Authorization header required")
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			abort(c, "Authorization header must be a bearer token")
			return
		}
		if !authenticate(c, authenticator, token) {
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleWare lets requests without an Authorization header through anonymously.
// Any header that is present must carry a valid bearer token.
func OptionalAuthMiddleWare(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		token, ok := bearerToken(c)
		if !ok {
			abort(c, "Authorization header must be a bearer token")
			return
		}
		if !authenticate(c, authenticator, token) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, authenticator Authenticator, token string) bool {
	user, err := authenticator.Authenticate(c.Request.Context(), token)
	if err != nil {
		abort(c, "Invalid or expired token")
		return false
	}
	c.Set(ContextUserID, user.ID)
	c.Set(ContextUserRole, user.Role)
	c.Set(ContextAccessToken, token)
	c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), user.RemarkActor()))
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
