package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is what the service reads back from a verified access token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
