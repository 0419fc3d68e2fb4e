package entity

import (
	"time"
)

// UserRefType is the type tag users carry in remark references.
const UserRefType = "users"

// User represents a registered user in the system
type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// RemarkActor lets a user make remarks.
func (u *User) RemarkActor() Ref {
	return NewRef(UserRefType, u.ID)
}

// RemarkSubject lets a user's profile receive remarks.
func (u *User) RemarkSubject() Ref {
	return NewRef(UserRefType, u.ID)
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}
