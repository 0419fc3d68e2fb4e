package contract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns users, restricted by scope.
	ListUsers(ctx context.Context, scope entity.SubjectScope) ([]entity.User, error)
	// DeleteUser removes a user by ID. A soft delete keeps the row recoverable.
	DeleteUser(ctx context.Context, id uint, permanent bool) error
}
