package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// UserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	Logout(ctx context.Context, accessToken string) error
	GetUserByID(ctx context.Context, userID uint) (*entity.User, error)
	ListUsers(ctx context.Context, scope entity.SubjectScope) ([]entity.User, error)
	// DeleteUser clears the user's remarks, both given and received, when permanent is set.
	DeleteUser(ctx context.Context, userID uint, permanent bool) error
}
