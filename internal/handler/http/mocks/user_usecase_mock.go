package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser   bool
	ShouldFailLogin        bool
	ShouldFailGetByID      bool
	ShouldFailLogout       bool
	ShouldFailAuthenticate bool
	ShouldFailDeleteUser   bool

	// Return values
	MockUser        entity.User
	MockUsers       []entity.User
	MockAccessToken string

	// Recorded calls
	LastScope       entity.SubjectScope
	DeletedID       uint
	DeletePermanent bool
	LoggedOut       []string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       1,
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, entity.ErrUserExists
	}
	u := m.MockUser
	u.Username, u.Email = username, email
	return &u, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("invalid credentials")
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return nil, errors.New("invalid token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, accessToken string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	m.LoggedOut = append(m.LoggedOut, accessToken)
	return nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	u := m.MockUser
	u.ID = userID
	return &u, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, scope entity.SubjectScope) ([]entity.User, error) {
	m.LastScope = scope
	return m.MockUsers, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID uint, permanent bool) error {
	if m.ShouldFailDeleteUser {
		return entity.ErrUserNotFound
	}
	m.DeletedID, m.DeletePermanent = userID, permanent
	return nil
}
