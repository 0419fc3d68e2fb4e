package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// Constants for common error messages
const (
	errInvalidCredentials = "invalid credentials"
	errInternalServer     = "internal server error"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	remarks    *RemarkUsecase
	hasher     contract.IHasher
	jwtService JWTService
	denylist   contract.ITokenDenylist
	logger     usecasecontract.IAppLogger
	config     usecasecontract.IConfigProvider
	validator  usecasecontract.IValidator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	remarks *RemarkUsecase,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		remarks:    remarks,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		config:     cfg,
		validator:  validator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// SetDenylist enables access token revocation on logout.
func (uc *UserUsecase) SetDenylist(denylist contract.ITokenDenylist) {
	uc.denylist = denylist
}

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("weak password: %w", err)
	}

	// Check if user with same username or email already exists
	if existing, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email %s", entity.ErrUserExists, email)
	} else if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existing, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %s", entity.ErrUserExists, username)
	} else if err != nil && !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, errors.New(errInternalServer)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	uc.logger.Infof("user %d registered", user.ID)
	return user, nil
}

// Login handles user login and token generation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	var user *entity.User
	var err error

	if uc.validator.ValidateEmail(email) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, email)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, email)
	}
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", errors.New(errInvalidCredentials)
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", errors.New(errInvalidCredentials)
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(strconv.FormatUint(uint64(user.ID), 10), user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, accessToken, nil
}

// Authenticate handles user authentication using access tokens.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	if uc.denylist != nil && claims.ID != "" {
		revoked, err := uc.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			uc.logger.Errorf("failed to check token revocation: %v", err)
			return nil, errors.New(errInternalServer)
		}
		if revoked {
			return nil, errors.New("access token revoked")
		}
	}

	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid access token subject %q", claims.UserID)
	}
	user, err := uc.userRepo.GetUserByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

// Logout revokes the access token until it expires.
func (uc *UserUsecase) Logout(ctx context.Context, accessToken string) error {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return fmt.Errorf("invalid access token: %w", err)
	}
	if uc.denylist == nil {
		uc.logger.Warnf("logout for user %s without a token denylist; token stays valid until expiry", claims.UserID)
		return nil
	}

	ttl := uc.config.GetAccessTokenExpiry()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := uc.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		uc.logger.Errorf("failed to revoke token for user %s: %v", claims.UserID, err)
		return errors.New(errInternalServer)
	}
	return nil
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID uint) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

func (uc *UserUsecase) ListUsers(ctx context.Context, scope entity.SubjectScope) ([]entity.User, error) {
	scope, err := uc.remarks.ResolveScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.ListUsers(ctx, scope)
}

// DeleteUser removes a user. Permanent deletion first clears remarks made by the user and
// remarks made on the user's profile.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID uint, permanent bool) error {
	if permanent {
		user := &entity.User{ID: userID}
		if err := uc.remarks.ForActor(user).ClearRemarks(ctx); err != nil {
			return fmt.Errorf("failed to clear remarks by user %d: %w", userID, err)
		}
		if err := uc.remarks.ForSubject(user).ClearRemarks(ctx); err != nil {
			return fmt.Errorf("failed to clear remarks on user %d: %w", userID, err)
		}
	}
	if err := uc.userRepo.DeleteUser(ctx, userID, permanent); err != nil {
		return err
	}
	uc.logger.Infof("user %d deleted (permanent=%t)", userID, permanent)
	return nil
}
