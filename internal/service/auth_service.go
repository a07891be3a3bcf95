package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hongminglow/escola-be/internal/auth"
	"github.com/hongminglow/escola-be/internal/models"
	"github.com/hongminglow/escola-be/internal/storage"
)

// AuthService verifies credentials against the user store.
type AuthService struct {
	users storage.UserStore
}

// NewAuthService wires the service to the user store.
func NewAuthService(users storage.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login returns the user owning identityNumber when password matches its hash.
// Unknown identity numbers and wrong passwords both yield ErrAuthentication.
func (s *AuthService) Login(ctx context.Context, identityNumber, password string) (models.User, error) {
	user, err := s.users.FindUserByIdentityNumber(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			auth.BurnPasswordCheck(password)
			return models.User{}, ErrAuthentication
		}
		return models.User{}, storageErr("find user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrAuthentication
	}
	return user, nil
}
