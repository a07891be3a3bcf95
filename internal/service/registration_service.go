package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/escola-be/internal/auth"
	"github.com/hongminglow/escola-be/internal/models"
	"github.com/hongminglow/escola-be/internal/models/dto"
	"github.com/hongminglow/escola-be/internal/storage"
)

// RegistrationService creates users and classes after a uniqueness check.
type RegistrationService struct {
	users   storage.UserStore
	classes storage.ClassStore
}

// NewRegistrationService creates the service; users and classes may be the same store.
func NewRegistrationService(users storage.UserStore, classes storage.ClassStore) *RegistrationService {
	return &RegistrationService{users: users, classes: classes}
}

// RegisterUser stores a new user with a hashed password. Fields other than the
// postal code and password are stored exactly as received.
func (s *RegistrationService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (models.User, error) {
	_, err := s.users.FindUserByIdentityNumber(ctx, req.IdentityNumber)
	switch {
	case err == nil:
		return models.User{}, ErrDuplicateEntity
	case !errors.Is(err, storage.ErrNotFound):
		return models.User{}, storageErr("check identity number", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, errors.Wrap(ErrInvalidInput, "password longer than 72 bytes")
		}
		return models.User{}, errors.Wrap(err, "hash password")
	}

	created, err := s.users.CreateUser(ctx, models.User{
		Name:           req.Name,
		Email:          req.Email,
		IdentityNumber: req.IdentityNumber,
		PasswordHash:   hash,
		Phone:          req.Phone,
		PostalCode:     NormalizePostalCode(req.PostalCode),
		Street:         req.Street,
		District:       req.District,
		City:           req.City,
		State:          req.State,
		Image:          req.Image,
		UserTypeID:     req.UserTypeRef,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, ErrDuplicateEntity
		}
		return models.User{}, storageErr("create user", err)
	}
	return created, nil
}

// RegisterClass stores a new class unless its code is taken.
func (s *RegistrationService) RegisterClass(ctx context.Context, req dto.RegisterClassRequest) (models.Class, error) {
	_, err := s.classes.FindClassByCode(ctx, req.Code)
	switch {
	case err == nil:
		return models.Class{}, ErrDuplicateEntity
	case !errors.Is(err, storage.ErrNotFound):
		return models.Class{}, storageErr("check class code", err)
	}

	created, err := s.classes.CreateClass(ctx, models.Class{
		Code:        req.Code,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Image:       req.Image,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.Class{}, ErrDuplicateEntity
		}
		return models.Class{}, storageErr("create class", err)
	}
	return created, nil
}

// NormalizePostalCode strips hyphens: "12345-678" becomes "12345678".
func NormalizePostalCode(cep string) string {
	return strings.ReplaceAll(cep, "-", "")
}
