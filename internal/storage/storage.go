package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/escola-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by the auth flows.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByIdentityNumber(ctx context.Context, identityNumber string) (models.User, error)
}

// ClassStore captures class ("turma") persistence operations.
type ClassStore interface {
	CreateClass(ctx context.Context, class models.Class) (models.Class, error)
	FindClassByCode(ctx context.Context, code string) (models.Class, error)
}

// Store is the full credential store used by the server.
type Store interface {
	UserStore
	ClassStore
	Ping(ctx context.Context) error
}
