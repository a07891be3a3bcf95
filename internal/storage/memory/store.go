// Package memory is a process-local Store used as a test double for the database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hongminglow/escola-be/internal/models"
	"github.com/hongminglow/escola-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users by identity number and classes by code, guarded by a RWMutex.
// Ids are assigned sequentially from 1.
type Store struct {
	mu       sync.RWMutex
	nextUser int64
	nextCls  int64
	users    map[string]models.User  // identity number -> user
	classes  map[string]models.Class // code -> class
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		users:   make(map[string]models.User),
		classes: make(map[string]models.Class),
	}
}

// CreateUser inserts user, returning storage.ErrAlreadyExists when its identity number is taken.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.IdentityNumber]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	s.nextUser++
	user.ID = s.nextUser
	user.CreatedAt = time.Now().UTC()
	s.users[user.IdentityNumber] = user
	return user, nil
}

// FindUserByIdentityNumber returns storage.ErrNotFound for unknown identity numbers.
func (s *Store) FindUserByIdentityNumber(_ context.Context, identityNumber string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[identityNumber]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// CreateClass inserts class, returning storage.ErrAlreadyExists when its code is taken.
func (s *Store) CreateClass(_ context.Context, class models.Class) (models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.classes[class.Code]; ok {
		return models.Class{}, storage.ErrAlreadyExists
	}
	s.nextCls++
	class.ID = s.nextCls
	class.CreatedAt = time.Now().UTC()
	s.classes[class.Code] = class
	return class, nil
}

// FindClassByCode returns storage.ErrNotFound for unknown codes.
func (s *Store) FindClassByCode(_ context.Context, code string) (models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	class, ok := s.classes[code]
	if !ok {
		return models.Class{}, storage.ErrNotFound
	}
	return class, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// UserCount reports how many users are stored.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
