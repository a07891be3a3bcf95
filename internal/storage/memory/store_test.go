package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/escola-be/internal/models"
	"github.com/hongminglow/escola-be/internal/storage"
)

func TestStoreUsers(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.FindUserByIdentityNumber(ctx, "111")
	require.ErrorIs(t, err, storage.ErrNotFound)

	created, err := s.CreateUser(ctx, models.User{IdentityNumber: "111", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = s.CreateUser(ctx, models.User{IdentityNumber: "111", Name: "Outra"})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.Equal(t, 1, s.UserCount())

	found, err := s.FindUserByIdentityNumber(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.Name)
}

func TestStoreClasses(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateClass(ctx, models.Class{Code: "T1"})
	require.NoError(t, err)
	_, err = s.CreateClass(ctx, models.Class{Code: "T1"})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = s.FindClassByCode(ctx, "T2")
	require.ErrorIs(t, err, storage.ErrNotFound)
}
