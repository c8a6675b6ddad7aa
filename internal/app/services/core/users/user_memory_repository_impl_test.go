package users

import (
	"context"
	"errors"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserMemoryRepository(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	user := &models.User{ID: "u-1", Email: "Doctor@YanYuCloud.com", Name: "Dr"}
	id, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)

	found, err := repo.FindByEmail(ctx, "doctor@yanyucloud.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u-1", found.ID)

	_, err = repo.CreateUser(ctx, &models.User{ID: "u-2", Email: "doctor@yanyucloud.com"})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.ErrCodeEmailAlreadyExists, customErr.Code)

	missing, err := repo.FindByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	found.Name = "Dr. Updated"
	require.NoError(t, repo.UpdateUser(ctx, found))
	updated, _ := repo.FindByID(ctx, "u-1")
	assert.Equal(t, "Dr. Updated", updated.Name)

	err = repo.UpdateUser(ctx, &models.User{ID: "ghost"})
	assert.Error(t, err)
}

func TestSeedDemoUsers(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	seeded, err := SeedDemoUsers(ctx, repo, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, seeded, 3)

	doctor, err := repo.FindByEmail(ctx, "doctor@yanyucloud.com")
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.True(t, utils.CheckPasswordHash("doctor123", doctor.Password))
	assert.NotEqual(t, "doctor123", doctor.Password)

	nurse, _ := repo.FindByEmail(ctx, "nurse@yanyucloud.com")
	assert.True(t, nurse.IsDisabled())

	again, err := SeedDemoUsers(ctx, repo, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, again, "seeding twice must not duplicate users")
}
