package repositories_test

import (
	"context"
	"testing"

	"github.com/rohits-web03/postdev/internal/repositories"
	"github.com/rohits-web03/postdev/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	users := repositories.NewUserRepository(db)
	ctx := context.Background()

	first, err := users.GetOrCreate(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), first.ID)
	assert.Empty(t, first.Username)

	require.NoError(t, users.SetUsername(ctx, 1001, "alice"))

	again, err := users.GetOrCreate(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetUsernameUnknownUser(t *testing.T) {
	db := testutil.NewDB(t)
	users := repositories.NewUserRepository(db)

	err := users.SetUsername(context.Background(), 5, "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
