package identity

import (
	"context"
	"database/sql"
	"testing"

	"github.com/amethystbot/amethyst/internal/domain/identity/mock"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func Test_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{
			name:    "nickname wins",
			profile: Profile{Nickname: strPtr("Nick"), GlobalName: strPtr("Global"), Username: "handle"},
			want:    "Nick",
		},
		{
			name:    "global name when no nickname",
			profile: Profile{GlobalName: strPtr("Global"), Username: "handle"},
			want:    "Global",
		},
		{
			name:    "empty nickname falls through",
			profile: Profile{Nickname: strPtr(""), Username: "handle"},
			want:    "handle",
		},
		{
			name:    "handle only",
			profile: Profile{Username: "handle"},
			want:    "handle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.profile))
		})
	}
}

func Test_Cache_Sync(t *testing.T) {
	const guild = snowflake.ID(1)
	profile := Profile{UserID: 2, Nickname: strPtr("Amy"), Username: "amy"}

	t.Run("writes back when label changed", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().DisplayName(gomock.Any(), guild, profile.UserID).Return("old", nil)
		repo.EXPECT().UpdateDisplayName(gomock.Any(), guild, profile.UserID, "Amy").Return(nil)

		c, err := NewCache(repo, 16)
		require.NoError(t, err)

		label, err := c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
		assert.Equal(t, "Amy", label)

		// second call is served from the cache
		label, err = c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
		assert.Equal(t, "Amy", label)
	})

	t.Run("no write when unchanged", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().DisplayName(gomock.Any(), guild, profile.UserID).Return("Amy", nil)

		c, err := NewCache(repo, 16)
		require.NoError(t, err)

		_, err = c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().DisplayName(gomock.Any(), guild, profile.UserID).Return("", sql.ErrNoRows)

		c, err := NewCache(repo, 16)
		require.NoError(t, err)

		label, err := c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
		assert.Equal(t, "Amy", label)
	})

	t.Run("forget forces a reread", func(t *testing.T) {
		repo := mock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().DisplayName(gomock.Any(), guild, profile.UserID).Return("Amy", nil).Times(2)

		c, err := NewCache(repo, 16)
		require.NoError(t, err)

		_, err = c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
		c.Forget(guild, profile.UserID)
		_, err = c.Sync(context.Background(), guild, profile)
		require.NoError(t, err)
	})
}
