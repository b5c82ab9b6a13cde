package provision

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/amethystbot/amethyst/internal/domain/identity"
	identitymock "github.com/amethystbot/amethyst/internal/domain/identity/mock"
	"github.com/amethystbot/amethyst/internal/domain/provision/mock"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

type memberKey struct {
	guild snowflake.ID
	user  snowflake.ID
}

// memoryStore mimics insert-or-ignore semantics of the users tables.
type memoryStore struct {
	guilds   map[snowflake.ID]int
	users    map[memberKey]string
	settings map[memberKey]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		guilds:   map[snowflake.ID]int{},
		users:    map[memberKey]string{},
		settings: map[memberKey]bool{},
	}
}

func (s *memoryStore) Ensure(_ context.Context, guildID snowflake.ID) error {
	if _, ok := s.guilds[guildID]; !ok {
		s.guilds[guildID] = 3
	}
	return nil
}

type memoryUsers struct{ *memoryStore }

func (s memoryUsers) Ensure(_ context.Context, guildID, userID snowflake.ID, displayName string) error {
	k := memberKey{guildID, userID}
	if _, ok := s.users[k]; !ok {
		s.users[k] = displayName
	}
	if _, ok := s.settings[k]; !ok {
		s.settings[k] = true
	}
	return nil
}

func (s memoryUsers) Remove(_ context.Context, guildID, userID snowflake.ID) error {
	k := memberKey{guildID, userID}
	delete(s.users, k)
	delete(s.settings, k)
	return nil
}

func (s memoryUsers) DisplayName(_ context.Context, guildID, userID snowflake.ID) (string, error) {
	name, ok := s.users[memberKey{guildID, userID}]
	if !ok {
		return "", sql.ErrNoRows
	}
	return name, nil
}

func (s memoryUsers) UpdateDisplayName(_ context.Context, guildID, userID snowflake.ID, displayName string) error {
	k := memberKey{guildID, userID}
	if _, ok := s.users[k]; ok {
		s.users[k] = displayName
	}
	return nil
}

func Test_Provisioner_EnsureUser_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := newMemoryStore()
		users := memoryUsers{store}
		cache, err := identity.NewCache(users, 16)
		if err != nil {
			t.Fatal(err)
		}
		p := NewProvisioner(store, users, cache)

		guild := snowflake.ID(rapid.Uint64Range(1, 1<<40).Draw(t, "guild"))
		profile := identity.Profile{
			UserID:   snowflake.ID(rapid.Uint64Range(1, 1<<40).Draw(t, "user")),
			Username: rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "name"),
		}
		n := rapid.IntRange(1, 20).Draw(t, "calls")

		for i := 0; i < n; i++ {
			if _, err := p.EnsureUser(context.Background(), guild, profile); err != nil {
				t.Fatal(err)
			}
		}

		if len(store.users) != 1 || len(store.settings) != 1 {
			t.Fatalf("expected exactly one row per table, got users=%d settings=%d", len(store.users), len(store.settings))
		}
		if got := store.users[memberKey{guild, profile.UserID}]; got != profile.Username {
			t.Fatalf("display name = %q, want %q", got, profile.Username)
		}
	})
}

func Test_Provisioner_EnsureUser_ReconcilesName(t *testing.T) {
	store := newMemoryStore()
	users := memoryUsers{store}
	cache, err := identity.NewCache(users, 16)
	require.NoError(t, err)
	p := NewProvisioner(store, users, cache)

	nick := "Amethyst"
	profile := identity.Profile{UserID: 7, Username: "amy"}
	_, err = p.EnsureUser(context.Background(), 1, profile)
	require.NoError(t, err)

	profile.Nickname = &nick
	label, err := p.EnsureUser(context.Background(), 1, profile)
	require.NoError(t, err)
	assert.Equal(t, "Amethyst", label)
	assert.Equal(t, "Amethyst", store.users[memberKey{1, 7}])
}

func Test_Provisioner_EnsureUser_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	guilds := mock.NewMockGuildRepository(ctrl)
	cache, err := identity.NewCache(identitymock.NewMockRepository(ctrl), 16)
	require.NoError(t, err)

	boom := errors.New("connection reset")
	users.EXPECT().Ensure(gomock.Any(), snowflake.ID(1), snowflake.ID(2), "amy").Return(boom)

	p := NewProvisioner(guilds, users, cache)
	_, err = p.EnsureUser(context.Background(), 1, identity.Profile{UserID: 2, Username: "amy"})
	assert.ErrorIs(t, err, boom)
}

func Test_Provisioner_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	guilds := mock.NewMockGuildRepository(ctrl)
	identities := identitymock.NewMockRepository(ctrl)
	cache, err := identity.NewCache(identities, 16)
	require.NoError(t, err)
	cache.Remember(1, 2, "amy")

	users.EXPECT().Remove(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return(nil)
	guilds.EXPECT().Ensure(gomock.Any(), snowflake.ID(1)).Return(nil)

	p := NewProvisioner(guilds, users, cache)
	require.NoError(t, p.RemoveMember(context.Background(), 1, 2))
	require.NoError(t, p.EnsureGuild(context.Background(), 1))

	// cache entry is gone, so the next sync reads the store again
	identities.EXPECT().DisplayName(gomock.Any(), snowflake.ID(1), snowflake.ID(2)).Return("", sql.ErrNoRows)
	_, err = cache.Sync(context.Background(), 1, identity.Profile{UserID: 2, Username: "amy"})
	require.NoError(t, err)
}
