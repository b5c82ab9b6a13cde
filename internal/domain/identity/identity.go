package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"
)

// Profile is the subset of a platform user that feeds the display label.
type Profile struct {
	UserID     snowflake.ID
	Nickname   *string
	GlobalName *string
	Username   string
	AvatarURL  string
}

func FromUser(u discord.User) Profile {
	return Profile{
		UserID:     u.ID,
		GlobalName: u.GlobalName,
		Username:   u.Username,
		AvatarURL:  u.EffectiveAvatarURL(),
	}
}

func FromMember(m discord.Member) Profile {
	p := FromUser(m.User)
	p.Nickname = m.Nick
	p.AvatarURL = m.EffectiveAvatarURL()
	return p
}

// Resolve picks the guild nickname, then the global display name, then the handle.
func Resolve(p Profile) string {
	for _, name := range []*string{p.Nickname, p.GlobalName} {
		if name != nil && *name != "" {
			return *name
		}
	}
	return p.Username
}

type Repository interface {
	DisplayName(ctx context.Context, guildID, userID snowflake.ID) (string, error)
	UpdateDisplayName(ctx context.Context, guildID, userID snowflake.ID, displayName string) error
}

type cacheKey struct {
	guildID snowflake.ID
	userID  snowflake.ID
}

// Cache keeps users.display_name in step with the platform profile.
type Cache struct {
	repository Repository
	labels     *lru.Cache
}

func NewCache(repository Repository, size int) (*Cache, error) {
	labels, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create label cache: %w", err)
	}
	return &Cache{repository: repository, labels: labels}, nil
}

// Sync resolves the label for p and writes it back when it differs from the
// stored one. A missing users row is not an error.
func (c *Cache) Sync(ctx context.Context, guildID snowflake.ID, p Profile) (string, error) {
	label := Resolve(p)
	key := cacheKey{guildID: guildID, userID: p.UserID}

	if cached, ok := c.labels.Get(key); ok && cached.(string) == label {
		return label, nil
	}

	stored, err := c.repository.DisplayName(ctx, guildID, p.UserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return label, nil
	case err != nil:
		return label, fmt.Errorf("failed to read display name: %w", err)
	}

	if stored != label {
		if err = c.repository.UpdateDisplayName(ctx, guildID, p.UserID, label); err != nil {
			return label, fmt.Errorf("failed to update display name: %w", err)
		}
		slog.Debug("Display name refreshed",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", p.UserID.String()),
			slog.String("display_name", label))
	}

	c.labels.Add(key, label)
	return label, nil
}

// Remember records a label known to be persisted.
func (c *Cache) Remember(guildID, userID snowflake.ID, label string) {
	c.labels.Add(cacheKey{guildID: guildID, userID: userID}, label)
}

func (c *Cache) Forget(guildID, userID snowflake.ID) {
	c.labels.Remove(cacheKey{guildID: guildID, userID: userID})
}
