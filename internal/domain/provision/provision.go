package provision

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/disgoorg/snowflake/v2"
)

type GuildRepository interface {
	Ensure(ctx context.Context, guildID snowflake.ID) error
}

type UserRepository interface {
	Ensure(ctx context.Context, guildID, userID snowflake.ID, displayName string) error
	Remove(ctx context.Context, guildID, userID snowflake.ID) error
}

// Provisioner guarantees the per-guild and per-member rows exist before
// anything mutates them. Every operation is idempotent.
type Provisioner struct {
	guilds     GuildRepository
	users      UserRepository
	identities *identity.Cache
}

func NewProvisioner(guilds GuildRepository, users UserRepository, identities *identity.Cache) *Provisioner {
	return &Provisioner{guilds: guilds, users: users, identities: identities}
}

func (p *Provisioner) EnsureGuild(ctx context.Context, guildID snowflake.ID) error {
	return p.guilds.Ensure(ctx, guildID)
}

// EnsureUser creates the member rows if absent and reconciles the cached
// display name. It returns the resolved label.
func (p *Provisioner) EnsureUser(ctx context.Context, guildID snowflake.ID, profile identity.Profile) (string, error) {
	label := identity.Resolve(profile)
	if err := p.users.Ensure(ctx, guildID, profile.UserID, label); err != nil {
		return label, err
	}
	if _, err := p.identities.Sync(ctx, guildID, profile); err != nil {
		return label, fmt.Errorf("failed to sync identity: %w", err)
	}
	return label, nil
}

func (p *Provisioner) RemoveMember(ctx context.Context, guildID, userID snowflake.ID) error {
	p.identities.Forget(guildID, userID)
	return p.users.Remove(ctx, guildID, userID)
}
