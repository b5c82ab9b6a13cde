package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

const birthdayChannelMissing = "You must select a channel to post birthday announcements in before using this command!"

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
}

// guildID is only called from guild-only commands.
func guildID(e *handler.CommandEvent) snowflake.ID {
	return *e.GuildID()
}

func invoker(e *handler.CommandEvent) identity.Profile {
	if m := e.Member(); m != nil {
		return identity.FromMember(m.Member)
	}
	return identity.FromUser(e.User())
}

// optionProfile reads a user option, preferring the member nickname.
func optionProfile(data discord.SlashCommandInteractionData, name string) identity.Profile {
	p := identity.FromUser(data.User(name))
	if m, ok := data.OptMember(name); ok && m.Nick != nil {
		p.Nickname = m.Nick
	}
	return p
}

// ensureTarget provisions a member named in a command option and returns
// their label.
func ensureTarget(ctx context.Context, b *amethyst.Bot, g snowflake.ID, p identity.Profile) (string, error) {
	name, err := b.Provisioner.EnsureUser(ctx, g, p)
	if err != nil {
		return "", fmt.Errorf("failed to ensure target: %w", err)
	}
	return name, nil
}

func guildSettings(ctx context.Context, b *amethyst.Bot, g snowflake.ID) (*models.GuildSettings, error) {
	settings, err := b.Guilds.Get(ctx, g)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.GuildSettings{GuildID: g}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}
	return settings, nil
}

type roleSetting func(*models.GuildSettings) *snowflake.ID

func quotesRole(s *models.GuildSettings) *snowflake.ID { return s.QuotesRequiredRole }

func gifsRole(s *models.GuildSettings) *snowflake.ID { return s.CustomGifsRequiredRole }

// missingRole reports whether a member holding roleIDs fails the requirement.
func missingRole(required *snowflake.ID, roleIDs []snowflake.ID) bool {
	return required != nil && !slices.Contains(roleIDs, *required)
}

func roleName(e *handler.CommandEvent, roleID snowflake.ID) string {
	if role, ok := e.Client().Caches().Role(guildID(e), roleID); ok {
		return role.Name
	}
	return roleID.String()
}

func requireRole(b *amethyst.Bot, setting roleSetting) func(e *handler.CommandEvent) error {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		settings, err := guildSettings(ctx, b, guildID(e))
		if err != nil {
			return err
		}
		var roles []snowflake.ID
		if m := e.Member(); m != nil {
			roles = m.RoleIDs
		}
		if required := setting(settings); missingRole(required, roles) {
			return utils.NewPreconditionError("You must have the '%s' role to run this command!", roleName(e, *required))
		}
		return nil
	}
}

func requireBirthdayChannel(b *amethyst.Bot) func(e *handler.CommandEvent) error {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		settings, err := guildSettings(ctx, b, guildID(e))
		if err != nil {
			return err
		}
		if settings.BirthdayChannel == nil {
			return utils.NewPreconditionError(birthdayChannelMissing)
		}
		return nil
	}
}

func requireAnnouncementChannel(b *amethyst.Bot, kind repositories.AnnouncementKind) func(e *handler.CommandEvent) error {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		a, err := b.Announcements.Get(ctx, kind, guildID(e))
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to load %s settings: %w", kind, err)
		}
		if a == nil || a.ChannelID == nil {
			return utils.NewPreconditionError("You must set a %s channel with `/%s setchannel` first!", kind, kind)
		}
		return nil
	}
}
