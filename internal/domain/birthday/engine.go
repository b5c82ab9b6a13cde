package birthday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"
)

const guildWorkers = 4

// Greeting is one birthday announcement.
type Greeting struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	UserID    snowflake.ID
	Name      string
	GifURL    string
}

type GuildSource interface {
	ListWithBirthdayChannel(ctx context.Context) ([]*models.GuildSettings, error)
}

type NameSource interface {
	DisplayName(ctx context.Context, guildID, userID snowflake.ID) (string, error)
}

type GifSource interface {
	RandomURL(ctx context.Context, guildID snowflake.ID, gifType media.GifType) string
}

// Platform is the outbound side of the chat service the engine drives.
type Platform interface {
	SendGreeting(ctx context.Context, g Greeting) error
	AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
	RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error
	Profile(ctx context.Context, guildID, userID snowflake.ID) (identity.Profile, error)
}

type Engine struct {
	guilds    GuildSource
	birthdays Repository
	names     NameSource
	gifs      GifSource
	platform  Platform
	now       func() time.Time
}

func NewEngine(guilds GuildSource, birthdays Repository, names NameSource, gifs GifSource, platform Platform) *Engine {
	return &Engine{
		guilds:    guilds,
		birthdays: birthdays,
		names:     names,
		gifs:      gifs,
		platform:  platform,
		now:       time.Now,
	}
}

func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run performs one announcement pass over every guild with a birthday channel.
// A failing guild is logged and does not stop the others.
func (e *Engine) Run(ctx context.Context) error {
	guilds, err := e.guilds.ListWithBirthdayChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to list birthday guilds: %w", err)
	}

	today := e.now().UTC()
	month, day := int(today.Month()), today.Day()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(guildWorkers)
	for _, settings := range guilds {
		g.Go(func() error {
			if err := e.runGuild(ctx, settings, month, day); err != nil {
				slog.Error("Birthday pass failed for guild",
					slog.String("type", "task"),
					slog.String("guild_id", settings.GuildID.String()),
					slog.Any("error", err))
			}
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) runGuild(ctx context.Context, settings *models.GuildSettings, month, day int) error {
	if settings.BirthdayChannel == nil {
		return nil
	}

	birthdays, err := e.birthdays.ListByGuild(ctx, settings.GuildID, 0)
	if err != nil {
		return fmt.Errorf("failed to list birthdays: %w", err)
	}

	for _, b := range birthdays {
		if b.BirthMonth == month && b.BirthDay == day {
			if err = e.celebrate(ctx, settings, b); err != nil {
				slog.Error("Failed to announce birthday",
					slog.String("type", "task"),
					slog.String("guild_id", b.GuildID.String()),
					slog.String("user_id", b.UserID.String()),
					slog.Any("error", err))
			}
			continue
		}

		if settings.BirthdayRole == nil {
			continue
		}
		if err = e.platform.RemoveRole(ctx, b.GuildID, b.UserID, *settings.BirthdayRole); err != nil {
			slog.Warn("Failed to remove birthday role",
				slog.String("type", "task"),
				slog.String("guild_id", b.GuildID.String()),
				slog.String("user_id", b.UserID.String()),
				slog.Any("error", err))
		}
	}
	return nil
}

func (e *Engine) celebrate(ctx context.Context, settings *models.GuildSettings, b *models.Birthday) error {
	greeting := Greeting{
		GuildID:   b.GuildID,
		ChannelID: *settings.BirthdayChannel,
		UserID:    b.UserID,
		Name:      e.name(ctx, b),
		GifURL:    e.gifs.RandomURL(ctx, b.GuildID, media.Birthday),
	}
	if err := e.platform.SendGreeting(ctx, greeting); err != nil {
		return fmt.Errorf("failed to send greeting for %s: %w", b.UserID, err)
	}

	slog.Info("Birthday announced",
		slog.String("type", "task"),
		slog.String("guild_id", b.GuildID.String()),
		slog.String("user_id", b.UserID.String()))

	if settings.BirthdayRole == nil {
		return nil
	}
	if err := e.platform.AddRole(ctx, b.GuildID, b.UserID, *settings.BirthdayRole); err != nil {
		slog.Warn("Failed to add birthday role",
			slog.String("type", "task"),
			slog.String("guild_id", b.GuildID.String()),
			slog.String("user_id", b.UserID.String()),
			slog.Any("error", err))
	}
	return nil
}

// name prefers the stored nickname, then the cached label, then the live
// member profile.
func (e *Engine) name(ctx context.Context, b *models.Birthday) string {
	if b.Nickname != nil && *b.Nickname != "" {
		return *b.Nickname
	}

	label, err := e.names.DisplayName(ctx, b.GuildID, b.UserID)
	if err == nil && label != "" {
		return label
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Warn("Failed to read display name",
			slog.String("type", "db"),
			slog.String("user_id", b.UserID.String()),
			slog.Any("error", err))
	}

	profile, err := e.platform.Profile(ctx, b.GuildID, b.UserID)
	if err != nil {
		return b.UserID.String()
	}
	return identity.Resolve(profile)
}
