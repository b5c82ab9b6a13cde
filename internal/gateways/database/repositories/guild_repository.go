package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amethystbot/amethyst/internal/gateways/database"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

// SettingsColumn is a nullable snowflake column of guild_settings.
type SettingsColumn string

const (
	BirthdayChannel     SettingsColumn = "birthday_channel"
	BirthdayRole        SettingsColumn = "birthday_role"
	IgnoredVoiceChannel SettingsColumn = "vctrack_ignored_channel"
	LeaveChannel        SettingsColumn = "member_leave_channel_id"
	QuotesRole          SettingsColumn = "quotes_required_role"
	GifsRole            SettingsColumn = "custom_gifs_required_role"
)

func (c SettingsColumn) Valid() bool {
	switch c {
	case BirthdayChannel, BirthdayRole, IgnoredVoiceChannel, LeaveChannel, QuotesRole, GifsRole:
		return true
	}
	return false
}

// RouletteFunc receives the persisted (chamber, count) and returns the next pair.
type RouletteFunc func(chamber, count int) (int, int, error)

type GuildRepository interface {
	Ensure(ctx context.Context, guildID snowflake.ID) error
	Get(ctx context.Context, guildID snowflake.ID) (*models.GuildSettings, error)
	SetColumn(ctx context.Context, guildID snowflake.ID, column SettingsColumn, value *snowflake.ID) error
	ListWithBirthdayChannel(ctx context.Context) ([]*models.GuildSettings, error)
	UpdateRoulette(ctx context.Context, guildID snowflake.ID, fn RouletteFunc) error
}

type guildRepository struct {
	db *database.DB
}

func NewGuildRepository(db *database.DB) GuildRepository {
	return &guildRepository{db: db}
}

func (r *guildRepository) Ensure(ctx context.Context, guildID snowflake.ID) error {
	_, err := r.db.Batch(ctx,
		database.Stmt(`INSERT INTO guild_settings (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING`, id(guildID)),
		database.Stmt(`INSERT INTO welcome (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING`, id(guildID)),
		database.Stmt(`INSERT INTO boost (guild_id) VALUES ($1) ON CONFLICT (guild_id) DO NOTHING`, id(guildID)),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure guild %s: %w", guildID, err)
	}
	return nil
}

func (r *guildRepository) Get(ctx context.Context, guildID snowflake.ID) (*models.GuildSettings, error) {
	settings := new(models.GuildSettings)
	err := r.db.BunDB().NewSelect().
		Model(settings).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	return settings, err
}

func (r *guildRepository) SetColumn(ctx context.Context, guildID snowflake.ID, column SettingsColumn, value *snowflake.ID) error {
	if !column.Valid() {
		return fmt.Errorf("unknown settings column %q", column)
	}

	slog.Debug("GuildRepository.SetColumn called",
		slog.String("type", "db"),
		slog.String("guild_id", guildID.String()),
		slog.String("column", string(column)))

	_, err := r.db.BunDB().NewUpdate().
		Model((*models.GuildSettings)(nil)).
		Set("? = ?", bun.Ident(column), value).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	return err
}

func (r *guildRepository) ListWithBirthdayChannel(ctx context.Context) ([]*models.GuildSettings, error) {
	var guilds []*models.GuildSettings
	err := r.db.BunDB().NewSelect().
		Model(&guilds).
		Where("birthday_channel IS NOT NULL").
		Order("guild_id ASC").
		Scan(ctx)
	return guilds, err
}

// UpdateRoulette locks the guild row so concurrent pulls observe each other.
func (r *guildRepository) UpdateRoulette(ctx context.Context, guildID snowflake.ID, fn RouletteFunc) error {
	return r.db.BunDB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		settings := new(models.GuildSettings)
		if err := tx.NewSelect().
			Model(settings).
			Column("guild_id", "roulette_chamber", "roulette_count").
			Where("guild_id = ?", guildID).
			For("UPDATE").
			Scan(ctx); err != nil {
			return err
		}

		chamber, count, err := fn(settings.RouletteChamber, settings.RouletteCount)
		if err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model((*models.GuildSettings)(nil)).
			Set("roulette_chamber = ?", chamber).
			Set("roulette_count = ?", count).
			Where("guild_id = ?", guildID).
			Exec(ctx)
		return err
	})
}
