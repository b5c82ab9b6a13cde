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

type UserRepository interface {
	Ensure(ctx context.Context, guildID, userID snowflake.ID, displayName string) error
	Get(ctx context.Context, guildID, userID snowflake.ID) (*models.User, error)
	DisplayName(ctx context.Context, guildID, userID snowflake.ID) (string, error)
	UpdateDisplayName(ctx context.Context, guildID, userID snowflake.ID, displayName string) error
	Increment(ctx context.Context, guildID, userID snowflake.ID, counters ...Counter) error
	Remove(ctx context.Context, guildID, userID snowflake.ID) error
	GuildTotals(ctx context.Context, guildID snowflake.ID) (*models.GuildTotals, error)
	CommandPing(ctx context.Context, guildID, userID snowflake.ID) (bool, error)
	SetCommandPing(ctx context.Context, guildID, userID snowflake.ID, enabled bool) error
}

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Ensure(ctx context.Context, guildID, userID snowflake.ID, displayName string) error {
	_, err := r.db.Batch(ctx,
		database.Stmt(`INSERT INTO users (guild_id, user_id, display_name) VALUES ($1, $2, $3)
			ON CONFLICT (guild_id, user_id) DO NOTHING`, id(guildID), id(userID), displayName),
		database.Stmt(`INSERT INTO user_settings (guild_id, user_id) VALUES ($1, $2)
			ON CONFLICT (guild_id, user_id) DO NOTHING`, id(guildID), id(userID)),
	)
	if err != nil {
		return fmt.Errorf("failed to ensure user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, guildID, userID snowflake.ID) (*models.User, error) {
	user := new(models.User)
	err := r.db.BunDB().NewSelect().
		Model(user).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Scan(ctx)
	return user, err
}

func (r *userRepository) DisplayName(ctx context.Context, guildID, userID snowflake.ID) (string, error) {
	var name string
	err := r.db.BunDB().NewSelect().
		Model((*models.User)(nil)).
		Column("display_name").
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Scan(ctx, &name)
	return name, err
}

func (r *userRepository) UpdateDisplayName(ctx context.Context, guildID, userID snowflake.ID, displayName string) error {
	_, err := r.db.BunDB().NewUpdate().
		Model((*models.User)(nil)).
		Set("display_name = ?", displayName).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Exec(ctx)
	return err
}

// Increment bumps every named counter by one in a single statement.
func (r *userRepository) Increment(ctx context.Context, guildID, userID snowflake.ID, counters ...Counter) error {
	if len(counters) == 0 {
		return nil
	}

	q := r.db.BunDB().NewUpdate().Model((*models.User)(nil))
	for _, c := range counters {
		if !c.Valid() {
			return fmt.Errorf("unknown counter %q", c)
		}
		q = q.Set("? = ? + 1", bun.Ident(c), bun.Ident(c))
	}

	res, err := q.Where("guild_id = ? AND user_id = ?", guildID, userID).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment counters: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		slog.Warn("Counter increment matched no user row",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()))
	}
	return nil
}

// Remove deletes every per-member row of the guild atomically.
func (r *userRepository) Remove(ctx context.Context, guildID, userID snowflake.ID) error {
	_, err := r.db.Batch(ctx,
		database.Stmt(`DELETE FROM birthday WHERE guild_id = $1 AND user_id = $2`, id(guildID), id(userID)),
		database.Stmt(`DELETE FROM users WHERE guild_id = $1 AND user_id = $2`, id(guildID), id(userID)),
		database.Stmt(`DELETE FROM user_settings WHERE guild_id = $1 AND user_id = $2`, id(guildID), id(userID)),
	)
	if err != nil {
		return fmt.Errorf("failed to remove user %s from guild %s: %w", userID, guildID, err)
	}
	return nil
}

func (r *userRepository) GuildTotals(ctx context.Context, guildID snowflake.ID) (*models.GuildTotals, error) {
	totals := new(models.GuildTotals)
	err := r.db.BunDB().NewSelect().
		Model((*models.User)(nil)).
		ColumnExpr("COUNT(*) AS members").
		ColumnExpr("COALESCE(SUM(cookie_sent), 0) AS cookie_sent").
		ColumnExpr("COALESCE(SUM(cake_sent), 0) AS cake_sent").
		ColumnExpr("COALESCE(SUM(cake_glados), 0) AS cake_glados").
		ColumnExpr("COALESCE(SUM(slap_sent), 0) AS slap_sent").
		ColumnExpr("COALESCE(SUM(tea_sent), 0) AS tea_sent").
		ColumnExpr("COALESCE(SUM(hug_sent), 0) AS hug_sent").
		ColumnExpr("COALESCE(SUM(bomb_sent), 0) AS bomb_sent").
		ColumnExpr("COALESCE(SUM(bomb_defused), 0) AS bomb_defused").
		ColumnExpr("COALESCE(SUM(bomb_failed), 0) AS bomb_failed").
		ColumnExpr("COALESCE(SUM(rps_win), 0) AS rps_wins").
		ColumnExpr("COALESCE(SUM(rps_tie), 0) AS rps_ties").
		ColumnExpr("COALESCE(SUM(roulette_deaths), 0) AS roulette_deaths").
		ColumnExpr("COALESCE(SUM(vctrack_total_time), 0) AS vctrack_total_time").
		Where("guild_id = ?", guildID).
		Scan(ctx, totals)
	if err != nil {
		return nil, err
	}
	totals.RPSGames = models.CountRPSGames(totals.RPSWins, totals.RPSTies)
	return totals, nil
}

func (r *userRepository) CommandPing(ctx context.Context, guildID, userID snowflake.ID) (bool, error) {
	settings := new(models.UserSettings)
	err := r.db.BunDB().NewSelect().
		Model(settings).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Scan(ctx)
	return settings.CommandPing, err
}

func (r *userRepository) SetCommandPing(ctx context.Context, guildID, userID snowflake.ID, enabled bool) error {
	_, err := r.db.BunDB().NewUpdate().
		Model((*models.UserSettings)(nil)).
		Set("command_ping = ?", enabled).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Exec(ctx)
	return err
}
