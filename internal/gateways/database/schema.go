package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
)

// Dense-ID tables keep their primary key deferrable so a delete followed by
// an "id = id - 1" shift commits cleanly inside one transaction.
var denseTables = []string{
	`CREATE TABLE IF NOT EXISTS quotes (
		guild_id BIGINT NOT NULL,
		quote_id INTEGER NOT NULL CHECK (quote_id > 0),
		adder_id BIGINT NOT NULL,
		sayer_id BIGINT NOT NULL,
		quote VARCHAR(500) NOT NULL,
		timestamp DATE NOT NULL DEFAULT CURRENT_DATE,
		adder_display_name VARCHAR(64) NOT NULL DEFAULT '',
		sayer_display_name VARCHAR(64) NOT NULL DEFAULT '',
		CONSTRAINT quotes_pkey PRIMARY KEY (guild_id, quote_id) DEFERRABLE INITIALLY DEFERRED
	)`,
	`CREATE TABLE IF NOT EXISTS custom_gifs (
		guild_id BIGINT NOT NULL,
		gif_type VARCHAR(16) NOT NULL,
		gif_id INTEGER NOT NULL CHECK (gif_id > 0),
		gif_url TEXT NOT NULL,
		gif_name VARCHAR(30) NOT NULL,
		CONSTRAINT custom_gifs_pkey PRIMARY KEY (guild_id, gif_type, gif_id) DEFERRABLE INITIALLY DEFERRED
	)`,
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_users_vc_active ON users(guild_id) WHERE vctrack_join_time <> 0;",
	"CREATE INDEX IF NOT EXISTS idx_users_vc_total ON users(guild_id, vctrack_total_time DESC);",
	"CREATE INDEX IF NOT EXISTS idx_users_vc_monthly ON users(guild_id, vctrack_monthly_time DESC);",
	"CREATE INDEX IF NOT EXISTS idx_birthday_date ON birthday(guild_id, birthmonth, birthday);",
	"CREATE INDEX IF NOT EXISTS idx_quotes_adder ON quotes(guild_id, adder_id);",
	"CREATE INDEX IF NOT EXISTS idx_quotes_sayer ON quotes(guild_id, sayer_id);",
	"CREATE INDEX IF NOT EXISTS idx_guild_settings_birthday ON guild_settings(guild_id) WHERE birthday_channel IS NOT NULL;",
}

var constraints = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'guild_settings_roulette_bounds') THEN
			ALTER TABLE guild_settings ADD CONSTRAINT guild_settings_roulette_bounds
				CHECK (roulette_chamber BETWEEN 0 AND 6 AND roulette_count BETWEEN 0 AND 6
					AND (roulette_chamber = 0 OR roulette_count <= roulette_chamber));
		END IF;
	END $$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'birthday_date_bounds') THEN
			ALTER TABLE birthday ADD CONSTRAINT birthday_date_bounds
				CHECK (birthmonth BETWEEN 1 AND 12 AND birthday BETWEEN 1 AND 31);
		END IF;
	END $$;`,
}

// InitializeSchema creates all required database tables and indexes
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []any{
		(*models.GuildSettings)(nil),
		(*models.Welcome)(nil),
		(*models.Boost)(nil),
		(*models.User)(nil),
		(*models.UserSettings)(nil),
		(*models.Birthday)(nil),
		(*models.BotSettings)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, ddl := range denseTables {
		if _, err := db.ExecWithLog(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create dense table: %w", err)
		}
	}

	for _, c := range constraints {
		if _, err := db.ExecWithLog(ctx, c); err != nil {
			slog.Warn("Failed to add constraint (may already exist)",
				slog.String("type", "db"),
				slog.Any("error", err))
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
