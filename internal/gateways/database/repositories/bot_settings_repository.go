package repositories

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

// BotGifColumn is a gif URL column of the bot_settings row.
type BotGifColumn string

const (
	GladosGif        BotGifColumn = "glados_gif"
	RouletteClickGif BotGifColumn = "roulette_click_gif"
	RouletteFireGif  BotGifColumn = "roulette_fire_gif"
)

func (c BotGifColumn) Valid() bool {
	switch c {
	case GladosGif, RouletteClickGif, RouletteFireGif:
		return true
	}
	return false
}

type BotSettingsRepository interface {
	// Get returns an empty row when nothing was ever set.
	Get(ctx context.Context) (*models.BotSettings, error)
	SetGif(ctx context.Context, column BotGifColumn, url string) error
}

type botSettingsRepository struct {
	db *bun.DB
}

func NewBotSettingsRepository(db *bun.DB) BotSettingsRepository {
	return &botSettingsRepository{db: db}
}

func (r *botSettingsRepository) Get(ctx context.Context) (*models.BotSettings, error) {
	var rows []*models.BotSettings
	if err := r.db.NewSelect().Model(&rows).Where("id = 1").Limit(1).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load bot settings: %w", err)
	}
	if len(rows) == 0 {
		return &models.BotSettings{ID: 1}, nil
	}
	return rows[0], nil
}

func (r *botSettingsRepository) SetGif(ctx context.Context, column BotGifColumn, url string) error {
	if !column.Valid() {
		return fmt.Errorf("unknown bot gif column %q", column)
	}
	_, err := r.db.NewRaw(
		"INSERT INTO bot_settings (id, ?) VALUES (1, ?) ON CONFLICT (id) DO UPDATE SET ? = EXCLUDED.?",
		bun.Ident(column), url, bun.Ident(column), bun.Ident(column),
	).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", column, err)
	}
	return nil
}
