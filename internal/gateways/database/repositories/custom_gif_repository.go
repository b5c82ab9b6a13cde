package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
)

type CustomGifRepository interface {
	Count(ctx context.Context, guildID snowflake.ID, gifType string) (int, error)
	// Create stores gif at the next dense ID and fills in gif.GifID. It
	// returns ErrFull when the category already holds limit gifs.
	Create(ctx context.Context, gif *models.CustomGif, limit int) error
	Get(ctx context.Context, guildID snowflake.ID, gifType string, gifID int) (*models.CustomGif, error)
	List(ctx context.Context, guildID snowflake.ID, gifType string) ([]*models.CustomGif, error)
	Delete(ctx context.Context, guildID snowflake.ID, gifType string, gifID int) (bool, error)
}

type customGifRepository struct {
	db *database.DB
}

func NewCustomGifRepository(db *database.DB) CustomGifRepository {
	return &customGifRepository{db: db}
}

func (r *customGifRepository) Count(ctx context.Context, guildID snowflake.ID, gifType string) (int, error) {
	return r.db.BunDB().NewSelect().
		Model((*models.CustomGif)(nil)).
		Where("guild_id = ? AND gif_type = ?", guildID, gifType).
		Count(ctx)
}

// Dense IDs make the count equal to the highest ID, so two writers racing for
// the last slot collide on the primary key and the loser sees ErrDuplicate.
func (r *customGifRepository) Create(ctx context.Context, gif *models.CustomGif, limit int) error {
	err := r.db.BunDB().NewRaw(`INSERT INTO custom_gifs (guild_id, gif_type, gif_id, gif_url, gif_name)
		SELECT ?, ?, COALESCE(MAX(gif_id), 0) + 1, ?, ?
		FROM custom_gifs WHERE guild_id = ? AND gif_type = ?
		HAVING COUNT(*) < ?
		RETURNING gif_id`,
		gif.GuildID, gif.GifType, gif.GifURL, gif.GifName, gif.GuildID, gif.GifType, limit,
	).Scan(ctx, &gif.GifID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrFull
	case isUniqueViolation(err):
		return ErrDuplicate
	}
	return err
}

func (r *customGifRepository) Get(ctx context.Context, guildID snowflake.ID, gifType string, gifID int) (*models.CustomGif, error) {
	gif := new(models.CustomGif)
	err := r.db.BunDB().NewSelect().
		Model(gif).
		Where("guild_id = ? AND gif_type = ? AND gif_id = ?", guildID, gifType, gifID).
		Scan(ctx)
	return gif, err
}

func (r *customGifRepository) List(ctx context.Context, guildID snowflake.ID, gifType string) ([]*models.CustomGif, error) {
	var gifs []*models.CustomGif
	err := r.db.BunDB().NewSelect().
		Model(&gifs).
		Where("guild_id = ? AND gif_type = ?", guildID, gifType).
		Order("gif_id ASC").
		Scan(ctx)
	return gifs, err
}

func (r *customGifRepository) Delete(ctx context.Context, guildID snowflake.ID, gifType string, gifID int) (bool, error) {
	tags, err := r.db.Batch(ctx,
		database.Stmt(`DELETE FROM custom_gifs WHERE guild_id = $1 AND gif_type = $2 AND gif_id = $3`, id(guildID), gifType, gifID),
		database.Stmt(`UPDATE custom_gifs SET gif_id = gif_id - 1 WHERE guild_id = $1 AND gif_type = $2 AND gif_id > $3`, id(guildID), gifType, gifID),
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete gif %s/%d: %w", gifType, gifID, err)
	}
	return tags[0].RowsAffected() > 0, nil
}
