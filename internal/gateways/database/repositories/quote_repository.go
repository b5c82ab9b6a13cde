package repositories

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
)

// QuoteCounts is how often a user added and said quotes in a guild.
type QuoteCounts struct {
	Added int64 `bun:"added"`
	Said  int64 `bun:"said"`
}

type QuoteRepository interface {
	NextID(ctx context.Context, guildID snowflake.ID) (int, error)
	Create(ctx context.Context, q *models.Quote) error
	Get(ctx context.Context, guildID snowflake.ID, quoteID int) (*models.Quote, error)
	List(ctx context.Context, guildID snowflake.ID) ([]*models.Quote, error)
	Count(ctx context.Context, guildID snowflake.ID) (int, error)
	CountByUser(ctx context.Context, guildID, userID snowflake.ID) (QuoteCounts, error)
	// Delete removes the quote and shifts every later ID down by one.
	Delete(ctx context.Context, guildID snowflake.ID, quoteID int) (bool, error)
}

type quoteRepository struct {
	db *database.DB
}

func NewQuoteRepository(db *database.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) NextID(ctx context.Context, guildID snowflake.ID) (int, error) {
	var next int
	err := r.db.BunDB().NewSelect().
		Model((*models.Quote)(nil)).
		ColumnExpr("COALESCE(MAX(quote_id), 0) + 1").
		Where("guild_id = ?", guildID).
		Scan(ctx, &next)
	return next, err
}

func (r *quoteRepository) Create(ctx context.Context, q *models.Quote) error {
	_, err := r.db.BunDB().NewInsert().Model(q).Exec(ctx)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *quoteRepository) Get(ctx context.Context, guildID snowflake.ID, quoteID int) (*models.Quote, error) {
	q := new(models.Quote)
	err := r.db.BunDB().NewSelect().
		Model(q).
		Where("guild_id = ? AND quote_id = ?", guildID, quoteID).
		Scan(ctx)
	return q, err
}

func (r *quoteRepository) List(ctx context.Context, guildID snowflake.ID) ([]*models.Quote, error) {
	var quotes []*models.Quote
	err := r.db.BunDB().NewSelect().
		Model(&quotes).
		Where("guild_id = ?", guildID).
		Order("quote_id ASC").
		Scan(ctx)
	return quotes, err
}

func (r *quoteRepository) Count(ctx context.Context, guildID snowflake.ID) (int, error) {
	return r.db.BunDB().NewSelect().
		Model((*models.Quote)(nil)).
		Where("guild_id = ?", guildID).
		Count(ctx)
}

func (r *quoteRepository) CountByUser(ctx context.Context, guildID, userID snowflake.ID) (QuoteCounts, error) {
	var counts QuoteCounts
	err := r.db.BunDB().NewSelect().
		Model((*models.Quote)(nil)).
		ColumnExpr("COUNT(*) FILTER (WHERE adder_id = ?) AS added", userID).
		ColumnExpr("COUNT(*) FILTER (WHERE sayer_id = ?) AS said", userID).
		Where("guild_id = ?", guildID).
		Scan(ctx, &counts)
	return counts, err
}

func (r *quoteRepository) Delete(ctx context.Context, guildID snowflake.ID, quoteID int) (bool, error) {
	tags, err := r.db.Batch(ctx,
		database.Stmt(`DELETE FROM quotes WHERE guild_id = $1 AND quote_id = $2`, id(guildID), quoteID),
		database.Stmt(`UPDATE quotes SET quote_id = quote_id - 1 WHERE guild_id = $1 AND quote_id > $2`, id(guildID), quoteID),
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete quote %d: %w", quoteID, err)
	}
	return tags[0].RowsAffected() > 0, nil
}
