package repositories

import (
	"context"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type BirthdayRepository interface {
	Create(ctx context.Context, b *models.Birthday) error
	Get(ctx context.Context, guildID, userID snowflake.ID) (*models.Birthday, error)
	Update(ctx context.Context, b *models.Birthday) error
	Delete(ctx context.Context, guildID, userID snowflake.ID) (bool, error)
	// ListByGuild returns birthdays ordered by date. month 0 means every month.
	ListByGuild(ctx context.Context, guildID snowflake.ID, month int) ([]*models.Birthday, error)
}

type birthdayRepository struct {
	db *bun.DB
}

func NewBirthdayRepository(db *bun.DB) BirthdayRepository {
	return &birthdayRepository{db: db}
}

func (r *birthdayRepository) Create(ctx context.Context, b *models.Birthday) error {
	_, err := r.db.NewInsert().Model(b).Exec(ctx)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *birthdayRepository) Get(ctx context.Context, guildID, userID snowflake.ID) (*models.Birthday, error) {
	b := new(models.Birthday)
	err := r.db.NewSelect().
		Model(b).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Scan(ctx)
	return b, err
}

func (r *birthdayRepository) Update(ctx context.Context, b *models.Birthday) error {
	_, err := r.db.NewUpdate().
		Model(b).
		Column("birthmonth", "birthday", "nickname").
		WherePK().
		Exec(ctx)
	return err
}

func (r *birthdayRepository) Delete(ctx context.Context, guildID, userID snowflake.ID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Birthday)(nil)).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *birthdayRepository) ListByGuild(ctx context.Context, guildID snowflake.ID, month int) ([]*models.Birthday, error) {
	var birthdays []*models.Birthday
	q := r.db.NewSelect().
		Model(&birthdays).
		Where("guild_id = ?", guildID)
	if month != 0 {
		q = q.Where("birthmonth = ?", month)
	}
	err := q.Order("birthmonth ASC", "birthday ASC", "user_id ASC").Scan(ctx)
	return birthdays, err
}
