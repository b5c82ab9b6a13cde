package repositories

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

// VoiceColumn selects which accumulated voice total a leaderboard ranks by.
type VoiceColumn string

const (
	VoiceTotal   VoiceColumn = "vctrack_total_time"
	VoiceMonthly VoiceColumn = "vctrack_monthly_time"
)

// VoiceEntry is one leaderboard row.
type VoiceEntry struct {
	UserID      snowflake.ID `bun:"user_id"`
	DisplayName string       `bun:"display_name"`
	Seconds     int64        `bun:"seconds"`
}

type VoiceRepository interface {
	IgnoredChannel(ctx context.Context, guildID snowflake.ID) (*snowflake.ID, error)
	StartSession(ctx context.Context, guildID, userID snowflake.ID, now int64) error
	FlushSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error)
	RecheckSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error)
	ActiveSessions(ctx context.Context, guildID snowflake.ID) ([]snowflake.ID, error)
	ClearSessions(ctx context.Context, guildID snowflake.ID, userIDs []snowflake.ID) error
	ResetMonthly(ctx context.Context) (int64, error)
	Top(ctx context.Context, guildID snowflake.ID, column VoiceColumn, limit int) ([]VoiceEntry, error)
}

type voiceRepository struct {
	db *bun.DB
}

func NewVoiceRepository(db *bun.DB) VoiceRepository {
	return &voiceRepository{db: db}
}

func (r *voiceRepository) IgnoredChannel(ctx context.Context, guildID snowflake.ID) (*snowflake.ID, error) {
	var channel *snowflake.ID
	err := r.db.NewSelect().
		Model((*models.GuildSettings)(nil)).
		Column("vctrack_ignored_channel").
		Where("guild_id = ?", guildID).
		Scan(ctx, &channel)
	return channel, err
}

func (r *voiceRepository) StartSession(ctx context.Context, guildID, userID snowflake.ID, now int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("vctrack_join_time = ?", now).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Exec(ctx)
	return err
}

// FlushSession credits the open session to both totals and closes it.
// Returns false when no session was open. A join time in the future credits nothing.
func (r *voiceRepository) FlushSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error) {
	return r.credit(ctx, guildID, userID, now, 0)
}

// RecheckSession credits the open session and restarts it at now.
func (r *voiceRepository) RecheckSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error) {
	return r.credit(ctx, guildID, userID, now, now)
}

func (r *voiceRepository) credit(ctx context.Context, guildID, userID snowflake.ID, now, next int64) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("vctrack_total_time = vctrack_total_time + GREATEST(0, ? - vctrack_join_time)", now).
		Set("vctrack_monthly_time = vctrack_monthly_time + GREATEST(0, ? - vctrack_join_time)", now).
		Set("vctrack_join_time = ?", next).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Where("vctrack_join_time <> 0").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *voiceRepository) ActiveSessions(ctx context.Context, guildID snowflake.ID) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("user_id").
		Where("guild_id = ?", guildID).
		Where("vctrack_join_time <> 0").
		Scan(ctx, &ids)
	return ids, err
}

func (r *voiceRepository) ClearSessions(ctx context.Context, guildID snowflake.ID, userIDs []snowflake.ID) error {
	if len(userIDs) == 0 {
		return nil
	}
	ids := make([]int64, len(userIDs))
	for i, u := range userIDs {
		ids[i] = id(u)
	}
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("vctrack_join_time = 0").
		Where("guild_id = ?", guildID).
		Where("user_id IN (?)", bun.In(ids)).
		Exec(ctx)
	return err
}

func (r *voiceRepository) ResetMonthly(ctx context.Context) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("vctrack_monthly_time = 0").
		Where("vctrack_monthly_time <> 0").
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *voiceRepository) Top(ctx context.Context, guildID snowflake.ID, column VoiceColumn, limit int) ([]VoiceEntry, error) {
	if column != VoiceTotal && column != VoiceMonthly {
		return nil, fmt.Errorf("unknown voice column %q", column)
	}

	var entries []VoiceEntry
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("user_id", "display_name").
		ColumnExpr("? AS seconds", bun.Ident(column)).
		Where("guild_id = ?", guildID).
		Where("? > 0", bun.Ident(column)).
		OrderExpr("? DESC, user_id ASC", bun.Ident(column)).
		Limit(limit).
		Scan(ctx, &entries)
	return entries, err
}
