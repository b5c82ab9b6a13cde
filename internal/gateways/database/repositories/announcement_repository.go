package repositories

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

// AnnouncementKind names one of the per-guild announcement tables.
type AnnouncementKind string

const (
	WelcomeAnnouncement AnnouncementKind = "welcome"
	BoostAnnouncement   AnnouncementKind = "boost"
)

func (k AnnouncementKind) Valid() bool {
	return k == WelcomeAnnouncement || k == BoostAnnouncement
}

type AnnouncementRepository interface {
	Get(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID) (*models.Announcement, error)
	SetChannel(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, channelID *snowflake.ID) error
	SetMessage(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, message *string) error
	SetImage(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, imageURL *string) error
}

type announcementRepository struct {
	db *bun.DB
}

func NewAnnouncementRepository(db *bun.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Get(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID) (*models.Announcement, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown announcement kind %q", kind)
	}

	a := new(models.Announcement)
	err := r.db.NewSelect().
		Model(a).
		ModelTableExpr("? AS announcement", bun.Ident(kind)).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	return a, err
}

func (r *announcementRepository) SetChannel(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, channelID *snowflake.ID) error {
	return r.set(ctx, kind, guildID, "channel_id", channelID)
}

func (r *announcementRepository) SetMessage(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, message *string) error {
	return r.set(ctx, kind, guildID, "message", message)
}

func (r *announcementRepository) SetImage(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, imageURL *string) error {
	return r.set(ctx, kind, guildID, "image_url", imageURL)
}

func (r *announcementRepository) set(ctx context.Context, kind AnnouncementKind, guildID snowflake.ID, column string, value any) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown announcement kind %q", kind)
	}

	_, err := r.db.NewUpdate().
		Model((*models.Announcement)(nil)).
		ModelTableExpr("? AS announcement", bun.Ident(kind)).
		Set("? = ?", bun.Ident(column), value).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	return err
}
