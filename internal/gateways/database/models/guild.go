package models

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type GuildSettings struct {
	bun.BaseModel `bun:"table:guild_settings,alias:gs"`

	GuildID                snowflake.ID  `bun:"guild_id,pk,type:bigint"`
	BirthdayChannel        *snowflake.ID `bun:"birthday_channel,type:bigint"`
	BirthdayRole           *snowflake.ID `bun:"birthday_role,type:bigint"`
	VCTrackIgnoredChannel  *snowflake.ID `bun:"vctrack_ignored_channel,type:bigint"`
	MemberLeaveChannelID   *snowflake.ID `bun:"member_leave_channel_id,type:bigint"`
	QuotesRequiredRole     *snowflake.ID `bun:"quotes_required_role,type:bigint"`
	CustomGifsRequiredRole *snowflake.ID `bun:"custom_gifs_required_role,type:bigint"`
	RouletteChamber        int           `bun:"roulette_chamber,type:smallint,notnull,default:0"`
	RouletteCount          int           `bun:"roulette_count,type:smallint,notnull,default:0"`
}

// Announcement is the shape shared by the welcome and boost tables.
type Announcement struct {
	GuildID   snowflake.ID  `bun:"guild_id,pk,type:bigint"`
	ChannelID *snowflake.ID `bun:"channel_id,type:bigint"`
	Message   *string       `bun:"message"`
	ImageURL  *string       `bun:"image_url"`
}

type Welcome struct {
	bun.BaseModel `bun:"table:welcome,alias:w"`
	Announcement
}

type Boost struct {
	bun.BaseModel `bun:"table:boost,alias:bo"`
	Announcement
}
