package models

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type CustomGif struct {
	bun.BaseModel `bun:"table:custom_gifs,alias:cg"`

	GuildID snowflake.ID `bun:"guild_id,pk,type:bigint"`
	GifType string       `bun:"gif_type,pk"`
	GifID   int          `bun:"gif_id,pk"`
	GifURL  string       `bun:"gif_url,notnull"`
	GifName string       `bun:"gif_name,notnull"`
}
