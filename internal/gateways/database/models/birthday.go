package models

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type Birthday struct {
	bun.BaseModel `bun:"table:birthday,alias:b"`

	GuildID    snowflake.ID `bun:"guild_id,pk,type:bigint"`
	UserID     snowflake.ID `bun:"user_id,pk,type:bigint"`
	BirthMonth int          `bun:"birthmonth,type:smallint,notnull"`
	BirthDay   int          `bun:"birthday,type:smallint,notnull"`
	Nickname   *string      `bun:"nickname,type:varchar(30)"`
}
