package models

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type Quote struct {
	bun.BaseModel `bun:"table:quotes,alias:q"`

	GuildID          snowflake.ID `bun:"guild_id,pk,type:bigint"`
	QuoteID          int          `bun:"quote_id,pk"`
	AdderID          snowflake.ID `bun:"adder_id,type:bigint,notnull"`
	SayerID          snowflake.ID `bun:"sayer_id,type:bigint,notnull"`
	Quote            string       `bun:"quote,notnull"`
	Timestamp        time.Time    `bun:"timestamp,type:date,notnull"`
	AdderDisplayName string       `bun:"adder_display_name,notnull"`
	SayerDisplayName string       `bun:"sayer_display_name,notnull"`
}
