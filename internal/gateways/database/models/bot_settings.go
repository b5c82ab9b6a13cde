package models

import "github.com/uptrace/bun"

// BotSettings is the single process-wide settings row, keyed by ID 1.
type BotSettings struct {
	bun.BaseModel `bun:"table:bot_settings,alias:bs"`

	ID               int     `bun:"id,pk,type:smallint,default:1"`
	GladosGif        *string `bun:"glados_gif"`
	RouletteClickGif *string `bun:"roulette_click_gif"`
	RouletteFireGif  *string `bun:"roulette_fire_gif"`
}
