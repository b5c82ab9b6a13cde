package models

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	GuildID     snowflake.ID `bun:"guild_id,pk,type:bigint"`
	UserID      snowflake.ID `bun:"user_id,pk,type:bigint"`
	DisplayName string       `bun:"display_name,notnull,default:''"`

	CookieSent     int64 `bun:"cookie_sent,notnull,default:0"`
	CookieReceived int64 `bun:"cookie_received,notnull,default:0"`
	CakeSent       int64 `bun:"cake_sent,notnull,default:0"`
	CakeReceived   int64 `bun:"cake_received,notnull,default:0"`
	CakeGlados     int64 `bun:"cake_glados,notnull,default:0"`
	SlapSent       int64 `bun:"slap_sent,notnull,default:0"`
	SlapReceived   int64 `bun:"slap_received,notnull,default:0"`
	TeaSent        int64 `bun:"tea_sent,notnull,default:0"`
	TeaReceived    int64 `bun:"tea_received,notnull,default:0"`
	HugSent        int64 `bun:"hug_sent,notnull,default:0"`
	HugReceived    int64 `bun:"hug_received,notnull,default:0"`

	BombSent       int64 `bun:"bomb_sent,notnull,default:0"`
	BombDefused    int64 `bun:"bomb_defused,notnull,default:0"`
	BombFailed     int64 `bun:"bomb_failed,notnull,default:0"`
	RPSWin         int64 `bun:"rps_win,notnull,default:0"`
	RPSLoss        int64 `bun:"rps_loss,notnull,default:0"`
	RPSTie         int64 `bun:"rps_tie,notnull,default:0"`
	RouletteDeaths int64 `bun:"roulette_deaths,notnull,default:0"`

	// Unix seconds; 0 when not in a tracked voice channel.
	VCTrackJoinTime    int64 `bun:"vctrack_join_time,notnull,default:0"`
	VCTrackTotalTime   int64 `bun:"vctrack_total_time,notnull,default:0"`
	VCTrackMonthlyTime int64 `bun:"vctrack_monthly_time,notnull,default:0"`
}

type UserSettings struct {
	bun.BaseModel `bun:"table:user_settings,alias:us"`

	GuildID     snowflake.ID `bun:"guild_id,pk,type:bigint"`
	UserID      snowflake.ID `bun:"user_id,pk,type:bigint"`
	CommandPing bool         `bun:"command_ping,notnull,default:true"`
}

// GuildTotals is the serverstats aggregate over every users row of a guild.
type GuildTotals struct {
	Members        int64 `bun:"members"`
	CookieSent     int64 `bun:"cookie_sent"`
	CakeSent       int64 `bun:"cake_sent"`
	CakeGlados     int64 `bun:"cake_glados"`
	SlapSent       int64 `bun:"slap_sent"`
	TeaSent        int64 `bun:"tea_sent"`
	HugSent        int64 `bun:"hug_sent"`
	BombSent       int64 `bun:"bomb_sent"`
	BombDefused    int64 `bun:"bomb_defused"`
	BombFailed     int64 `bun:"bomb_failed"`
	RPSWins        int64 `bun:"rps_wins"`
	RPSTies        int64 `bun:"rps_ties"`
	RPSGames       int64 `bun:"-"`
	RouletteDeaths int64 `bun:"roulette_deaths"`
	VCTotalTime    int64 `bun:"vctrack_total_time"`
}

// CountRPSGames returns the number of finished rps games behind a guild's
// summed counters. A decided game adds one win, a tie adds one tie to each
// player, so ties are halved.
func CountRPSGames(wins, ties int64) int64 {
	return wins + ties/2
}
