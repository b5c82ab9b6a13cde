package config

import "time"

// UI and Display Constants
const (
	// Pagination
	BirthdaysPerPage = 10
	QuotesPerPage    = 5
	GifsPerPage      = 5

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Embed colors
	AmethystColor    = 0x9966CC
	WelcomeColor     = 0xC0C0C0
	BoostColor       = 0xF47FFF
	LeaderboardColor = 0xCC3842
	BombColor        = 0xE67E22
	RPSColor         = 0x3498DB
	RouletteColor    = 0x2C2F33
	CardColor        = 0x000000
)

// Timeouts
const (
	DefaultQueryTimeout   = 10 * time.Second
	StartupTimeout        = 1 * time.Minute
	CommandTimeout        = 30 * time.Second
	EventHandlerTimeout   = 15 * time.Second
	ScheduledTaskTimeout  = 10 * time.Minute
	ShutdownTimeout       = 10 * time.Second
	GatewayOpenTimeout    = 10 * time.Second
	StatsViewTimeout      = 10 * time.Minute
	LeaderboardTimeout    = 10 * time.Minute
	CardViewTimeout       = 10 * time.Minute
	SlowCommandThreshold  = 2 * time.Second
	DefaultMemberCooldown = 5 * time.Second
	LookupCooldown        = time.Second
)

// Limits
const (
	MaxQuoteLength    = 500
	MaxGifNameLength  = 30
	MaxNicknameLength = 30
	MaxGifBytes       = 8 * 1024 * 1024
	CooldownCacheSize = 8192
	IdentityCacheSize = 4096
	RecheckWorkers    = 8
)

// Scheduled task cron expressions (seconds first, UTC)
const (
	BirthdayCron     = "0 0 10 * * *"
	MonthlyResetCron = "0 0 0 1 * *"
)

// Roulette images
const (
	RouletteBangGIF  = "https://media.tenor.com/ggBL-5ZFmIIAAAAC/gun-shoot.gif"
	RouletteClickGIF = "https://media.tenor.com/fklGVnlUSFQAAAAd/revolver.gif"
)
