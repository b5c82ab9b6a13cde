package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/internal/domain/vctracker"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
)

const LeaderboardSize = 10

var ErrNoStats = errors.New("no stats recorded for this user")

type Timeframe string

const (
	AllTime Timeframe = "all"
	Monthly Timeframe = "monthly"
)

func (t Timeframe) column() repositories.VoiceColumn {
	if t == Monthly {
		return repositories.VoiceMonthly
	}
	return repositories.VoiceTotal
}

func (t Timeframe) Toggle() Timeframe {
	if t == Monthly {
		return AllTime
	}
	return Monthly
}

type Repository interface {
	Get(ctx context.Context, guildID, userID snowflake.ID) (*models.User, error)
	GuildTotals(ctx context.Context, guildID snowflake.ID) (*models.GuildTotals, error)
}

type QuoteCounter interface {
	CountByUser(ctx context.Context, guildID, userID snowflake.ID) (repositories.QuoteCounts, error)
	Count(ctx context.Context, guildID snowflake.ID) (int, error)
}

type VoiceBoard interface {
	Top(ctx context.Context, guildID snowflake.ID, column repositories.VoiceColumn, limit int) ([]repositories.VoiceEntry, error)
}

type Rechecker interface {
	Recheck(ctx context.Context, guildID, userID snowflake.ID, current *snowflake.ID) error
	RecheckGuild(ctx context.Context, guildID snowflake.ID, lookup vctracker.ChannelLookup) error
}

// UserStats is everything /stats shows for one member.
type UserStats struct {
	User   *models.User
	Quotes repositories.QuoteCounts
}

type ServerStats struct {
	Totals *models.GuildTotals
	Quotes int
}

type Service struct {
	users  Repository
	quotes QuoteCounter
	voice  VoiceBoard
	vct    Rechecker
}

func NewService(users Repository, quotes QuoteCounter, voice VoiceBoard, vct Rechecker) *Service {
	return &Service{users: users, quotes: quotes, voice: voice, vct: vct}
}

// UserStats brings the member's open voice session up to date before reading.
func (s *Service) UserStats(ctx context.Context, guildID, userID snowflake.ID, current *snowflake.ID) (*UserStats, error) {
	if err := s.vct.Recheck(ctx, guildID, userID, current); err != nil {
		return nil, err
	}

	quotes, err := s.quotes.CountByUser(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}

	user, err := s.users.Get(ctx, guildID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoStats
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	return &UserStats{User: user, Quotes: quotes}, nil
}

func (s *Service) ServerStats(ctx context.Context, guildID snowflake.ID) (*ServerStats, error) {
	totals, err := s.users.GuildTotals(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate guild stats: %w", err)
	}
	quotes, err := s.quotes.Count(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}
	return &ServerStats{Totals: totals, Quotes: quotes}, nil
}

// VCTop rechecks every open session of the guild, then ranks by timeframe.
func (s *Service) VCTop(ctx context.Context, guildID snowflake.ID, timeframe Timeframe, lookup vctracker.ChannelLookup) ([]repositories.VoiceEntry, error) {
	if err := s.vct.RecheckGuild(ctx, guildID, lookup); err != nil {
		return nil, err
	}
	return s.Leaderboard(ctx, guildID, timeframe)
}

// Leaderboard reads the ranking without rechecking.
func (s *Service) Leaderboard(ctx context.Context, guildID snowflake.ID, timeframe Timeframe) ([]repositories.VoiceEntry, error) {
	entries, err := s.voice.Top(ctx, guildID, timeframe.column(), LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load voice leaderboard: %w", err)
	}
	return entries, nil
}
