package vctracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"
)

const defaultRecheckWorkers = 8

type Repository interface {
	IgnoredChannel(ctx context.Context, guildID snowflake.ID) (*snowflake.ID, error)
	StartSession(ctx context.Context, guildID, userID snowflake.ID, now int64) error
	FlushSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error)
	RecheckSession(ctx context.Context, guildID, userID snowflake.ID, now int64) (bool, error)
	ActiveSessions(ctx context.Context, guildID snowflake.ID) ([]snowflake.ID, error)
	ClearSessions(ctx context.Context, guildID snowflake.ID, userIDs []snowflake.ID) error
	ResetMonthly(ctx context.Context) (int64, error)
}

// ChannelLookup reports the voice channel a member currently sits in, or nil.
type ChannelLookup func(userID snowflake.ID) *snowflake.ID

type Engine struct {
	repository Repository
	now        func() time.Time
	workers    int
}

func NewEngine(repository Repository) *Engine {
	return &Engine{repository: repository, now: time.Now, workers: defaultRecheckWorkers}
}

func (e *Engine) WithWorkers(n int) *Engine {
	if n > 0 {
		e.workers = n
	}
	return e
}

func (e *Engine) ignored(ctx context.Context, guildID snowflake.ID) (snowflake.ID, error) {
	channel, err := e.repository.IgnoredChannel(ctx, guildID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("failed to load ignored channel: %w", err)
	case channel == nil:
		return 0, nil
	}
	return *channel, nil
}

// HandleVoiceUpdate applies one voice state edge to the ledger.
func (e *Engine) HandleVoiceUpdate(ctx context.Context, guildID, userID snowflake.ID, oldChannel, newChannel *snowflake.ID) (Action, error) {
	transition := Classify(oldChannel, newChannel)
	if transition == NoTransition {
		return Noop, nil
	}

	ignored, err := e.ignored(ctx, guildID)
	if err != nil {
		return Noop, err
	}

	action := Decide(transition, oldChannel, newChannel, ignored)
	now := e.now().Unix()

	switch action {
	case Join:
		err = e.repository.StartSession(ctx, guildID, userID, now)
	case Flush:
		var flushed bool
		flushed, err = e.repository.FlushSession(ctx, guildID, userID, now)
		if err == nil && !flushed {
			slog.Debug("Disconnect without an open session",
				slog.String("type", "vc"),
				slog.String("guild_id", guildID.String()),
				slog.String("user_id", userID.String()))
		}
	}
	if err != nil {
		return action, fmt.Errorf("failed to apply %s: %w", action, err)
	}

	slog.Debug("Voice transition",
		slog.String("type", "vc"),
		slog.String("guild_id", guildID.String()),
		slog.String("user_id", userID.String()),
		slog.String("transition", transition.String()),
		slog.String("action", action.String()))
	return action, nil
}

// Recheck credits the open session of a member that is still in a tracked
// channel and restarts it at now.
func (e *Engine) Recheck(ctx context.Context, guildID, userID snowflake.ID, current *snowflake.ID) error {
	ignored, err := e.ignored(ctx, guildID)
	if err != nil {
		return err
	}
	return e.recheck(ctx, guildID, userID, current, ignored)
}

func (e *Engine) recheck(ctx context.Context, guildID, userID snowflake.ID, current *snowflake.ID, ignored snowflake.ID) error {
	if current == nil || (ignored != 0 && *current == ignored) {
		return nil
	}
	if _, err := e.repository.RecheckSession(ctx, guildID, userID, e.now().Unix()); err != nil {
		return fmt.Errorf("failed to recheck session: %w", err)
	}
	return nil
}

// RecheckGuild rechecks every open session of the guild in parallel.
func (e *Engine) RecheckGuild(ctx context.Context, guildID snowflake.ID, lookup ChannelLookup) error {
	ignored, err := e.ignored(ctx, guildID)
	if err != nil {
		return err
	}

	active, err := e.repository.ActiveSessions(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to list active sessions: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, userID := range active {
		g.Go(func() error {
			return e.recheck(ctx, guildID, userID, lookup(userID), ignored)
		})
	}
	return g.Wait()
}

// Safeguard closes sessions left open by a missed disconnect. It returns how
// many sessions were cleared.
func (e *Engine) Safeguard(ctx context.Context, guildID snowflake.ID, lookup ChannelLookup) (int, error) {
	active, err := e.repository.ActiveSessions(ctx, guildID)
	if err != nil {
		return 0, fmt.Errorf("failed to list active sessions: %w", err)
	}

	var stale []snowflake.ID
	for _, userID := range active {
		if lookup(userID) == nil {
			stale = append(stale, userID)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	if err = e.repository.ClearSessions(ctx, guildID, stale); err != nil {
		return 0, fmt.Errorf("failed to clear stale sessions: %w", err)
	}
	slog.Info("Cleared stale voice sessions",
		slog.String("type", "vc"),
		slog.String("guild_id", guildID.String()),
		slog.Int("count", len(stale)))
	return len(stale), nil
}

func (e *Engine) ResetMonthly(ctx context.Context) error {
	n, err := e.repository.ResetMonthly(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset monthly voice time: %w", err)
	}
	slog.Info("Monthly voice time reset",
		slog.String("type", "vc"),
		slog.Int64("rows", n))
	return nil
}
