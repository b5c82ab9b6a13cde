package minigames

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/snowflake/v2"
)

const RPSTimeout = 60 * time.Second

// Press is one button press on an anchor message.
type Press struct {
	UserID snowflake.ID
	Value  string
}

// Collector yields presses until the context ends. It returns false once no
// more presses will arrive.
type Collector interface {
	Next(ctx context.Context) (Press, bool)
}

type StatsRecorder interface {
	Increment(ctx context.Context, guildID, userID snowflake.ID, counters ...repositories.Counter) error
}

type GifSource interface {
	RandomURL(ctx context.Context, guildID snowflake.ID, gifType media.GifType) string
}

type RouletteRepository interface {
	UpdateRoulette(ctx context.Context, guildID snowflake.ID, fn repositories.RouletteFunc) error
}

type BombView interface {
	Dummy(ctx context.Context) error
	Finish(ctx context.Context, outcome BombOutcome, gifURL string) error
}

type RPSView interface {
	Progress(ctx context.Context, game *RPS) error
	Finish(ctx context.Context, game *RPS) error
	TimedOut(ctx context.Context) error
}

// Games runs the interactive minigames. State of a bomb or rps game lives
// only for the duration of its Play call.
type Games struct {
	stats    StatsRecorder
	gifs     GifSource
	roulette RouletteRepository
	now      func() time.Time
	intN     func(n int) int
}

func NewGames(stats StatsRecorder, gifs GifSource, roulette RouletteRepository) *Games {
	return &Games{
		stats:    stats,
		gifs:     gifs,
		roulette: roulette,
		now:      time.Now,
		intN:     rand.IntN,
	}
}

func (g *Games) WithClock(now func() time.Time) *Games {
	g.now = now
	return g
}

func (g *Games) WithRand(intN func(n int) int) *Games {
	g.intN = intN
	return g
}

func (g *Games) record(ctx context.Context, guildID, userID snowflake.ID, counters ...repositories.Counter) {
	if err := g.stats.Increment(ctx, guildID, userID, counters...); err != nil {
		slog.Error("Failed to record game stats",
			slog.String("type", "game"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}

// PlayBomb runs a bomb game until the target defuses it, cuts the wrong wire
// twice or the fuse runs out. Self-bombs update no stats.
func (g *Games) PlayBomb(ctx context.Context, guildID, sender, target snowflake.ID, presses Collector, view BombView) (BombOutcome, error) {
	tracked := sender != target
	if tracked {
		g.record(ctx, guildID, sender, repositories.BombSent)
	}

	bomb := NewBomb(Wires[g.intN(len(Wires))], g.now())
	fuseCtx, cancel := context.WithDeadline(ctx, bomb.Deadline())
	defer cancel()

	outcome := BombPending
	for !outcome.Terminal() {
		press, ok := presses.Next(fuseCtx)
		if !ok {
			outcome = bomb.Expire()
			break
		}
		if press.UserID != target {
			continue
		}
		wire, err := ParseWire(press.Value)
		if err != nil {
			continue
		}

		outcome = bomb.Press(wire, g.now())
		if outcome == BombDummy {
			if err = view.Dummy(ctx); err != nil {
				return outcome, fmt.Errorf("failed to update bomb: %w", err)
			}
		}
	}

	var gifType media.GifType
	switch outcome {
	case BombDefused:
		gifType = media.BombDefuse
		if tracked {
			g.record(ctx, guildID, target, repositories.BombDefused)
		}
	case BombExploded:
		gifType = media.BombFailure
		if tracked {
			g.record(ctx, guildID, target, repositories.BombFailed)
		}
	default:
		gifType = media.BombTime
		if tracked {
			g.record(ctx, guildID, target, repositories.BombFailed)
		}
	}

	slog.Info("Bomb resolved",
		slog.String("type", "game"),
		slog.String("guild_id", guildID.String()),
		slog.String("target", target.String()),
		slog.String("outcome", outcome.String()))

	return outcome, view.Finish(ctx, outcome, g.gifs.RandomURL(ctx, guildID, gifType))
}

// PlayRPS runs a rock-paper-scissors game between two distinct players. It
// returns nil when the game timed out.
func (g *Games) PlayRPS(ctx context.Context, guildID, challenger, opponent snowflake.ID, presses Collector, view RPSView) (*RPS, error) {
	game := NewRPS(challenger, opponent)
	timeoutCtx, cancel := context.WithTimeout(ctx, RPSTimeout)
	defer cancel()

	for !game.Done() {
		press, ok := presses.Next(timeoutCtx)
		if !ok {
			return nil, view.TimedOut(ctx)
		}
		choice, err := ParseChoice(press.Value)
		if err != nil || !game.Choose(press.UserID, choice) {
			continue
		}
		if game.Done() {
			break
		}
		if err = view.Progress(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update rps: %w", err)
		}
	}

	players := game.Players()
	switch w := game.Winner(); w {
	case -1:
		g.record(ctx, guildID, players[0], repositories.RPSTie)
		g.record(ctx, guildID, players[1], repositories.RPSTie)
	default:
		g.record(ctx, guildID, players[w], repositories.RPSWin)
		g.record(ctx, guildID, players[1-w], repositories.RPSLoss)
	}

	return game, view.Finish(ctx, game)
}

// RouletteResult is what one trigger pull did to the guild's revolver.
type RouletteResult struct {
	Fired bool
	State RouletteState
}

func (g *Games) PullTrigger(ctx context.Context, guildID, userID snowflake.ID) (RouletteResult, error) {
	var result RouletteResult
	err := g.roulette.UpdateRoulette(ctx, guildID, func(chamber, count int) (int, int, error) {
		shot, fired := Pull(RouletteState{Chamber: chamber, Count: count}, func() int {
			return g.intN(Chambers) + 1
		})
		result = RouletteResult{Fired: fired, State: shot}
		stored := shot.Persisted(fired)
		return stored.Chamber, stored.Count, nil
	})
	if err != nil {
		return RouletteResult{}, fmt.Errorf("failed to pull trigger: %w", err)
	}

	if result.Fired {
		g.record(ctx, guildID, userID, repositories.RouletteDeaths)
	}
	return result, nil
}
