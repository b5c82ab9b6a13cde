package handlers

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/amethystbot/amethyst/internal/domain/minigames"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
)

const collectorBuffer = 16

// Collectors routes button presses to the command invocation that owns the
// message. Custom IDs take the form "<game>:<interaction id>:<value>".
type Collectors struct {
	mu     sync.Mutex
	games  map[string]struct{}
	routes map[string]chan minigames.Press
}

func NewCollectors(games ...string) *Collectors {
	c := &Collectors{
		games:  make(map[string]struct{}, len(games)),
		routes: make(map[string]chan minigames.Press),
	}
	for _, g := range games {
		c.games[g] = struct{}{}
	}
	return c
}

// Collector receives the presses for one anchor message.
type Collector struct {
	prefix  string
	presses chan minigames.Press
	owner   *Collectors
}

// Open starts collecting presses for the message answered by interactionID.
func (c *Collectors) Open(game string, interactionID snowflake.ID) *Collector {
	col := &Collector{
		prefix:  game + ":" + interactionID.String() + ":",
		presses: make(chan minigames.Press, collectorBuffer),
		owner:   c,
	}
	c.mu.Lock()
	c.games[game] = struct{}{}
	c.routes[col.prefix] = col.presses
	c.mu.Unlock()
	return col
}

// CustomID builds the custom ID of a button carrying value.
func (col *Collector) CustomID(value string) string {
	return col.prefix + value
}

func (col *Collector) Next(ctx context.Context) (minigames.Press, bool) {
	select {
	case p := <-col.presses:
		return p, true
	case <-ctx.Done():
		return minigames.Press{}, false
	}
}

// Close stops routing; later presses are told the game is over.
func (col *Collector) Close() {
	col.owner.mu.Lock()
	delete(col.owner.routes, col.prefix)
	col.owner.mu.Unlock()
}

// splitCustomID returns the route prefix and value of a collector custom ID.
func splitCustomID(customID string) (game, prefix, value string, ok bool) {
	parts := strings.SplitN(customID, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", "", "", false
	}
	return parts[0], parts[0] + ":" + parts[1] + ":", parts[2], true
}

// deliver hands the press to its collector. It reports whether the game is
// one of ours and whether a live collector took the press.
func (c *Collectors) deliver(customID string, userID snowflake.ID) (known, delivered bool) {
	game, prefix, value, ok := splitCustomID(customID)
	if !ok {
		return false, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, known = c.games[game]; !known {
		return false, false
	}
	ch, ok := c.routes[prefix]
	if !ok {
		return true, false
	}
	select {
	case ch <- minigames.Press{UserID: userID, Value: value}:
	default:
		slog.Warn("Dropped button press",
			slog.String("type", "game"),
			slog.String("custom_id", customID))
	}
	return true, true
}

// OnComponent acknowledges every press that belongs to a collector game.
func (c *Collectors) OnComponent(e *events.ComponentInteractionCreate) {
	known, delivered := c.deliver(e.Data.CustomID(), e.User().ID)
	if !known {
		return
	}

	var err error
	if delivered {
		err = e.DeferUpdateMessage()
	} else {
		err = e.CreateMessage(discord.MessageCreate{
			Content: "This game has already ended.",
			Flags:   discord.MessageFlagEphemeral,
		})
	}
	if err != nil {
		slog.Error("Failed to acknowledge button press",
			slog.String("type", "game"),
			slog.Any("error", err))
	}
}
