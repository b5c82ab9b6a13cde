package minigames

import (
	"fmt"
	"time"
)

const (
	BombFuse  = 20 * time.Second
	BombTries = 1
)

type Wire int

const (
	Red Wire = iota
	Green
	White
	Black
	Blue
)

var Wires = []Wire{Red, Green, White, Black, Blue}

func (w Wire) String() string {
	switch w {
	case Red:
		return "red"
	case Green:
		return "green"
	case White:
		return "white"
	case Black:
		return "black"
	case Blue:
		return "blue"
	}
	return "unknown"
}

func (w Wire) Emoji() string {
	switch w {
	case Red:
		return "🟥"
	case Green:
		return "🟩"
	case White:
		return "⬜"
	case Black:
		return "⬛"
	case Blue:
		return "🟦"
	}
	return ""
}

func ParseWire(s string) (Wire, error) {
	for _, w := range Wires {
		if w.String() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown wire %q", s)
}

type BombOutcome int

const (
	BombPending BombOutcome = iota
	BombDummy
	BombDefused
	BombExploded
	BombTimedOut
)

func (o BombOutcome) Terminal() bool {
	return o == BombDefused || o == BombExploded || o == BombTimedOut
}

func (o BombOutcome) String() string {
	switch o {
	case BombDummy:
		return "dummy"
	case BombDefused:
		return "defused"
	case BombExploded:
		return "exploded"
	case BombTimedOut:
		return "timed_out"
	}
	return "pending"
}

// Bomb is the state of one defusal attempt.
type Bomb struct {
	wire     Wire
	tries    int
	deadline time.Time
	outcome  BombOutcome
}

func NewBomb(wire Wire, armedAt time.Time) *Bomb {
	return &Bomb{wire: wire, tries: BombTries, deadline: armedAt.Add(BombFuse)}
}

func (b *Bomb) Deadline() time.Time { return b.deadline }

func (b *Bomb) Outcome() BombOutcome { return b.outcome }

// Press cuts a wire at the given instant. Presses after the deadline, or
// after the game ended, resolve to the timeout or the existing outcome.
func (b *Bomb) Press(w Wire, at time.Time) BombOutcome {
	if b.outcome.Terminal() {
		return b.outcome
	}
	if at.After(b.deadline) {
		return b.Expire()
	}

	switch {
	case w == b.wire:
		b.outcome = BombDefused
	case b.tries > 0:
		b.tries--
		b.outcome = BombDummy
	default:
		b.outcome = BombExploded
	}
	return b.outcome
}

func (b *Bomb) Expire() BombOutcome {
	if !b.outcome.Terminal() {
		b.outcome = BombTimedOut
	}
	return b.outcome
}
