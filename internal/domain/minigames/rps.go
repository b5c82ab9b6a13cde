package minigames

import (
	"fmt"

	"github.com/disgoorg/snowflake/v2"
)

type Choice int

const (
	NoChoice Choice = iota
	Rock
	Paper
	Scissors
)

var Choices = []Choice{Rock, Paper, Scissors}

func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "none"
}

func (c Choice) Emoji() string {
	switch c {
	case Rock:
		return "🪨"
	case Paper:
		return "📄"
	case Scissors:
		return "✂️"
	}
	return ""
}

func ParseChoice(s string) (Choice, error) {
	for _, c := range Choices {
		if c.String() == s {
			return c, nil
		}
	}
	return NoChoice, fmt.Errorf("unknown choice %q", s)
}

// Beats reports whether a wins against b.
func Beats(a, b Choice) bool {
	return (a == Rock && b == Scissors) ||
		(a == Paper && b == Rock) ||
		(a == Scissors && b == Paper)
}

// RPS holds the two hidden choices of a game.
type RPS struct {
	players [2]snowflake.ID
	choices [2]Choice
}

func NewRPS(challenger, opponent snowflake.ID) *RPS {
	return &RPS{players: [2]snowflake.ID{challenger, opponent}}
}

func (g *RPS) Players() [2]snowflake.ID { return g.players }

func (g *RPS) slot(player snowflake.ID) int {
	for i, p := range g.players {
		if p == player {
			return i
		}
	}
	return -1
}

// Choose records a player's choice. A player may change their mind until
// both have committed. Returns false for non-players and finished games.
func (g *RPS) Choose(player snowflake.ID, c Choice) bool {
	i := g.slot(player)
	if i < 0 || c == NoChoice || g.Done() {
		return false
	}
	g.choices[i] = c
	return true
}

func (g *RPS) Committed(i int) bool { return g.choices[i] != NoChoice }

func (g *RPS) Done() bool { return g.Committed(0) && g.Committed(1) }

func (g *RPS) Choice(i int) Choice { return g.choices[i] }

// Winner returns the winning slot, or -1 for a tie. Only valid once Done.
func (g *RPS) Winner() int {
	switch {
	case Beats(g.choices[0], g.choices[1]):
		return 0
	case Beats(g.choices[1], g.choices[0]):
		return 1
	}
	return -1
}
