package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func Test_CountRPSGames(t *testing.T) {
	tests := []struct {
		name       string
		wins, ties int64
		want       int64
	}{
		{name: "no games"},
		{name: "decided only", wins: 3, want: 3},
		{name: "one tie", ties: 2, want: 1},
		{name: "mixed", wins: 4, ties: 6, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountRPSGames(tt.wins, tt.ties))
		})
	}
}

func Test_CountRPSGames_MatchesPlayedGames(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		outcomes := rapid.SliceOf(rapid.Bool()).Draw(t, "tied")

		var wins, ties int64
		for _, tied := range outcomes {
			if tied {
				ties += 2
			} else {
				wins++
			}
		}

		if got := CountRPSGames(wins, ties); got != int64(len(outcomes)) {
			t.Fatalf("got %d games, played %d", got, len(outcomes))
		}
	})
}
