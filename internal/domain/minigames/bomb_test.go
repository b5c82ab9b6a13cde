package minigames_test

import (
	"testing"
	"time"

	"github.com/amethystbot/amethyst/internal/domain/minigames"
	"github.com/stretchr/testify/assert"
)

func Test_Bomb_Press(t *testing.T) {
	armed := time.Unix(1_000, 0)
	tests := []struct {
		name    string
		presses []minigames.Wire
		at      []time.Duration
		want    []minigames.BombOutcome
	}{
		{
			name:    "correct wire first",
			presses: []minigames.Wire{minigames.Blue},
			at:      []time.Duration{time.Second},
			want:    []minigames.BombOutcome{minigames.BombDefused},
		},
		{
			name:    "dummy then correct",
			presses: []minigames.Wire{minigames.Red, minigames.Blue},
			at:      []time.Duration{time.Second, 2 * time.Second},
			want:    []minigames.BombOutcome{minigames.BombDummy, minigames.BombDefused},
		},
		{
			name:    "two wrong wires",
			presses: []minigames.Wire{minigames.Red, minigames.Green},
			at:      []time.Duration{time.Second, 2 * time.Second},
			want:    []minigames.BombOutcome{minigames.BombDummy, minigames.BombExploded},
		},
		{
			name:    "just before the fuse",
			presses: []minigames.Wire{minigames.Blue},
			at:      []time.Duration{minigames.BombFuse - time.Millisecond},
			want:    []minigames.BombOutcome{minigames.BombDefused},
		},
		{
			name:    "just after the fuse",
			presses: []minigames.Wire{minigames.Blue},
			at:      []time.Duration{minigames.BombFuse + time.Millisecond},
			want:    []minigames.BombOutcome{minigames.BombTimedOut},
		},
		{
			name:    "presses after the end are ignored",
			presses: []minigames.Wire{minigames.Blue, minigames.Red},
			at:      []time.Duration{time.Second, 2 * time.Second},
			want:    []minigames.BombOutcome{minigames.BombDefused, minigames.BombDefused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := minigames.NewBomb(minigames.Blue, armed)
			for i, w := range tt.presses {
				assert.Equal(t, tt.want[i], b.Press(w, armed.Add(tt.at[i])))
			}
		})
	}
}

func Test_Bomb_Expire(t *testing.T) {
	b := minigames.NewBomb(minigames.Red, time.Unix(0, 0))
	assert.Equal(t, minigames.BombTimedOut, b.Expire())

	done := minigames.NewBomb(minigames.Red, time.Unix(0, 0))
	done.Press(minigames.Red, time.Unix(1, 0))
	assert.Equal(t, minigames.BombDefused, done.Expire())
}

func Test_ParseWire(t *testing.T) {
	for _, w := range minigames.Wires {
		got, err := minigames.ParseWire(w.String())
		assert.NoError(t, err)
		assert.Equal(t, w, got)
	}
	_, err := minigames.ParseWire("purple")
	assert.Error(t, err)
}
