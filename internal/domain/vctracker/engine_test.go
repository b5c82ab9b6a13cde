package vctracker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amethystbot/amethyst/internal/domain/vctracker/mock"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

type session struct {
	join, total, monthly int64
}

// ledger applies the same arithmetic as the voice repository's UPDATEs.
type ledger struct {
	mu       sync.Mutex
	ignored  *snowflake.ID
	sessions map[snowflake.ID]*session
}

func newLedger(ignored *snowflake.ID) *ledger {
	return &ledger{ignored: ignored, sessions: map[snowflake.ID]*session{}}
}

func (l *ledger) get(userID snowflake.ID) *session {
	s, ok := l.sessions[userID]
	if !ok {
		s = &session{}
		l.sessions[userID] = s
	}
	return s
}

func (l *ledger) IgnoredChannel(context.Context, snowflake.ID) (*snowflake.ID, error) {
	return l.ignored, nil
}

func (l *ledger) StartSession(_ context.Context, _, userID snowflake.ID, now int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.get(userID).join = now
	return nil
}

func (l *ledger) credit(userID snowflake.ID, now, next int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.get(userID)
	if s.join == 0 {
		return false
	}
	d := max(0, now-s.join)
	s.total += d
	s.monthly += d
	s.join = next
	return true
}

func (l *ledger) FlushSession(_ context.Context, _, userID snowflake.ID, now int64) (bool, error) {
	return l.credit(userID, now, 0), nil
}

func (l *ledger) RecheckSession(_ context.Context, _, userID snowflake.ID, now int64) (bool, error) {
	return l.credit(userID, now, now), nil
}

func (l *ledger) ActiveSessions(context.Context, snowflake.ID) ([]snowflake.ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var ids []snowflake.ID
	for id, s := range l.sessions {
		if s.join != 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (l *ledger) ClearSessions(_ context.Context, _ snowflake.ID, userIDs []snowflake.ID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range userIDs {
		l.get(id).join = 0
	}
	return nil
}

func (l *ledger) ResetMonthly(context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int64
	for _, s := range l.sessions {
		if s.monthly != 0 {
			s.monthly = 0
			n++
		}
	}
	return n, nil
}

type clock struct{ t int64 }

func (c *clock) now() time.Time { return time.Unix(c.t, 0) }

func newTestEngine(l *ledger, c *clock) *Engine {
	e := NewEngine(l)
	e.now = c.now
	return e
}

func ch(id snowflake.ID) *snowflake.ID { return &id }

func Test_Classify(t *testing.T) {
	tests := []struct {
		name     string
		old, new *snowflake.ID
		want     Transition
	}{
		{name: "connect", new: ch(1), want: Connect},
		{name: "disconnect", old: ch(1), want: Disconnect},
		{name: "move", old: ch(1), new: ch(2), want: Move},
		{name: "same channel", old: ch(1), new: ch(1), want: NoTransition},
		{name: "nothing", want: NoTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.old, tt.new))
		})
	}
}

func Test_Decide(t *testing.T) {
	const ignored = snowflake.ID(9)
	tests := []struct {
		name     string
		old, new *snowflake.ID
		ignored  snowflake.ID
		want     Action
	}{
		{name: "connect tracked", new: ch(1), ignored: ignored, want: Join},
		{name: "connect ignored", new: ch(ignored), ignored: ignored, want: Noop},
		{name: "connect without ignored channel", new: ch(1), want: Join},
		{name: "disconnect tracked", old: ch(1), ignored: ignored, want: Flush},
		{name: "disconnect ignored", old: ch(ignored), ignored: ignored, want: Noop},
		{name: "move tracked to ignored", old: ch(1), new: ch(ignored), ignored: ignored, want: Flush},
		{name: "move ignored to tracked", old: ch(ignored), new: ch(1), ignored: ignored, want: Join},
		{name: "move tracked to tracked", old: ch(1), new: ch(2), ignored: ignored, want: Noop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(Classify(tt.old, tt.new), tt.old, tt.new, tt.ignored))
		})
	}
}

func Test_Engine_NormalSession(t *testing.T) {
	ctx := context.Background()
	l := newLedger(nil)
	c := &clock{t: 1000}
	e := newTestEngine(l, c)

	_, err := e.HandleVoiceUpdate(ctx, 1, 5, nil, ch(10))
	require.NoError(t, err)
	c.t = 1060
	_, err = e.HandleVoiceUpdate(ctx, 1, 5, ch(10), nil)
	require.NoError(t, err)

	assert.Equal(t, session{join: 0, total: 60, monthly: 60}, *l.sessions[5])
}

func Test_Engine_IgnoredMove(t *testing.T) {
	ctx := context.Background()
	const a, b = snowflake.ID(10), snowflake.ID(20)
	l := newLedger(ch(b))
	c := &clock{t: 1000}
	e := newTestEngine(l, c)

	steps := []struct {
		at       int64
		old, new *snowflake.ID
	}{
		{at: 1000, new: ch(a)},
		{at: 1020, old: ch(a), new: ch(b)},
		{at: 1100, old: ch(b), new: ch(a)},
		{at: 1160, old: ch(a)},
	}
	for _, s := range steps {
		c.t = s.at
		_, err := e.HandleVoiceUpdate(ctx, 1, 5, s.old, s.new)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(80), l.sessions[5].total)
	assert.Equal(t, int64(80), l.sessions[5].monthly)
	assert.Zero(t, l.sessions[5].join)
}

func Test_Engine_ConnectToIgnored(t *testing.T) {
	l := newLedger(ch(20))
	e := newTestEngine(l, &clock{t: 500})

	action, err := e.HandleVoiceUpdate(context.Background(), 1, 5, nil, ch(20))
	require.NoError(t, err)
	assert.Equal(t, Noop, action)
	assert.Nil(t, l.sessions[5])
}

// Property: with arbitrary rechecks interleaved, the credited total equals the
// true time spent in tracked channels and never decreases.
func Test_Engine_DwellTimeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		const ignored = snowflake.ID(3)
		channels := []snowflake.ID{1, 2, ignored}

		l := newLedger(ch(ignored))
		c := &clock{t: 1_000_000}
		e := newTestEngine(l, c)

		var current *snowflake.ID
		var expected, lastTotal int64

		steps := rapid.IntRange(1, 80).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			dt := rapid.Int64Range(0, 3600).Draw(t, "dt")
			if current != nil && *current != ignored {
				expected += dt
			}
			c.t += dt

			if rapid.IntRange(0, 3).Draw(t, "kind") == 0 {
				if err := e.Recheck(ctx, 1, 5, current); err != nil {
					t.Fatal(err)
				}
			} else {
				var next *snowflake.ID
				if pick := rapid.IntRange(0, len(channels)).Draw(t, "channel"); pick < len(channels) {
					next = ch(channels[pick])
				}
				if _, err := e.HandleVoiceUpdate(ctx, 1, 5, current, next); err != nil {
					t.Fatal(err)
				}
				current = next
			}

			s := l.get(5)
			if s.total < lastTotal {
				t.Fatalf("total decreased from %d to %d", lastTotal, s.total)
			}
			lastTotal = s.total
		}

		// close any open session so every second is credited
		if _, err := e.HandleVoiceUpdate(ctx, 1, 5, current, nil); err != nil {
			t.Fatal(err)
		}
		s := l.get(5)
		if s.total != expected {
			t.Fatalf("total = %d, want %d", s.total, expected)
		}
		if s.monthly != expected {
			t.Fatalf("monthly = %d, want %d", s.monthly, expected)
		}
	})
}

func Test_Engine_RecheckGuild(t *testing.T) {
	l := newLedger(ch(9))
	c := &clock{t: 100}
	e := newTestEngine(l, c).WithWorkers(2)

	for _, u := range []snowflake.ID{1, 2, 3} {
		l.get(u).join = 100
	}
	channels := map[snowflake.ID]*snowflake.ID{1: ch(5), 2: ch(9), 3: nil}

	c.t = 160
	require.NoError(t, e.RecheckGuild(context.Background(), 1, func(u snowflake.ID) *snowflake.ID { return channels[u] }))

	assert.Equal(t, session{join: 160, total: 60, monthly: 60}, *l.sessions[1])
	assert.Equal(t, session{join: 100}, *l.sessions[2])
	assert.Equal(t, session{join: 100}, *l.sessions[3])
}

func Test_Engine_Safeguard(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().ActiveSessions(gomock.Any(), snowflake.ID(1)).Return([]snowflake.ID{4, 5, 6}, nil)
	repo.EXPECT().ClearSessions(gomock.Any(), snowflake.ID(1), []snowflake.ID{4, 6}).Return(nil)

	inVoice := map[snowflake.ID]*snowflake.ID{5: ch(77)}
	n, err := NewEngine(repo).Safeguard(context.Background(), 1, func(u snowflake.ID) *snowflake.ID { return inVoice[u] })
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func Test_Engine_Safeguard_NothingStale(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().ActiveSessions(gomock.Any(), snowflake.ID(1)).Return(nil, nil)

	n, err := NewEngine(repo).Safeguard(context.Background(), 1, func(snowflake.ID) *snowflake.ID { return nil })
	require.NoError(t, err)
	assert.Zero(t, n)
}

func Test_Engine_ResetMonthly(t *testing.T) {
	l := newLedger(nil)
	l.get(1).monthly = 50
	l.get(1).total = 80
	l.get(2).monthly = 0

	require.NoError(t, NewEngine(l).ResetMonthly(context.Background()))
	assert.Zero(t, l.sessions[1].monthly)
	assert.Equal(t, int64(80), l.sessions[1].total)
}
