package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_nextRun(t *testing.T) {
	tests := []struct {
		name string
		spec string
		prev time.Time
		now  time.Time
		want time.Time
	}{
		{
			name: "birthday later today",
			spec: "0 0 10 * * *",
			now:  time.Date(2025, 7, 15, 9, 59, 59, 0, time.UTC),
			want: time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "birthday right after firing",
			spec: "0 0 10 * * *",
			now:  time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "clock behind the previous run",
			spec: "0 0 10 * * *",
			prev: time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
			now:  time.Date(2025, 7, 15, 9, 59, 59, 0, time.UTC),
			want: time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "run overran the next instant",
			spec: "0 0 0 1 * *",
			prev: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			now:  time.Date(2025, 2, 1, 0, 0, 5, 0, time.UTC),
			want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monthly reset",
			spec: "0 0 0 1 * *",
			now:  time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non UTC input",
			spec: "0 0 0 1 * *",
			now:  time.Date(2025, 3, 31, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := parser.Parse(tt.spec)
			require.NoError(t, err)
			got := nextRun(schedule, tt.prev, tt.now)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

// fakeClock advances by the requested duration on every sleep, minus early
// for the first sleep only.
type fakeClock struct {
	mu    sync.Mutex
	t     time.Time
	early time.Duration
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) after(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.early > 0 && d > c.early {
		d -= c.early
		c.early = 0
	}
	c.t = c.t.Add(d)
	fired := make(chan time.Time, 1)
	fired <- c.t
	return fired
}

// runScheduler starts s on clock and returns the instants of the first n runs.
func runScheduler(t *testing.T, clock *fakeClock, spec string, n int, fail bool) []time.Time {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var runs []time.Time
	s, err := New(Task{
		Name: "daily",
		Spec: spec,
		Run: func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			runs = append(runs, clock.now())
			if len(runs) == n {
				cancel()
			}
			if fail {
				return errors.New("keeps going")
			}
			return nil
		},
	})
	require.NoError(t, err)
	s.now = clock.now
	s.after = clock.after

	require.True(t, s.Start(ctx))
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	return runs
}

func Test_Scheduler_EarlyWake(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC), early: time.Second}

	runs := runScheduler(t, clock, "0 0 10 * * *", 3, false)

	assert.Equal(t, []time.Time{
		time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 17, 10, 0, 0, 0, time.UTC),
	}, runs)
}

func Test_New_InvalidSpec(t *testing.T) {
	_, err := New(Task{Name: "bad", Spec: "every day", Run: func(context.Context) error { return nil }})
	assert.Error(t, err)
}

func Test_Scheduler_StartOnce(t *testing.T) {
	s, err := New(Task{Name: "noop", Spec: "0 0 10 * * *", Run: func(context.Context) error { return nil }})
	require.NoError(t, err)
	s.after = func(time.Duration) <-chan time.Time { return nil }

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, s.Start(ctx))
	assert.False(t, s.Start(ctx))
	assert.False(t, s.Start(ctx))
	cancel()
	s.Wait()
}

func Test_Scheduler_FailingRunKeepsGoing(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}

	runs := runScheduler(t, clock, "0 0 0 1 * *", 2, true)

	assert.Equal(t, []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}, runs)
}

func Test_Scheduler_RecoversPanics(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.runOnce(context.Background(), Task{Name: "boom", Run: func(context.Context) error { panic("boom") }})
	})
}
