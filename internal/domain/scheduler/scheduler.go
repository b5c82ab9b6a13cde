package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Task is a periodic job aligned to a six-field cron expression in UTC.
type Task struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type entry struct {
	task     Task
	schedule cron.Schedule
}

// Scheduler starts its tasks at most once, however often Start is called.
type Scheduler struct {
	entries []entry
	once    sync.Once
	wg      sync.WaitGroup
	now     func() time.Time
	after   func(d time.Duration) <-chan time.Time
}

func New(tasks ...Task) (*Scheduler, error) {
	s := &Scheduler{now: time.Now, after: time.After}
	for _, t := range tasks {
		schedule, err := parser.Parse(t.Spec)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule for task %s: %w", t.Name, err)
		}
		s.entries = append(s.entries, entry{task: t, schedule: schedule})
	}
	return s, nil
}

// nextRun returns the first instant of schedule strictly after both prev and
// now, in UTC. Passing the previous run as prev keeps an early timer wake from
// yielding the same instant twice.
func nextRun(schedule cron.Schedule, prev, now time.Time) time.Time {
	from := now.UTC()
	if prev.After(from) {
		from = prev.UTC()
	}
	return schedule.Next(from)
}

// Start launches every task loop. Only the first call has any effect and it
// reports true.
func (s *Scheduler) Start(ctx context.Context) bool {
	started := false
	s.once.Do(func() {
		started = true
		for _, e := range s.entries {
			s.wg.Add(1)
			go s.loop(ctx, e)
		}
		slog.Info("Scheduler started",
			slog.String("type", "task"),
			slog.Int("tasks", len(s.entries)))
	})
	return started
}

// Wait blocks until every task loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, e entry) {
	defer s.wg.Done()
	next := nextRun(e.schedule, time.Time{}, s.now())
	for {
		slog.Debug("Task scheduled",
			slog.String("type", "task"),
			slog.String("task", e.task.Name),
			slog.Time("next", next))

		// timers may fire early, sleep again until next has passed
		for wait := next.Sub(s.now()); wait > 0; wait = next.Sub(s.now()) {
			select {
			case <-ctx.Done():
				return
			case <-s.after(wait):
			}
		}
		if ctx.Err() != nil {
			return
		}

		s.runOnce(ctx, e.task)
		next = nextRun(e.schedule, next, s.now())
	}
}

func (s *Scheduler) runOnce(ctx context.Context, t Task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Task panicked",
				slog.String("type", "task"),
				slog.String("task", t.Name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	start := s.now()
	if err := t.Run(ctx); err != nil {
		slog.Error("Task failed",
			slog.String("type", "task"),
			slog.String("task", t.Name),
			slog.Any("error", err))
		return
	}
	slog.Info("Task finished",
		slog.String("type", "task"),
		slog.String("task", t.Name),
		slog.Duration("took", s.now().Sub(start)))
}
