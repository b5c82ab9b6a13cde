package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func Test_CustomHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		contains []string
		empty    bool
	}{
		{
			name: "command type",
			log: func(l *slog.Logger) {
				l.Info("Command completed", slog.String("type", "cmd"), slog.String("name", "bomb"), slog.String("user_name", "amy"))
			},
			contains: []string{"[Amethyst]", "[CMD]", "Command completed [bomb by amy]"},
		},
		{
			name: "error details",
			log: func(l *slog.Logger) {
				l.Error("Query failed", slog.String("type", "db"), slog.Any("error", errors.New("boom")))
			},
			contains: []string{"[DB]", "ERROR", ": boom"},
		},
		{
			name: "extra attributes",
			log: func(l *slog.Logger) {
				l.Info("Voice session flushed", slog.String("type", "vc"), slog.Int64("seconds", 60))
			},
			contains: []string{"[VC]", "seconds=60"},
		},
		{
			name: "gateway chatter skipped",
			log: func(l *slog.Logger) {
				l.Info("sending heartbeat")
			},
			empty: true,
		},
		{
			name: "below level",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
			},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(slog.New(NewHandlerWithWriter(&buf, slog.LevelInfo)))

			if tt.empty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func Test_CustomHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandlerWithWriter(&buf, slog.LevelDebug)).With(slog.String("type", "task"), slog.String("task", "birthday"))
	l.Debug("Task finished")

	assert.Contains(t, buf.String(), "[TASK]")
	assert.Contains(t, buf.String(), "task=birthday")
}

func useBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(NewHandlerWithWriter(&buf, slog.LevelInfo)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func Test_System(t *testing.T) {
	buf := useBuffer(t)
	System("Shutting down...", slog.String("reason", "signal"))

	assert.Contains(t, buf.String(), "[SYS]")
	assert.Contains(t, buf.String(), "Shutting down... reason=signal")
}

func Test_EventError(t *testing.T) {
	buf := useBuffer(t)
	EventError("Failed to send welcome message", errors.New("missing access"), snowflake.ID(42), slog.String("user_id", "7"))

	out := buf.String()
	assert.Contains(t, out, "[EVT]")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, ": missing access")
	assert.Contains(t, out, "guild_id=42")
	assert.Contains(t, out, "user_id=7")
}

func Test_Fatal(t *testing.T) {
	buf := useBuffer(t)
	code := 0
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	Fatal("Failed to open gateway", "gateway", errors.New("timeout"))

	assert.Equal(t, -1, code)
	assert.Contains(t, buf.String(), "[Status: failed]")
	assert.Contains(t, buf.String(), "component=gateway")
}
