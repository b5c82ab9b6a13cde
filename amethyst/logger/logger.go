package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
	TypeEvent   LogType = "EVT"
	TypeVoice   LogType = "VC"
	TypeGame    LogType = "GAME"
	TypeTask    LogType = "TASK"
)

var typeByAttr = map[string]LogType{
	"cmd":   TypeCommand,
	"db":    TypeDB,
	"sys":   TypeSystem,
	"error": TypeError,
	"event": TypeEvent,
	"vc":    TypeVoice,
	"game":  TypeGame,
	"task":  TypeTask,
}

// Noisy gateway and rest chatter from disgo.
var skippedMessages = []string{
	"locking buckets",
	"unlocking buckets",
	"gateway event",
	"cleaning up bucket",
	"cleaned up rate limit buckets",
	"binary message received",
	"received gateway message",
	"locking gateway rate limiter",
	"unlocking gateway rate limiter",
	"sending gateway command",
	"new request",
	"new response",
	"locking rest bucket",
	"unlocking rest bucket",
	"rate limit response headers",
	"sending heartbeat",
	"heartbeat ack received",
}

// CustomHandler prints one coloured line per record.
type CustomHandler struct {
	level     slog.Leveler
	out       io.Writer
	mu        *sync.Mutex
	startTime time.Time
	attrs     []slog.Attr
	groups    []string
}

func NewHandler(level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(os.Stdout, level)
}

func NewHandlerWithWriter(out io.Writer, level slog.Leveler) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		level:     level,
		out:       out,
		mu:        &sync.Mutex{},
		startTime: time.Now(),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), attrs...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	levelColor, levelText := levelStyle(r.Level)
	fields := collectFields(&r, h.attrs)

	message := r.Message
	if r.Level >= slog.LevelError {
		location := fields.errorLocation
		if location == "" {
			location = sourceLocation(r.PC)
		}
		if location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if fields.errorDetails != "" {
			message = fmt.Sprintf("%s: %s", message, fields.errorDetails)
		}
	}

	if fields.name != "" && fields.userName != "" {
		message = fmt.Sprintf("%s [%s by %s]", message, fields.name, fields.userName)
	}
	if fields.status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, fields.status)
	}

	var extra strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, attr := range fields.rest {
		key := attr.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&extra, " %s=%v", key, attr.Value)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[Amethyst] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		timestamp,
		levelColor,
		levelText,
		colorWhite,
		fields.logType,
		message,
		extra.String(),
		colorReset,
	)
	return err
}

// Uptime reports how long the handler has been installed.
func (h *CustomHandler) Uptime() time.Duration {
	return time.Since(h.startTime)
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level >= slog.LevelError:
		return colorRed, "ERROR"
	case level >= slog.LevelWarn:
		return colorYellow, "WARN"
	case level >= slog.LevelInfo:
		return colorGreen, "INFO"
	default:
		return colorPurple, "DEBUG"
	}
}

func shouldSkipLog(r *slog.Record) bool {
	msg := strings.ToLower(r.Message)
	for _, skip := range skippedMessages {
		if strings.Contains(msg, skip) {
			return true
		}
	}
	return false
}

type recordFields struct {
	logType       LogType
	status        string
	name          string
	userName      string
	errorDetails  string
	errorLocation string
	rest          []slog.Attr
}

func collectFields(r *slog.Record, handlerAttrs []slog.Attr) recordFields {
	f := recordFields{logType: TypeSystem}
	visit := func(a slog.Attr) bool {
		switch a.Key {
		case "type":
			if t, ok := typeByAttr[a.Value.String()]; ok {
				f.logType = t
			}
		case "status":
			f.status = a.Value.String()
		case "name":
			f.name = a.Value.String()
		case "user_name":
			f.userName = a.Value.String()
		case "error":
			f.errorDetails = fmt.Sprintf("%v", a.Value.Any())
		case "error_location":
			f.errorLocation = a.Value.String()
		default:
			f.rest = append(f.rest, a)
		}
		return true
	}
	for _, a := range handlerAttrs {
		visit(a)
	}
	r.Attrs(visit)
	return f
}

func sourceLocation(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
