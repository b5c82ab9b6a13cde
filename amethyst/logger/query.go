package logger

import (
	"log/slog"
	"time"
)

type QueryLogger struct {
	Operation string
	Query     string
	Args      []any
	StartTime time.Time
}

func NewQueryLogger(operation, query string, args ...any) *QueryLogger {
	return &QueryLogger{
		Operation: operation,
		Query:     query,
		Args:      args,
		StartTime: time.Now(),
	}
}

// Log reports the query outcome. rowsAffected < 0 means unknown.
func (l *QueryLogger) Log(err error, rowsAffected int64) {
	duration := time.Since(l.StartTime)
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", l.Operation),
		slog.String("query", l.Query),
		slog.Any("args", l.Args),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs, slog.Any("error", err))...)
		return
	}

	if rowsAffected >= 0 {
		attrs = append(attrs, slog.Int64("affected_rows", rowsAffected))
	}
	slog.Debug("Query executed", attrs...)
}
