package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
)

// System logs a process lifecycle message.
func System(msg string, attrs ...any) {
	slog.Info(msg, append([]any{slog.String("type", "sys")}, attrs...)...)
}

// EventError logs a gateway event handler failure. Handling of later events
// is unaffected.
func EventError(msg string, err error, guildID snowflake.ID, attrs ...any) {
	slog.Error(msg, append([]any{
		slog.String("type", "event"),
		slog.String("guild_id", guildID.String()),
		slog.Any("error", err),
	}, attrs...)...)
}

var exit = os.Exit

// Fatal logs an unrecoverable startup failure and exits with a non-zero code.
func Fatal(msg, component string, err error) {
	slog.Error(msg,
		slog.String("type", "sys"),
		slog.Any("error", err),
		slog.String("error_details", fmt.Sprintf("%+v", err)),
		slog.String("component", component),
		slog.String("status", "failed"),
	)
	exit(-1)
}
