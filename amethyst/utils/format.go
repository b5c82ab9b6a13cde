package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

func Ptr[T any](v T) *T {
	return &v
}

func UserMention(id snowflake.ID) string {
	return fmt.Sprintf("<@%d>", id)
}

func ChannelMention(id snowflake.ID) string {
	return fmt.Sprintf("<#%d>", id)
}

func RoleMention(id snowflake.ID) string {
	return fmt.Sprintf("<@&%d>", id)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// OptionalText trims s and maps an empty result to nil.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Truncate cuts s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
