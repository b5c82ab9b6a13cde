package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/stretchr/testify/assert"
)

func Test_Classify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantType    ErrorType
		wantMessage string
	}{
		{
			name:        "user error",
			err:         NewUserError("Month must be between %d and %d", 1, 12),
			wantType:    UserError,
			wantMessage: "Month must be between 1 and 12",
		},
		{
			name:        "wrapped precondition",
			err:         fmt.Errorf("bday add: %w", NewPreconditionError("Set a channel first")),
			wantType:    PreconditionError,
			wantMessage: "Set a channel first",
		},
		{
			name:        "store failure keeps message",
			err:         Wrap(SystemError, errors.New("conn reset"), "Could not save the quote."),
			wantType:    SystemError,
			wantMessage: "Could not save the quote.",
		},
		{
			name:        "deadline",
			err:         fmt.Errorf("download: %w", context.DeadlineExceeded),
			wantType:    ExternalServiceError,
			wantMessage: "That took too long. Please try again.",
		},
		{
			name:        "unknown",
			err:         errors.New("pq: relation does not exist"),
			wantType:    SystemError,
			wantMessage: GenericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotMessage := Classify(tt.err)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantMessage, gotMessage)
		})
	}
}

func Test_CommandError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(PlatformError, cause, "Could not add the role.")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Could not add the role.: boom", err.Error())
	assert.Nil(t, Wrap(UserError, nil, "unused"))
}

func Test_ErrorType_Expected(t *testing.T) {
	assert.True(t, UserError.Expected())
	assert.True(t, CooldownError.Expected())
	assert.False(t, SystemError.Expected())
	assert.False(t, ExternalServiceError.Expected())
}

func Test_ErrorEmbed(t *testing.T) {
	embed := EH.ErrorEmbed(NewCooldownError("Slow down! Try again in 3s."))
	assert.Equal(t, "⏰ Slow down! Try again in 3s.", embed.Description)
	assert.Equal(t, config.WarningColor, embed.Color)

	embed = EH.ErrorEmbed(errors.New("hidden detail"))
	assert.Equal(t, "❌ "+GenericErrorMessage, embed.Description)
	assert.Equal(t, config.ErrorColor, embed.Color)
}

func Test_Paging(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name    string
		page    int
		perPage int
		want    []string
	}{
		{name: "first", page: 0, perPage: 3, want: []string{"a", "b", "c"}},
		{name: "last partial", page: 2, perPage: 3, want: []string{"g"}},
		{name: "past end", page: 3, perPage: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageLines(lines, tt.page, tt.perPage))
		})
	}

	assert.Equal(t, 3, PageCount(len(lines), 3))
	assert.Equal(t, 1, PageCount(0, 3))
	assert.Equal(t, 1, PageCount(3, 3))
}

func Test_Truncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "äö…", Truncate("äöüß", 3))
}

func Test_OptionalText(t *testing.T) {
	assert.Nil(t, OptionalText("   "))
	assert.Equal(t, "hi", *OptionalText(" hi "))
}
