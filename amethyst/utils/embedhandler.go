package utils

import (
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

// ResponseHandler provides standardized response methods for commands
type ResponseHandler struct{}

var EH = &ResponseHandler{}

func errorPrefix(t ErrorType) string {
	switch t {
	case UserError:
		return "⚠️"
	case NotFoundError:
		return "🔍"
	case PreconditionError:
		return "📌"
	case PermissionError:
		return "🚫"
	case CooldownError:
		return "⏰"
	case PlatformError, ExternalServiceError:
		return "📡"
	default:
		return "❌"
	}
}

func errorColor(t ErrorType) int {
	switch t {
	case UserError, CooldownError, PreconditionError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// ErrorEmbed renders err the way every command failure is shown.
func (h *ResponseHandler) ErrorEmbed(err error) discord.Embed {
	t, message := Classify(err)
	return discord.Embed{
		Description: errorPrefix(t) + " " + message,
		Color:       errorColor(t),
	}
}

// RespondError sends err as an ephemeral embed. When the interaction was
// already acknowledged the error goes out as a followup instead.
func (h *ResponseHandler) RespondError(event *handler.CommandEvent, err error) error {
	msg := discord.MessageCreate{
		Embeds: []discord.Embed{h.ErrorEmbed(err)},
		Flags:  discord.MessageFlagEphemeral,
	}
	if createErr := event.CreateMessage(msg); createErr != nil {
		_, followErr := event.CreateFollowupMessage(msg)
		return followErr
	}
	return nil
}

// CreateSuccessEmbed creates a standard success embed for command events
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.SuccessColor,
		}},
	})
}

// CreateInfoEmbed creates a standard info embed for command events
func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.AmethystColor,
		}},
	})
}

func (h *ResponseHandler) CreateEphemeralSuccess(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: "✅ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

// CreateMessage sends plain content without pinging anyone it mentions.
func (h *ResponseHandler) CreateMessage(event *handler.CommandEvent, content string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content:         content,
		AllowedMentions: &discord.AllowedMentions{},
	})
}
