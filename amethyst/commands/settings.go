package commands

import (
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

const maxAnnouncementLength = 1000

// announcement describes one of the member-event messages a guild can set up.
type announcement struct {
	name string
	kind repositories.AnnouncementKind
	// event finishes "no longer sending ... messages" and similar replies.
	event string
}

var announcements = []announcement{
	{name: "welcome", kind: repositories.WelcomeAnnouncement, event: "welcome"},
	{name: "boost", kind: repositories.BoostAnnouncement, event: "boost"},
}

func announcementCommand(a announcement) discord.SlashCommandCreate {
	return discord.SlashCommandCreate{
		Name:        a.name,
		Description: fmt.Sprintf("Configure %s messages", a.event),
		Options: []discord.ApplicationCommandOption{
			&discord.ApplicationCommandOptionSubCommand{
				Name:        "setchannel",
				Description: fmt.Sprintf("Channel for %s messages; leave empty to stop sending them", a.event),
				Options: []discord.ApplicationCommandOption{
					&discord.ApplicationCommandOptionChannel{Name: "channel", Description: "Target channel", ChannelTypes: textChannels},
				},
			},
			&discord.ApplicationCommandOptionSubCommand{
				Name:        "setmessage",
				Description: fmt.Sprintf("Custom text of %s messages; leave empty to remove it", a.event),
				Options: []discord.ApplicationCommandOption{
					&discord.ApplicationCommandOptionString{Name: "message", Description: "Message text", MaxLength: utils.Ptr(maxAnnouncementLength)},
				},
			},
			&discord.ApplicationCommandOptionSubCommand{
				Name:        "setimage",
				Description: fmt.Sprintf("Image shown in %s messages; leave empty to remove it", a.event),
				Options: []discord.ApplicationCommandOption{
					&discord.ApplicationCommandOptionString{Name: "image_url", Description: "Image link"},
				},
			},
		},
	}
}

var (
	Welcome = announcementCommand(announcements[0])
	Boost   = announcementCommand(announcements[1])
)

var SetLeaveChannel = discord.SlashCommandCreate{
	Name:        "setleavechannel",
	Description: "Channel noting when members leave; leave empty to stop",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionChannel{Name: "channel", Description: "Target channel", ChannelTypes: textChannels},
	},
}

var Settings = discord.SlashCommandCreate{
	Name:        "settings",
	Description: "Your personal preferences",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "command_ping",
			Description: "Whether commands like /slap mention you",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionString{
					Name:        "state",
					Description: "Enable or disable",
					Required:    true,
					Choices: []discord.ApplicationCommandOptionChoiceString{
						{Name: "enable", Value: "enable"},
						{Name: "disable", Value: "disable"},
					},
				},
			},
		},
	},
}

func AnnouncementChannelHandler(b *amethyst.Bot, a announcement) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		channel, ok := e.SlashCommandInteractionData().OptChannel("channel")

		ctx, cancel := queryContext()
		defer cancel()

		var channelID *snowflake.ID
		if ok {
			channelID = &channel.ID
		}
		if err := b.Announcements.SetChannel(ctx, a.kind, guildID(e), channelID); err != nil {
			return err
		}
		if !ok {
			return utils.EH.CreateMessage(e, fmt.Sprintf("No longer sending %s messages!", a.event))
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Now sending %s messages to %s!", a.event, utils.ChannelMention(channel.ID)))
	}
}

func AnnouncementMessageHandler(b *amethyst.Bot, a announcement) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		raw, _ := e.SlashCommandInteractionData().OptString("message")
		message := utils.OptionalText(raw)

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Announcements.SetMessage(ctx, a.kind, guildID(e), message); err != nil {
			return err
		}
		if message == nil {
			return utils.EH.CreateMessage(e, fmt.Sprintf("No longer including a custom message in the %s messages!", a.event))
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Set the custom %s message to: ```%s```", a.event, *message))
	}
}

func AnnouncementImageHandler(b *amethyst.Bot, a announcement) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		raw, _ := e.SlashCommandInteractionData().OptString("image_url")
		imageURL := utils.OptionalText(raw)

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Announcements.SetImage(ctx, a.kind, guildID(e), imageURL); err != nil {
			return err
		}
		if imageURL == nil {
			return utils.EH.CreateMessage(e, fmt.Sprintf("No longer including an image in the %s messages!", a.event))
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Image for the %s messages set to %s", a.event, *imageURL))
	}
}

func SetLeaveChannelHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		channel, ok := e.SlashCommandInteractionData().OptChannel("channel")

		ctx, cancel := queryContext()
		defer cancel()

		var channelID *snowflake.ID
		if ok {
			channelID = &channel.ID
		}
		if err := b.Guilds.SetColumn(ctx, guildID(e), repositories.LeaveChannel, channelID); err != nil {
			return err
		}
		if !ok {
			return utils.EH.CreateMessage(e, "No longer sending a message when a member leaves!")
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Now sending a message when a server member leaves to %s!", utils.ChannelMention(channel.ID)))
	}
}

func CommandPingHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		enabled := e.SlashCommandInteractionData().String("state") == "enable"

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Users.SetCommandPing(ctx, guildID(e), e.User().ID, enabled); err != nil {
			return err
		}
		if enabled {
			return utils.EH.CreateEphemeralSuccess(e, "Commands will now mention you.")
		}
		return utils.EH.CreateEphemeralSuccess(e, "Commands will no longer mention you.")
	}
}
