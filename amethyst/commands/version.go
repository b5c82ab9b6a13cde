package commands

import (
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "Show the running Amethyst build",
}

func VersionHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("Version: %s\nCommit: %s", b.Version, b.Commit),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}
