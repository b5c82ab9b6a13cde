package commands

import (
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
)

func botGifChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, len(media.BotGifKinds))
	for i, g := range media.BotGifKinds {
		choices[i] = discord.ApplicationCommandOptionChoiceString{Name: string(g), Value: string(g)}
	}
	return choices
}

// SetBotGif is hidden from members without Administrator; the owner gate
// still applies to those who can see it.
var SetBotGif = discord.SlashCommandCreate{
	Name:                     "set_bot_gif",
	Description:              "Set the url of a gif the bot shows in every server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionAdministrator),
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionString{
			Name:        "bot_gif",
			Description: "The type of bot gif to set",
			Required:    true,
			Choices:     botGifChoices(),
		},
		&discord.ApplicationCommandOptionString{Name: "url", Description: "Gif url", Required: true},
	},
}

func SetBotGifHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		gif, err := media.ParseBotGif(data.String("bot_gif"))
		if err != nil {
			return utils.Wrap(utils.UserError, err, "Unknown bot gif!")
		}
		url := data.String("url")

		ctx, cancel := queryContext()
		defer cancel()

		err = b.BotGifs.Set(ctx, gif, url)
		if errors.Is(err, media.ErrInvalidURL) {
			return utils.NewUserError("That doesn't look like a gif link!")
		}
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("Updated %s_gif with %s", gif, url),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}
