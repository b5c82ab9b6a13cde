package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/services"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

const (
	gifContentType = "image/gif"
	maxChoices     = 25
)

func gifTypeOption() *discord.ApplicationCommandOptionString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, len(media.GifTypes))
	for i, t := range media.GifTypes {
		choices[i] = discord.ApplicationCommandOptionChoiceString{Name: string(t), Value: string(t)}
	}
	return &discord.ApplicationCommandOptionString{
		Name:        "type",
		Description: "Gif category",
		Required:    true,
		Choices:     choices,
	}
}

var AddGif = discord.SlashCommandCreate{
	Name:        "addgif",
	Description: "Register a custom gif",
	Options: []discord.ApplicationCommandOption{
		gifTypeOption(),
		&discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Name to find the gif by",
			Required:    true,
			MaxLength:   utils.Ptr(config.MaxGifNameLength),
		},
		&discord.ApplicationCommandOptionString{Name: "url", Description: "Link to the gif"},
		&discord.ApplicationCommandOptionAttachment{Name: "file", Description: "Gif file to upload"},
	},
}

var DelGif = discord.SlashCommandCreate{
	Name:        "delgif",
	Description: "Delete a custom gif; later gifs move down by one",
	Options: []discord.ApplicationCommandOption{
		gifTypeOption(),
		&discord.ApplicationCommandOptionString{
			Name:         "id",
			Description:  "Gif number or name",
			Required:     true,
			Autocomplete: true,
		},
	},
}

var ListGifs = discord.SlashCommandCreate{
	Name:        "listgifs",
	Description: "List the custom gifs of a category",
	Options:     []discord.ApplicationCommandOption{gifTypeOption()},
}

var SetGifRole = discord.SlashCommandCreate{
	Name:        "setgifrole",
	Description: "Role required to manage custom gifs; leave empty for everyone",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionRole{Name: "role", Description: "Required role"},
	},
}

func gifError(err error, gifType media.GifType) error {
	switch {
	case errors.Is(err, media.ErrInvalidType):
		return utils.NewUserError("That is not a gif category!")
	case errors.Is(err, media.ErrInvalidName):
		return utils.NewUserError("Gif names must be 1-%d characters long!", media.MaxNameLength)
	case errors.Is(err, media.ErrOverLimit):
		return utils.NewPreconditionError("\"%s\" already holds %d gifs! Delete one first.", gifType, media.MaxPerType)
	case errors.Is(err, media.ErrNotFound):
		return utils.NewNotFoundError("No GIF has been registered with that ID under \"%s\"!", gifType)
	case errors.Is(err, services.ErrTooLarge):
		return utils.Wrap(utils.UserError, err, fmt.Sprintf("Gifs can be at most %d MB!", config.MaxGifBytes/(1024*1024)))
	case errors.Is(err, services.ErrDownload):
		return utils.Wrap(utils.ExternalServiceError, err, "Couldn't download that gif right now. Please try again.")
	}
	return err
}

func isGif(a discord.Attachment) bool {
	return a.ContentType != nil && strings.HasPrefix(*a.ContentType, gifContentType)
}

func AddGifHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		gifType, err := media.ParseGifType(data.String("type"))
		if err != nil {
			return gifError(err, "")
		}
		name := data.String("name")
		gid := guildID(e)

		link, hasLink := data.OptString("url")
		file, hasFile := data.OptAttachment("file")
		switch {
		case hasLink == hasFile:
			return utils.NewUserError("Give either a url or a file, not both!")
		case hasFile && !isGif(file):
			return utils.NewUserError("The file must be a gif!")
		}

		if err = e.DeferCreateMessage(false); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		defer cancel()

		var entry media.Entry
		if hasFile {
			fetch := func(ctx context.Context) ([]byte, error) { return b.Downloader.Fetch(ctx, file.URL) }
			entry, err = b.Media.AddFile(ctx, gid, gifType, name, fetch, file.URL)
		} else {
			entry, err = b.Media.Add(ctx, gid, gifType, name, strings.TrimSpace(link))
		}
		if err != nil {
			return gifError(err, gifType)
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("Registered GIF #%d \"%s\" for \"%s\"! %s", entry.ID, entry.Name, gifType, entry.URL)),
		})
		return err
	}
}

// parseGifID accepts a bare number or an autocomplete value.
func parseGifID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	return id, err == nil && id > 0
}

func DelGifHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		gifType, err := media.ParseGifType(data.String("type"))
		if err != nil {
			return gifError(err, "")
		}
		id, ok := parseGifID(data.String("id"))
		if !ok {
			return gifError(media.ErrNotFound, gifType)
		}

		ctx, cancel := queryContext()
		defer cancel()

		if err = b.Media.Delete(ctx, guildID(e), gifType, id); err != nil {
			return gifError(err, gifType)
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Deleted GIF #%d from \"%s\"!", id, gifType))
	}
}

func gifChoices(entries []media.Entry) []discord.AutocompleteChoice {
	choices := make([]discord.AutocompleteChoice, 0, min(len(entries), maxChoices))
	for _, entry := range entries[:min(len(entries), maxChoices)] {
		choices = append(choices, discord.AutocompleteChoiceString{
			Name:  fmt.Sprintf("#%d %s", entry.ID, entry.Name),
			Value: strconv.Itoa(entry.ID),
		})
	}
	return choices
}

func DelGifAutocompleteHandler(b *amethyst.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		focused := e.Data.Focused()
		if focused.Name != "id" || e.GuildID() == nil {
			return e.AutocompleteResult(nil)
		}
		var query string
		if err := json.Unmarshal(focused.Value, &query); err != nil {
			return e.AutocompleteResult(nil)
		}
		gifType, err := media.ParseGifType(e.Data.String("type"))
		if err != nil {
			return e.AutocompleteResult(nil)
		}

		ctx, cancel := queryContext()
		defer cancel()

		entries, err := b.Media.List(ctx, *e.GuildID(), gifType)
		if err != nil {
			return err
		}
		return e.AutocompleteResult(gifChoices(media.Rank(entries, query)))
	}
}

func gifLines(entries []media.Entry) []string {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("**%d.** %s\n%s\n", entry.ID, entry.Name, entry.URL)
	}
	return lines
}

func ListGifsHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		gifType, err := media.ParseGifType(e.SlashCommandInteractionData().String("type"))
		if err != nil {
			return gifError(err, "")
		}

		ctx, cancel := queryContext()
		defer cancel()

		entries, err := b.Media.List(ctx, guildID(e), gifType)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return utils.NewNotFoundError("No GIFs were found under \"%s\"", gifType)
		}
		return utils.Paginate(b.Paginator, e, utils.ListPage{
			Title:   fmt.Sprintf("Custom GIFs for \"%s\"", gifType),
			Color:   config.AmethystColor,
			PerPage: config.GifsPerPage,
			Lines:   gifLines(entries),
		})
	}
}

func SetGifRoleHandler(b *amethyst.Bot) handler.CommandHandler {
	return setRequiredRole(b, repositories.GifsRole, "custom gif")
}
