package commands

import (
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/quotes"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

const quotePreviewLength = 100

var quoteIDOption = &discord.ApplicationCommandOptionInt{
	Name:        "id",
	Description: "Quote number",
	MinValue:    utils.Ptr(1),
}

var AddQuote = discord.SlashCommandCreate{
	Name:        "addquote",
	Description: "Save something a member said",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionUser{Name: "user", Description: "Who said it", Required: true},
		&discord.ApplicationCommandOptionString{
			Name:        "quote",
			Description: "What they said",
			Required:    true,
			MinLength:   utils.Ptr(1),
			MaxLength:   utils.Ptr(config.MaxQuoteLength),
		},
	},
}

var Quote = discord.SlashCommandCreate{
	Name:        "quote",
	Description: "Show a quote; a random one by default",
	Options: []discord.ApplicationCommandOption{
		quoteIDOption,
		&discord.ApplicationCommandOptionString{Name: "search", Description: "Find the quote closest to this text"},
	},
}

var DelQuote = discord.SlashCommandCreate{
	Name:        "delquote",
	Description: "Delete a quote; later quotes move down by one",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionInt{Name: "id", Description: "Quote number", Required: true, MinValue: utils.Ptr(1)},
	},
}

var ListQuotes = discord.SlashCommandCreate{
	Name:        "listquotes",
	Description: "List every quote of the server",
}

var SetQuoteRole = discord.SlashCommandCreate{
	Name:        "setquoterole",
	Description: "Role required to add or delete quotes; leave empty for everyone",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionRole{Name: "role", Description: "Required role"},
	},
}

func quoteError(err error) error {
	switch {
	case errors.Is(err, quotes.ErrNotFound):
		return utils.NewNotFoundError("Unable to find that quote!")
	case errors.Is(err, quotes.ErrEmpty):
		return utils.NewNotFoundError("No quotes have been saved in this server yet!")
	case errors.Is(err, quotes.ErrTooLong):
		return utils.NewUserError("Quotes are limited to %d characters!", quotes.MaxLength)
	}
	return err
}

func quoteEmbed(q *models.Quote) discord.Embed {
	return discord.Embed{
		Title:       fmt.Sprintf("Quote #%d by %s", q.QuoteID, q.SayerDisplayName),
		Description: q.Quote,
		Color:       config.AmethystColor,
		Footer:      &discord.EmbedFooter{Text: fmt.Sprintf("Added by %s on %s", q.AdderDisplayName, utils.FormatDate(q.Timestamp))},
	}
}

func quoteLines(list []*models.Quote) []string {
	lines := make([]string, len(list))
	for i, q := range list {
		lines[i] = fmt.Sprintf("**#%d** \"%s\" - %s", q.QuoteID, utils.Truncate(q.Quote, quotePreviewLength), q.SayerDisplayName)
	}
	return lines
}

func AddQuoteHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		text := utils.OptionalText(data.String("quote"))
		if text == nil {
			return utils.NewUserError("The quote can't be empty!")
		}
		gid := guildID(e)
		sayer := optionProfile(data, "user")
		adder := invoker(e)

		ctx, cancel := queryContext()
		defer cancel()

		sayerName, err := ensureTarget(ctx, b, gid, sayer)
		if err != nil {
			return err
		}
		q, err := b.Quotes.Add(ctx, gid,
			quotes.Author{ID: adder.UserID, DisplayName: identity.Resolve(adder)},
			quotes.Author{ID: sayer.UserID, DisplayName: sayerName},
			*text)
		if err != nil {
			return quoteError(err)
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("Saved quote #%d!", q.QuoteID),
			Embeds:  []discord.Embed{quoteEmbed(q)},
		})
	}
}

func QuoteHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		gid := guildID(e)

		ctx, cancel := queryContext()
		defer cancel()

		var q *models.Quote
		var err error
		if id, ok := data.OptInt("id"); ok {
			q, err = b.Quotes.Get(ctx, gid, id)
		} else if text, ok := data.OptString("search"); ok && utils.OptionalText(text) != nil {
			var found []*models.Quote
			if found, err = b.Quotes.Search(ctx, gid, text, 1); err == nil {
				q = found[0]
			}
		} else {
			q, err = b.Quotes.Random(ctx, gid)
		}
		if err != nil {
			return quoteError(err)
		}
		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{quoteEmbed(q)}})
	}
}

func DelQuoteHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		id := e.SlashCommandInteractionData().Int("id")

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Quotes.Delete(ctx, guildID(e), id); err != nil {
			if errors.Is(err, quotes.ErrNotFound) {
				return utils.NewNotFoundError("No quote saved with that ID!")
			}
			return err
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("Successfully deleted quote #%d!", id))
	}
}

func ListQuotesHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		list, err := b.Quotes.List(ctx, guildID(e))
		if err != nil {
			return quoteError(err)
		}
		return utils.Paginate(b.Paginator, e, utils.ListPage{
			Title:   "Quotes",
			Color:   config.AmethystColor,
			PerPage: config.QuotesPerPage,
			Lines:   quoteLines(list),
		})
	}
}

// setRequiredRole stores or clears a role requirement and confirms it.
func setRequiredRole(b *amethyst.Bot, column repositories.SettingsColumn, feature string) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		role, ok := e.SlashCommandInteractionData().OptRole("role")

		ctx, cancel := queryContext()
		defer cancel()

		var roleID *snowflake.ID
		if ok {
			roleID = &role.ID
		}
		if err := b.Guilds.SetColumn(ctx, guildID(e), column, roleID); err != nil {
			return err
		}
		if !ok {
			return utils.EH.CreateMessage(e, fmt.Sprintf("Anyone can now use the %s commands.", feature))
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Now requiring the %s role to use %s commands.", role.Name, feature))
	}
}

func SetQuoteRoleHandler(b *amethyst.Bot) handler.CommandHandler {
	return setRequiredRole(b, repositories.QuotesRole, "quote")
}
