package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/mtg"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
)

const (
	mtgGame = "mtg"

	cardLegalities = "legalities"
	cardFlip       = "flip"
)

var MTG = discord.SlashCommandCreate{
	Name:        "mtg",
	Description: "Magic: The Gathering",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "card",
			Description: "Search for a specific MTG card",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionString{Name: "name", Description: "The full or partial name of the card"},
				&discord.ApplicationCommandOptionString{Name: "set", Description: "The set code of the card", MaxLength: utils.Ptr(5)},
				&discord.ApplicationCommandOptionInt{
					Name:        "collector_number",
					Description: "The collector number of the card",
					MinValue:    utils.Ptr(1),
					MaxValue:    utils.Ptr(9999),
				},
			},
		},
	},
}

var queryProblems = map[error]string{
	mtg.ErrMissingName:      "You must include at least the name parameter!",
	mtg.ErrMissingNameOrNum: "You must include the name of the card or the collector number!",
	mtg.ErrMissingSet:       "You must include the set code when specifying a collector number!",
}

// cardLookupError turns a failed lookup into what the caller is shown.
func cardLookupError(q mtg.Query, err error) error {
	for target, msg := range queryProblems {
		if errors.Is(err, target) {
			return utils.Wrap(utils.UserError, err, msg)
		}
	}
	var apiErr *mtg.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Details
		if q.Set != "" {
			msg += fmt.Sprintf(" in the set \"%s\"", q.Set)
		}
		return utils.Wrap(utils.NotFoundError, err, msg)
	}
	return utils.Wrap(utils.ExternalServiceError, err, "There was an error processing your request!")
}

// cardView is what the card message currently shows.
type cardView struct {
	face       int
	legalities bool
}

// press applies a button to v. Flipping always returns to the card face.
func (v cardView) press(value string, faces int) (cardView, bool) {
	switch value {
	case cardLegalities:
		v.legalities = !v.legalities
	case cardFlip:
		if faces < 2 {
			return v, false
		}
		v.face = (v.face + 1) % faces
		v.legalities = false
	default:
		return v, false
	}
	return v, true
}

func cardEmbed(card *mtg.Card, views []mtg.View, v cardView) discord.Embed {
	if v.legalities {
		return discord.Embed{
			Title:       card.Name,
			URL:         card.ScryfallURI,
			Description: mtg.Legalities(card),
			Color:       config.CardColor,
		}
	}

	face := views[v.face]
	embed := discord.Embed{
		Title:       face.Name,
		URL:         card.ScryfallURI,
		Description: mtg.Description(card, face),
		Color:       config.CardColor,
	}
	for _, f := range []struct {
		name  string
		value *string
	}{{"Power:", face.Power}, {"Toughness:", face.Toughness}, {"Loyalty:", face.Loyalty}} {
		if f.value != nil {
			embed.Fields = append(embed.Fields, discord.EmbedField{Name: f.name, Value: *f.value, Inline: utils.Ptr(true)})
		}
	}
	if face.ImageURL != "" {
		embed.Image = &discord.EmbedResource{URL: face.ImageURL}
	}
	return embed
}

func cardButtons(col *handlers.Collector, v cardView, faces int) []discord.ContainerComponent {
	label := "Legalities"
	if v.legalities {
		label = "Back"
	}
	buttons := []discord.InteractiveComponent{discord.NewSecondaryButton(label, col.CustomID(cardLegalities))}
	if faces > 1 {
		buttons = append(buttons, discord.NewSecondaryButton("Flip", col.CustomID(cardFlip)))
	}
	return []discord.ContainerComponent{discord.NewActionRow(buttons...)}
}

func MTGCardHandler(b *amethyst.Bot, c *handlers.Collectors) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		q := mtg.Query{
			Name:            data.String("name"),
			Set:             data.String("set"),
			CollectorNumber: data.Int("collector_number"),
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
		card, err := b.Scryfall.Card(ctx, q)
		cancel()
		if err != nil {
			return cardLookupError(q, err)
		}

		views := card.Views()
		col := c.Open(mtgGame, e.ID())
		defer col.Close()

		view := cardView{}
		if err = e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{cardEmbed(card, views, view)},
			Components: cardButtons(col, view, len(views)),
		}); err != nil {
			return err
		}

		viewCtx, cancelView := context.WithTimeout(context.Background(), config.CardViewTimeout)
		defer cancelView()
		for {
			press, ok := col.Next(viewCtx)
			if !ok {
				break
			}
			next, changed := view.press(press.Value, len(views))
			if !changed {
				continue
			}
			view = next
			buttons := cardButtons(col, view, len(views))
			if _, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Embeds:     &[]discord.Embed{cardEmbed(card, views, view)},
				Components: &buttons,
			}); err != nil {
				return err
			}
		}

		ctx, cancel = queryContext()
		defer cancel()
		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Components: clearComponents}, rest.WithCtx(ctx))
		return err
	}
}
