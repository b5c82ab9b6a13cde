package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/mtg"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cardView_press(t *testing.T) {
	v := cardView{}

	v, changed := v.press(cardLegalities, 1)
	assert.True(t, changed)
	assert.Equal(t, cardView{legalities: true}, v)

	_, changed = v.press(cardFlip, 1)
	assert.False(t, changed, "single faced cards do not flip")

	v, changed = v.press(cardFlip, 2)
	assert.True(t, changed)
	assert.Equal(t, cardView{face: 1}, v, "flipping leaves the legalities page")

	v, _ = v.press(cardFlip, 2)
	assert.Equal(t, 0, v.face)

	_, changed = v.press("bogus", 2)
	assert.False(t, changed)
}

func Test_cardEmbed(t *testing.T) {
	power, toughness := "3", "2"
	card := &mtg.Card{
		Name:        "Delver of Secrets // Insectile Aberration",
		ScryfallURI: "https://scryfall.com/card/isd/51",
		Set:         "isd",
		SetName:     "Innistrad",
		Legalities:  map[string]string{"legacy": "legal"},
	}
	views := []mtg.View{
		{Name: "Delver of Secrets", TypeLine: "Creature", ImageURL: "https://img/front.jpg"},
		{Name: "Insectile Aberration", TypeLine: "Creature", Power: &power, Toughness: &toughness},
	}

	front := cardEmbed(card, views, cardView{})
	assert.Equal(t, "Delver of Secrets", front.Title)
	assert.Equal(t, card.ScryfallURI, front.URL)
	require.NotNil(t, front.Image)
	assert.Equal(t, "https://img/front.jpg", front.Image.URL)
	assert.Empty(t, front.Fields)

	back := cardEmbed(card, views, cardView{face: 1})
	assert.Nil(t, back.Image)
	require.Len(t, back.Fields, 2)
	assert.Equal(t, "Power:", back.Fields[0].Name)
	assert.Equal(t, "2", back.Fields[1].Value)

	legal := cardEmbed(card, views, cardView{face: 1, legalities: true})
	assert.Equal(t, card.Name, legal.Title)
	assert.Contains(t, legal.Description, "**Legacy:** :white_check_mark:")
}

func Test_cardButtons(t *testing.T) {
	col := handlers.NewCollectors(mtgGame).Open(mtgGame, snowflake.ID(5))
	defer col.Close()

	labels := func(rows []discord.ContainerComponent) []string {
		var out []string
		for _, c := range rows[0].(discord.ActionRowComponent).Components() {
			out = append(out, c.(discord.ButtonComponent).Label)
		}
		return out
	}

	assert.Equal(t, []string{"Legalities"}, labels(cardButtons(col, cardView{}, 1)))
	assert.Equal(t, []string{"Back", "Flip"}, labels(cardButtons(col, cardView{legalities: true}, 2)))
}

func Test_cardLookupError(t *testing.T) {
	notFound := &mtg.APIError{Status: 404, Code: "not_found", Details: "No cards found matching \"zzz\""}

	tests := []struct {
		name     string
		q        mtg.Query
		err      error
		wantType utils.ErrorType
		wantMsg  string
	}{
		{
			name:     "missing name",
			err:      mtg.ErrMissingName,
			wantType: utils.UserError,
			wantMsg:  "You must include at least the name parameter!",
		},
		{
			name:     "number without set",
			err:      mtg.ErrMissingSet,
			wantType: utils.UserError,
			wantMsg:  "You must include the set code when specifying a collector number!",
		},
		{
			name:     "unknown card",
			q:        mtg.Query{Name: "zzz"},
			err:      notFound,
			wantType: utils.NotFoundError,
			wantMsg:  notFound.Details,
		},
		{
			name:     "unknown card in set",
			q:        mtg.Query{Name: "zzz", Set: "neo"},
			err:      notFound,
			wantType: utils.NotFoundError,
			wantMsg:  notFound.Details + " in the set \"neo\"",
		},
		{
			name:     "scryfall down",
			err:      fmt.Errorf("%w: unexpected status 502", mtg.ErrUnavailable),
			wantType: utils.ExternalServiceError,
			wantMsg:  "There was an error processing your request!",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			wantType: utils.ExternalServiceError,
			wantMsg:  "There was an error processing your request!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, msg := utils.Classify(cardLookupError(tt.q, tt.err))
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func Test_botGifChoices(t *testing.T) {
	choices := botGifChoices()
	require.Len(t, choices, 3)
	assert.Equal(t, "roulette_fire", choices[2].Value)
}
