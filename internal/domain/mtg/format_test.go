package mtg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func Test_Card_Views(t *testing.T) {
	single := &Card{
		Name:        "Opt",
		ManaCost:    ptr("{U}"),
		TypeLine:    "Instant",
		ImageStatus: "highres_scan",
		ImageURIs:   map[string]string{"border_crop": "https://img/opt.jpg"},
	}
	views := single.Views()
	require.Len(t, views, 1)
	assert.Equal(t, "Opt", views[0].Name)
	assert.Equal(t, "https://img/opt.jpg", views[0].ImageURL)

	double := &Card{
		Name:        "Delver of Secrets // Insectile Aberration",
		ImageStatus: "highres_scan",
		CardFaces: []Face{
			{Name: "Delver of Secrets", ManaCost: "{U}", TypeLine: ptr("Creature — Human Wizard"), ImageURIs: map[string]string{"border_crop": "https://img/front.jpg"}},
			{Name: "Insectile Aberration", TypeLine: ptr("Creature — Human Insect"), Power: ptr("3"), ImageURIs: map[string]string{"border_crop": "https://img/back.jpg"}},
		},
	}
	views = double.Views()
	require.Len(t, views, 2)
	assert.Equal(t, "https://img/front.jpg", views[0].ImageURL)
	assert.Equal(t, "https://img/back.jpg", views[1].ImageURL)
	assert.Equal(t, "3", *views[1].Power)
	assert.Equal(t, "", *views[1].ManaCost)

	double.ImageStatus = "missing"
	assert.Empty(t, double.Views()[0].ImageURL)
}

func Test_Description(t *testing.T) {
	c := &Card{Set: "xln", SetName: "Ixalan", Games: []string{"paper", "arena"}}

	got := Description(c, View{
		ManaCost:   ptr("{1}{U}"),
		TypeLine:   "Instant",
		OracleText: ptr("Counter target spell unless its controller pays {3}."),
		FlavorText: ptr("No."),
	})
	assert.Equal(t, "**Cost:** (1)(U)\n**Set:** XLN - *Ixalan*\n**Available:** paper, arena\n\n*Instant*\n"+
		"\nCounter target spell unless its controller pays (3).\n\nNo.", got)

	land := Description(c, View{ManaCost: ptr(""), TypeLine: "Land"})
	assert.True(t, strings.HasPrefix(land, "**Cost:** None\n"), land)

	noCost := Description(c, View{TypeLine: "Land"})
	assert.True(t, strings.HasPrefix(noCost, "**Set:**"), noCost)
}

func Test_FormatName(t *testing.T) {
	assert.Equal(t, "Pauper Commander", FormatName("paupercommander"))
	assert.Equal(t, "Standard Brawl", FormatName("standardbrawl"))
	assert.Equal(t, "Modern", FormatName("modern"))
	assert.Equal(t, "", FormatName(""))
}

func Test_Legalities(t *testing.T) {
	formats := map[string]string{}
	for _, f := range []string{"alchemy", "brawl", "commander", "duel", "explorer", "future", "gladiator",
		"historic", "legacy", "modern", "oathbreaker", "pauper"} {
		formats[f] = "legal"
	}
	formats["pauper"] = "banned"

	got := Legalities(&Card{Legalities: formats})
	assert.True(t, strings.HasPrefix(got, legalityKey))
	assert.Contains(t, got, "**Alchemy:** :white_check_mark:\n")
	assert.Contains(t, got, "**Oathbreaker:** :white_check_mark:\n\n**Pauper:** :prohibited:\n")
}
