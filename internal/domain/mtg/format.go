package mtg

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// View is one printable face of a card.
type View struct {
	Name       string
	ManaCost   *string
	TypeLine   string
	OracleText *string
	FlavorText *string
	Power      *string
	Toughness  *string
	Loyalty    *string
	ImageURL   string
}

func imageURL(c *Card, face map[string]string) string {
	if c.ImageStatus == "missing" {
		return ""
	}
	if c.ImageURIs != nil {
		return c.ImageURIs["border_crop"]
	}
	return face["border_crop"]
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Views returns one view per face; double-faced cards have two.
func (c *Card) Views() []View {
	if len(c.CardFaces) == 0 {
		return []View{{
			Name:       c.Name,
			ManaCost:   c.ManaCost,
			TypeLine:   c.TypeLine,
			OracleText: c.OracleText,
			FlavorText: c.FlavorText,
			Power:      c.Power,
			Toughness:  c.Toughness,
			Loyalty:    c.Loyalty,
			ImageURL:   imageURL(c, nil),
		}}
	}

	views := make([]View, len(c.CardFaces))
	for i, f := range c.CardFaces {
		cost := f.ManaCost
		views[i] = View{
			Name:       f.Name,
			ManaCost:   &cost,
			TypeLine:   deref(f.TypeLine),
			OracleText: f.OracleText,
			FlavorText: f.FlavorText,
			Power:      f.Power,
			Toughness:  f.Toughness,
			Loyalty:    f.Loyalty,
			ImageURL:   imageURL(c, f.ImageURIs),
		}
	}
	return views
}

// Symbols renders mana symbols like {2}{U} as (2)(U), which Discord leaves alone.
func Symbols(s string) string {
	return strings.NewReplacer("{", "(", "}", ")").Replace(s)
}

// Description is the body of a card face embed.
func Description(c *Card, v View) string {
	var sb strings.Builder
	if v.ManaCost != nil {
		cost := Symbols(*v.ManaCost)
		if cost == "" {
			cost = "None"
		}
		fmt.Fprintf(&sb, "**Cost:** %s\n", cost)
	}
	fmt.Fprintf(&sb, "**Set:** %s - *%s*\n", strings.ToUpper(c.Set), c.SetName)
	fmt.Fprintf(&sb, "**Available:** %s\n\n", strings.Join(c.Games, ", "))
	fmt.Fprintf(&sb, "*%s*\n", v.TypeLine)
	if v.OracleText != nil {
		sb.WriteString("\n" + Symbols(*v.OracleText))
	}
	if v.FlavorText != nil {
		sb.WriteString("\n\n" + *v.FlavorText)
	}
	return sb.String()
}

var formatNames = strings.NewReplacer("paupercommander", "Pauper Commander", "standardbrawl", "Standard Brawl")

// FormatName turns a Scryfall format key into a heading.
func FormatName(format string) string {
	format = formatNames.Replace(format)
	r, size := utf8.DecodeRuneInString(format)
	if r == utf8.RuneError {
		return format
	}
	return string(unicode.ToUpper(r)) + format[size:]
}

var legalityIcons = map[string]string{
	"legal":      ":white_check_mark:",
	"not_legal":  ":x:",
	"banned":     ":prohibited:",
	"restricted": ":grey_exclamation:",
}

const legalityKey = "**Key:**\n:white_check_mark: - *Legal*\n:x: - *Not Legal*\n:prohibited: - *Banned*\n:grey_exclamation: - *Restricted*\n\n"

// legalityGroup is how many formats are listed before a blank line.
const legalityGroup = 11

// Legalities lists every format in name order with its legality icon.
func Legalities(c *Card) string {
	formats := make([]string, 0, len(c.Legalities))
	for f := range c.Legalities {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	var sb strings.Builder
	sb.WriteString(legalityKey)
	for i, f := range formats {
		icon, ok := legalityIcons[c.Legalities[f]]
		if !ok {
			icon = c.Legalities[f]
		}
		fmt.Fprintf(&sb, "**%s:** %s\n", FormatName(f), icon)
		if (i+1)%legalityGroup == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
