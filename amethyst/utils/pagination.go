package utils

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

// ListPage describes a line-per-entry list split into fixed-size pages.
type ListPage struct {
	Title   string
	Color   int
	PerPage int
	Lines   []string
}

// PageCount is the number of pages needed for n lines, at least one.
func PageCount(n, perPage int) int {
	if perPage <= 0 || n == 0 {
		return 1
	}
	return (n + perPage - 1) / perPage
}

// PageLines returns the lines shown on page (0-based).
func PageLines(lines []string, page, perPage int) []string {
	start := page * perPage
	if start >= len(lines) || start < 0 {
		return nil
	}
	return lines[start:min(start+perPage, len(lines))]
}

func (l ListPage) render(page int, embed *discord.EmbedBuilder) {
	pages := PageCount(len(l.Lines), l.PerPage)
	embed.
		SetTitle(l.Title).
		SetDescription(strings.Join(PageLines(l.Lines, page, l.PerPage), "\n")).
		SetColor(l.Color).
		SetFooter(fmt.Sprintf("Page %d/%d", page+1, pages), "")
}

// Paginate answers the command with list, adding page buttons when it spans
// more than one page.
func Paginate(m *paginator.Manager, e *handler.CommandEvent, list ListPage) error {
	pages := PageCount(len(list.Lines), list.PerPage)
	if pages == 1 {
		embed := discord.NewEmbedBuilder()
		list.render(0, embed)
		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{embed.Build()}})
	}

	return m.Create(e.Respond, paginator.Pages{
		ID:         e.ID().String(),
		Creator:    e.User().ID,
		PageFunc:   list.render,
		Pages:      pages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}, false)
}
