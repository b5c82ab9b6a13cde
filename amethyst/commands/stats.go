package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/stats"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

const (
	statsGame = "stats"
	vctopGame = "vctop"

	pagePrev = "prev"
	pageNext = "next"
	toggle   = "toggle"
)

var Stats = discord.SlashCommandCreate{
	Name:        "stats",
	Description: "Show a member's stats",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionUser{Name: "user", Description: "Whose stats to show; yours by default"},
	},
}

var ServerStats = discord.SlashCommandCreate{
	Name:        "serverstats",
	Description: "Show the stats of the whole server",
}

var VCTracker = discord.SlashCommandCreate{
	Name:        "vctracker",
	Description: "Voice time tracking",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "ignorechannel",
			Description: "Stop counting time spent in a voice channel; leave empty to count everything",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionChannel{
					Name:         "channel",
					Description:  "Voice channel to ignore",
					ChannelTypes: []discord.ChannelType{discord.ChannelTypeGuildVoice, discord.ChannelTypeGuildStageVoice},
				},
			},
		},
	},
}

var VCTop = discord.SlashCommandCreate{
	Name:        "vctop",
	Description: "Top 10 members by time spent in voice",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionString{
			Name:        "type",
			Description: "Timeframe",
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "All time", Value: string(stats.AllTime)},
				{Name: "Monthly", Value: string(stats.Monthly)},
			},
		},
	},
}

func pageButtons(col *handlers.Collector) []discord.ContainerComponent {
	return []discord.ContainerComponent{discord.NewActionRow(
		discord.NewSecondaryButton("Prev", col.CustomID(pagePrev)),
		discord.NewSecondaryButton("Next", col.CustomID(pageNext)),
	)}
}

// turnPage moves through n pages, wrapping at both ends.
func turnPage(page, n int, value string) int {
	switch value {
	case pagePrev:
		return (page - 1 + n) % n
	case pageNext:
		return (page + 1) % n
	}
	return page
}

func statLines(pairs ...any) string {
	var sb strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			sb.WriteString("\n")
			continue
		}
		fmt.Fprintf(&sb, "**%s:** %v\n", pairs[i], pairs[i+1])
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// statsPages renders the General, Misc and Minigames views.
func statsPages(name, avatarURL string, s *stats.UserStats) []discord.Embed {
	u := s.User
	pages := []discord.Embed{
		{
			Title: name + "'s Stats",
			Description: statLines(
				"Quotes added", s.Quotes.Added,
				"Quotes said", s.Quotes.Said,
				"", nil,
				"Time spent in VC", stats.FormatDuration(u.VCTrackTotalTime),
				"Time in VC this month", stats.FormatDuration(u.VCTrackMonthlyTime),
			),
		},
		{
			Title: name + "'s Stats (Misc.)",
			Description: statLines(
				"Cookies sent", u.CookieSent,
				"Cookies received", u.CookieReceived,
				"Cakes sent", u.CakeSent,
				"Cakes received", u.CakeReceived,
				"GLaDOS cakes", u.CakeGlados,
				"Slaps sent", u.SlapSent,
				"Slaps received", u.SlapReceived,
				"Tea sent", u.TeaSent,
				"Tea received", u.TeaReceived,
				"Hugs sent", u.HugSent,
				"Hugs received", u.HugReceived,
			),
		},
		{
			Title: name + "'s Stats (Minigames)",
			Description: statLines(
				"Bombs sent", u.BombSent,
				"Bombs defused", u.BombDefused,
				"Bombs exploded", u.BombFailed,
				"", nil,
				"RPS wins", u.RPSWin,
				"RPS losses", u.RPSLoss,
				"RPS ties", u.RPSTie,
				"", nil,
				"Roulette deaths", u.RouletteDeaths,
			),
		},
	}
	for i := range pages {
		pages[i].Color = config.AmethystColor
		pages[i].Footer = &discord.EmbedFooter{Text: fmt.Sprintf("Page %d/%d", i+1, len(pages))}
		if avatarURL != "" {
			pages[i].Thumbnail = &discord.EmbedResource{URL: avatarURL}
		}
	}
	return pages
}

func StatsHandler(b *amethyst.Bot, c *handlers.Collectors) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		profile := invoker(e)
		if _, ok := data.OptUser("user"); ok {
			profile = optionProfile(data, "user")
		}
		gid := guildID(e)
		name := identity.Resolve(profile)

		ctx, cancel := queryContext()
		s, err := b.Stats.UserStats(ctx, gid, profile.UserID, b.VoiceChannel(gid)(profile.UserID))
		cancel()
		if errors.Is(err, stats.ErrNoStats) {
			return utils.NewNotFoundError("No stats found for %s!", name)
		}
		if err != nil {
			return err
		}

		col := c.Open(statsGame, e.ID())
		defer col.Close()

		pages := statsPages(name, profile.AvatarURL, s)
		if err = e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{pages[0]},
			Components: pageButtons(col),
		}); err != nil {
			return err
		}

		viewCtx, cancelView := context.WithTimeout(context.Background(), config.StatsViewTimeout)
		defer cancelView()
		page := 0
		for {
			press, ok := col.Next(viewCtx)
			if !ok {
				break
			}
			if press.UserID != e.User().ID {
				continue
			}
			page = turnPage(page, len(pages), press.Value)
			if _, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Embeds: &[]discord.Embed{pages[page]},
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

func serverStatsEmbed(s *stats.ServerStats) discord.Embed {
	t := s.Totals
	return discord.Embed{
		Title: "Server Stats",
		Color: config.AmethystColor,
		Description: statLines(
			"Tracked members", t.Members,
			"Total quotes", s.Quotes,
			"Total VC time", stats.FormatLongDuration(t.VCTotalTime),
			"", nil,
			"Cookies sent", t.CookieSent,
			"Cakes sent", t.CakeSent,
			"GLaDOS appearances", t.CakeGlados,
			"Slaps sent", t.SlapSent,
			"Tea sent", t.TeaSent,
			"Hugs sent", t.HugSent,
			"", nil,
			"Bombs sent", t.BombSent,
			"Bombs defused", t.BombDefused,
			"Bombs exploded", t.BombFailed,
			"RPS games", t.RPSGames,
			"Roulette deaths", t.RouletteDeaths,
		),
	}
}

func ServerStatsHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		s, err := b.Stats.ServerStats(ctx, guildID(e))
		if err != nil {
			return err
		}
		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{serverStatsEmbed(s)}})
	}
}

func timeframeTitle(t stats.Timeframe) string {
	if t == stats.Monthly {
		return "VC Leaderboard (Monthly)"
	}
	return "VC Leaderboard (All Time)"
}

func vcTopEmbed(t stats.Timeframe, entries []repositories.VoiceEntry) discord.Embed {
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("**%d.** %s - %s", i+1, entry.DisplayName, stats.FormatDuration(entry.Seconds))
	}
	description := strings.Join(lines, "\n")
	if description == "" {
		description = "No time has been tracked yet!"
	}
	return discord.Embed{Title: timeframeTitle(t), Description: description, Color: config.LeaderboardColor}
}

func toggleButton(col *handlers.Collector, current stats.Timeframe) []discord.ContainerComponent {
	label := "Show monthly"
	if current == stats.Monthly {
		label = "Show all time"
	}
	return []discord.ContainerComponent{discord.NewActionRow(
		discord.NewPrimaryButton(label, col.CustomID(toggle)),
	)}
}

func VCTopHandler(b *amethyst.Bot, c *handlers.Collectors) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		timeframe := stats.AllTime
		if s, ok := e.SlashCommandInteractionData().OptString("type"); ok && stats.Timeframe(s) == stats.Monthly {
			timeframe = stats.Monthly
		}
		gid := guildID(e)
		lookup := b.VoiceChannel(gid)

		board := func(t stats.Timeframe) (discord.Embed, error) {
			ctx, cancel := context.WithTimeout(context.Background(), config.CommandTimeout)
			defer cancel()
			entries, err := b.Stats.VCTop(ctx, gid, t, lookup)
			if err != nil {
				return discord.Embed{}, err
			}
			return vcTopEmbed(t, entries), nil
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}
		embed, err := board(timeframe)
		if err != nil {
			return err
		}

		col := c.Open(vctopGame, e.ID())
		defer col.Close()
		if _, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds:     &[]discord.Embed{embed},
			Components: utils.Ptr(toggleButton(col, timeframe)),
		}); err != nil {
			return err
		}

		viewCtx, cancelView := context.WithTimeout(context.Background(), config.LeaderboardTimeout)
		defer cancelView()
		for {
			press, ok := col.Next(viewCtx)
			if !ok {
				break
			}
			if press.Value != toggle {
				continue
			}
			timeframe = timeframe.Toggle()
			if embed, err = board(timeframe); err != nil {
				return err
			}
			if _, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Embeds:     &[]discord.Embed{embed},
				Components: utils.Ptr(toggleButton(col, timeframe)),
			}); err != nil {
				return err
			}
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Components: clearComponents})
		return err
	}
}

func IgnoreChannelHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		channel, ok := e.SlashCommandInteractionData().OptChannel("channel")

		ctx, cancel := queryContext()
		defer cancel()

		var channelID *snowflake.ID
		if ok {
			channelID = &channel.ID
		}
		if err := b.Guilds.SetColumn(ctx, guildID(e), repositories.IgnoredVoiceChannel, channelID); err != nil {
			return err
		}
		if !ok {
			return utils.EH.CreateMessage(e, "No longer ignoring any channels for tracking time spent in VC.")
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Channel %s will be ignored for tracking time spent in VC.", utils.ChannelMention(channel.ID)))
	}
}
