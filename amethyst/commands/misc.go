package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

// gift is one of the themed member-to-member interactions.
type gift struct {
	name        string
	description string
	gif         media.GifType
	selfGif     media.GifType
	text        string // formatted with the sender mention
	selfText    string
	sent        repositories.Counter
	received    repositories.Counter
	// glados enables the rare "cake is a lie" roll.
	glados bool
}

const gladosText = "***The cake is a lie***"

var gifts = []gift{
	{
		name:        "slap",
		description: "Slap slap slap, clap clap clap",
		gif:         media.Slap,
		selfGif:     media.SlapSelf,
		text:        "%s slaps you around a bit with a large trout!",
		selfText:    "Stop hitting yourself...stop hitting yourself!",
		sent:        repositories.SlapSent,
		received:    repositories.SlapReceived,
	},
	{
		name:        "cookie",
		description: "Share a cookie",
		gif:         media.Cookie,
		selfGif:     media.CookieSelf,
		text:        "%s has given you a cookie!",
		selfText:    "NO! NO COOKIES FOR YOU!",
		sent:        repositories.CookieSent,
		received:    repositories.CookieReceived,
	},
	{
		name:        "tea",
		description: "We love tea",
		gif:         media.Tea,
		selfGif:     media.Tea,
		text:        "%s has given you some tea!",
		selfText:    "You have received some tea!",
		sent:        repositories.TeaSent,
		received:    repositories.TeaReceived,
	},
	{
		name:        "cake",
		description: "It is not a lie",
		gif:         media.Cake,
		selfGif:     media.Cake,
		text:        "%s has given you some cake! Hope you like it!",
		selfText:    "You treat yourself to some cake! Hope you like it!",
		sent:        repositories.CakeSent,
		received:    repositories.CakeReceived,
		glados:      true,
	},
	{
		name:        "hug",
		description: "Give someone a hug",
		gif:         media.Hug,
		selfGif:     media.Hug,
		text:        "%s gives you a big hug!",
		selfText:    "Everyone needs a hug sometimes. Here's one from us!",
		sent:        repositories.HugSent,
		received:    repositories.HugReceived,
	},
}

func giftCommand(g gift) discord.SlashCommandCreate {
	return discord.SlashCommandCreate{
		Name:        g.name,
		Description: g.description,
		Options: []discord.ApplicationCommandOption{
			&discord.ApplicationCommandOptionUser{
				Name:        "victim",
				Description: fmt.Sprintf("The user you'd like to %s.", g.name),
				Required:    true,
			},
		},
	}
}

var (
	Slap   = giftCommand(gifts[0])
	Cookie = giftCommand(gifts[1])
	Tea    = giftCommand(gifts[2])
	Cake   = giftCommand(gifts[3])
	Hug    = giftCommand(gifts[4])
)

// rollGlados is true one time in thirteen.
var rollGlados = func() bool { return rand.IntN(13) == 0 }

// giftPlan is what one gift invocation shows and records.
type giftPlan struct {
	Text     string
	Gif      media.GifType
	Glados   bool
	Counters [2]repositories.Counter // sender, victim; empty on self-gifts
}

func planGift(g gift, sender, victim snowflake.ID, glados bool) giftPlan {
	if sender == victim {
		return giftPlan{Text: g.selfText, Gif: g.selfGif}
	}
	p := giftPlan{
		Text:     fmt.Sprintf(g.text, utils.UserMention(sender)),
		Gif:      g.gif,
		Counters: [2]repositories.Counter{g.sent, g.received},
	}
	if g.glados && glados {
		p.Text = gladosText
		p.Glados = true
		p.Counters[1] = repositories.CakeGlados
	}
	return p
}

// giftMessage mentions the victim only when they opted in to pings.
func giftMessage(p giftPlan, victim snowflake.ID, ping bool, gifURL string) discord.MessageCreate {
	embed := discord.Embed{Description: p.Text, Color: config.AmethystColor}
	if gifURL != "" {
		embed.Image = &discord.EmbedResource{URL: gifURL}
	}
	msg := discord.MessageCreate{
		Embeds:          []discord.Embed{embed},
		AllowedMentions: &discord.AllowedMentions{},
	}
	if ping {
		msg.Content = utils.UserMention(victim)
		msg.AllowedMentions.Users = []snowflake.ID{victim}
	}
	return msg
}

// giftGif prefers the owner-set GLaDOS gif on a GLaDOS cake and falls back
// to the guild catalog.
func giftGif(ctx context.Context, b *amethyst.Bot, g snowflake.ID, p giftPlan) string {
	if p.Glados {
		if url := b.BotGifs.URL(ctx, media.Glados); url != "" {
			return url
		}
	}
	return b.Media.RandomURL(ctx, g, p.Gif)
}

// wantsPing reads the member's command_ping preference, on by default.
func wantsPing(ctx context.Context, b *amethyst.Bot, g, userID snowflake.ID) bool {
	ping, err := b.Users.CommandPing(ctx, g, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("Failed to read ping preference",
				slog.String("type", "cmd"),
				slog.String("user_id", userID.String()),
				slog.Any("error", err))
		}
		return true
	}
	return ping
}

func GiftHandler(b *amethyst.Bot, g gift) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		victim := optionProfile(data, "victim")
		sender := e.User().ID
		gid := guildID(e)

		ctx, cancel := queryContext()
		defer cancel()

		if _, err := ensureTarget(ctx, b, gid, victim); err != nil {
			return err
		}

		plan := planGift(g, sender, victim.UserID, rollGlados())
		msg := giftMessage(plan, victim.UserID, wantsPing(ctx, b, gid, victim.UserID), giftGif(ctx, b, gid, plan))
		if err := e.CreateMessage(msg); err != nil {
			return err
		}

		if plan.Counters[0] == "" {
			return nil
		}
		if err := b.Users.Increment(ctx, gid, sender, plan.Counters[0]); err != nil {
			return err
		}
		return b.Users.Increment(ctx, gid, victim.UserID, plan.Counters[1])
	}
}
