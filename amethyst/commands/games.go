package commands

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/domain/minigames"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

const (
	bombGame = "bomb"
	rpsGame  = "rps"
)

var Bomb = discord.SlashCommandCreate{
	Name:        "bomb",
	Description: "Send a bomb to someone!",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionUser{Name: "target", Description: "Who gets the bomb", Required: true},
	},
}

var RPS = discord.SlashCommandCreate{
	Name:        "rps",
	Description: "Challenge someone to Rock, Paper, Scissors",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionUser{Name: "opponent", Description: "Who to challenge", Required: true},
	},
}

var Roulette = discord.SlashCommandCreate{
	Name:        "roulette",
	Description: "Pull the trigger of the server's revolver",
}

// clearComponents removes every button from the anchor message.
var clearComponents = &[]discord.ContainerComponent{}

// pingOnly mentions exactly one user.
func pingOnly(userID snowflake.ID) *discord.AllowedMentions {
	return &discord.AllowedMentions{Users: []snowflake.ID{userID}}
}

func wireButtons(col *handlers.Collector) []discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, len(minigames.Wires))
	for i, w := range minigames.Wires {
		buttons[i] = discord.NewSecondaryButton("", col.CustomID(w.String())).
			WithEmoji(discord.ComponentEmoji{Name: w.Emoji()})
	}
	return []discord.ContainerComponent{discord.NewActionRow(buttons...)}
}

func bombEmbed(description, gifURL string) discord.Embed {
	embed := discord.Embed{Title: "Bomb", Description: description, Color: config.BombColor}
	if gifURL != "" {
		embed.Image = &discord.EmbedResource{URL: gifURL}
	}
	return embed
}

func bombText(outcome minigames.BombOutcome) string {
	switch outcome {
	case minigames.BombDummy:
		return "That was a dummy wire! You have 1 more chance!"
	case minigames.BombDefused:
		return "You have successfully defused the bomb!"
	case minigames.BombExploded:
		return "Wrong wire!! ***KABOOM***"
	}
	return "***KABOOM*** You ran out of time!"
}

type bombView struct {
	e *handler.CommandEvent
}

func (v *bombView) Dummy(ctx context.Context) error {
	_, err := v.e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds: &[]discord.Embed{bombEmbed(bombText(minigames.BombDummy), "")},
	}, rest.WithCtx(ctx))
	return err
}

func (v *bombView) Finish(ctx context.Context, outcome minigames.BombOutcome, gifURL string) error {
	_, err := v.e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{bombEmbed(bombText(outcome), gifURL)},
		Components: clearComponents,
	}, rest.WithCtx(ctx))
	return err
}

func BombHandler(b *amethyst.Bot, c *handlers.Collectors) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.User("target").Bot {
			return utils.NewUserError("Bots don't know how to defuse bombs!")
		}
		target := optionProfile(data, "target")
		gid := guildID(e)

		ctx, cancel := queryContext()
		_, err := ensureTarget(ctx, b, gid, target)
		cancel()
		if err != nil {
			return err
		}

		col := c.Open(bombGame, e.ID())
		defer col.Close()

		sender := identity.Resolve(invoker(e))
		err = e.CreateMessage(discord.MessageCreate{
			Content:         utils.UserMention(target.UserID),
			AllowedMentions: pingOnly(target.UserID),
			Embeds: []discord.Embed{bombEmbed(
				fmt.Sprintf("%s has sent you a bomb! Defuse it quickly! You have 20 seconds!", sender), "")},
			Components: wireButtons(col),
		})
		if err != nil {
			return err
		}

		gameCtx, cancelGame := context.WithTimeout(context.Background(), minigames.BombFuse+config.EventHandlerTimeout)
		defer cancelGame()
		_, err = b.Games.PlayBomb(gameCtx, gid, e.User().ID, target.UserID, col, &bombView{e: e})
		return err
	}
}

func choiceButtons(col *handlers.Collector) []discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, len(minigames.Choices))
	for i, ch := range minigames.Choices {
		buttons[i] = discord.NewPrimaryButton("", col.CustomID(ch.String())).
			WithEmoji(discord.ComponentEmoji{Name: ch.Emoji()})
	}
	return []discord.ContainerComponent{discord.NewActionRow(buttons...)}
}

const (
	rpsPending = "-------"
	rpsHidden  = "*Hidden*"
)

// rpsSlot renders one player's field; choices stay hidden until reveal.
func rpsSlot(game *minigames.RPS, i int, reveal bool) string {
	switch {
	case game == nil || !game.Committed(i):
		return rpsPending
	case reveal:
		ch := game.Choice(i)
		return ch.Emoji() + " " + ch.String()
	}
	return rpsHidden
}

func rpsEmbed(names [2]string, description string, game *minigames.RPS, reveal bool) discord.Embed {
	return discord.Embed{
		Title:       "Rock, Paper, Scissors",
		Description: description,
		Color:       config.RPSColor,
		Fields: []discord.EmbedField{
			{Name: names[0], Value: rpsSlot(game, 0, reveal), Inline: utils.Ptr(true)},
			{Name: names[1], Value: rpsSlot(game, 1, reveal), Inline: utils.Ptr(true)},
		},
	}
}

func rpsResult(names [2]string, game *minigames.RPS) string {
	if w := game.Winner(); w >= 0 {
		return fmt.Sprintf("%s won! Congratulations!", names[w])
	}
	return "It was a tie!"
}

type rpsView struct {
	e     *handler.CommandEvent
	names [2]string
	intro string
}

func (v *rpsView) Progress(ctx context.Context, game *minigames.RPS) error {
	_, err := v.e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds: &[]discord.Embed{rpsEmbed(v.names, v.intro, game, false)},
	}, rest.WithCtx(ctx))
	return err
}

func (v *rpsView) Finish(ctx context.Context, game *minigames.RPS) error {
	_, err := v.e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{rpsEmbed(v.names, rpsResult(v.names, game), game, true)},
		Components: clearComponents,
	}, rest.WithCtx(ctx))
	return err
}

func (v *rpsView) TimedOut(ctx context.Context) error {
	_, err := v.e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds:     &[]discord.Embed{{Title: "Rock, Paper, Scissors", Description: "The game has timed out! :(", Color: config.RPSColor}},
		Components: clearComponents,
	}, rest.WithCtx(ctx))
	return err
}

func RPSHandler(b *amethyst.Bot, c *handlers.Collectors) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		opponentUser := data.User("opponent")
		switch {
		case opponentUser.ID == e.User().ID:
			return utils.NewUserError("You can't challenge yourself!")
		case opponentUser.Bot:
			return utils.NewUserError("You can't challenge a bot!")
		}
		opponent := optionProfile(data, "opponent")
		gid := guildID(e)

		ctx, cancel := queryContext()
		opponentName, err := ensureTarget(ctx, b, gid, opponent)
		cancel()
		if err != nil {
			return err
		}

		col := c.Open(rpsGame, e.ID())
		defer col.Close()

		view := &rpsView{
			e:     e,
			names: [2]string{identity.Resolve(invoker(e)), opponentName},
			intro: fmt.Sprintf("%s, you have been challenged to Rock, Paper, Scissors!\n\nPlayers, select a choice below! You have 1 minute!",
				utils.UserMention(opponent.UserID)),
		}
		err = e.CreateMessage(discord.MessageCreate{
			Content:         utils.UserMention(opponent.UserID),
			AllowedMentions: pingOnly(opponent.UserID),
			Embeds:          []discord.Embed{rpsEmbed(view.names, view.intro, nil, false)},
			Components:      choiceButtons(col),
		})
		if err != nil {
			return err
		}

		gameCtx, cancelGame := context.WithTimeout(context.Background(), minigames.RPSTimeout+config.EventHandlerTimeout)
		defer cancelGame()
		_, err = b.Games.PlayRPS(gameCtx, gid, e.User().ID, opponent.UserID, col, view)
		return err
	}
}

func rouletteGif(r minigames.RouletteResult) media.BotGif {
	if r.Fired {
		return media.RouletteFire
	}
	return media.RouletteClick
}

func rouletteEmbed(r minigames.RouletteResult, gifURL string) discord.Embed {
	embed := discord.Embed{
		Title:       "Click!",
		Description: fmt.Sprintf("Chamber %d/%d", r.State.Count, minigames.Chambers),
		Color:       config.RouletteColor,
		Image:       &discord.EmbedResource{URL: gifURL},
	}
	if r.Fired {
		embed.Title = "Bang!"
	}
	return embed
}

func RouletteHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := queryContext()
		defer cancel()

		result, err := b.Games.PullTrigger(ctx, guildID(e), e.User().ID)
		if err != nil {
			return err
		}
		embed := rouletteEmbed(result, b.BotGifs.URL(ctx, rouletteGif(result)))
		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{embed}})
	}
}
