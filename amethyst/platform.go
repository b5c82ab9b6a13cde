package amethyst

import (
	"context"
	"fmt"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/internal/domain/birthday"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// platform drives Discord on behalf of the birthday engine.
type platform struct {
	bot *Bot
}

// GreetingMessage is the birthday announcement for g.
func GreetingMessage(g birthday.Greeting) discord.MessageCreate {
	embed := discord.Embed{
		Title:       fmt.Sprintf("Happy birthday, %s! :birthday:", g.Name),
		Description: "We hope you have a great day!",
		Color:       config.AmethystColor,
	}
	if g.GifURL != "" {
		embed.Image = &discord.EmbedResource{URL: g.GifURL}
	}
	return discord.MessageCreate{
		Content: "@everyone :birthday:",
		Embeds:  []discord.Embed{embed},
		AllowedMentions: &discord.AllowedMentions{
			Parse: []discord.AllowedMentionType{discord.AllowedMentionTypeEveryone},
		},
	}
}

func (p *platform) SendGreeting(ctx context.Context, g birthday.Greeting) error {
	_, err := p.bot.Client.Rest().CreateMessage(g.ChannelID, GreetingMessage(g), rest.WithCtx(ctx))
	return err
}

func (p *platform) AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	return p.bot.Client.Rest().AddMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}

func (p *platform) RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	return p.bot.Client.Rest().RemoveMemberRole(guildID, userID, roleID, rest.WithCtx(ctx))
}

// Profile prefers the guild member and falls back to the bare user for
// members who already left.
func (p *platform) Profile(ctx context.Context, guildID, userID snowflake.ID) (identity.Profile, error) {
	if member, err := p.bot.Client.Rest().GetMember(guildID, userID, rest.WithCtx(ctx)); err == nil {
		return identity.FromMember(*member), nil
	}
	user, err := p.bot.Client.Rest().GetUser(userID, rest.WithCtx(ctx))
	if err != nil {
		return identity.Profile{}, err
	}
	return identity.FromUser(*user), nil
}
