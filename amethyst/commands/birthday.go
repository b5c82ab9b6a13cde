package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/birthday"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

func monthOption(required bool) *discord.ApplicationCommandOptionInt {
	return &discord.ApplicationCommandOptionInt{
		Name:        "month",
		Description: "Birth month (1-12)",
		Required:    required,
		MinValue:    utils.Ptr(1),
		MaxValue:    utils.Ptr(12),
	}
}

func dayOption(required bool) *discord.ApplicationCommandOptionInt {
	return &discord.ApplicationCommandOptionInt{
		Name:        "day",
		Description: "Day of the month (1-31)",
		Required:    required,
		MinValue:    utils.Ptr(1),
		MaxValue:    utils.Ptr(31),
	}
}

func nicknameOption() *discord.ApplicationCommandOptionString {
	return &discord.ApplicationCommandOptionString{
		Name:        "nickname",
		Description: "Name to use in the announcement",
		MaxLength:   utils.Ptr(config.MaxNicknameLength),
	}
}

var textChannels = []discord.ChannelType{discord.ChannelTypeGuildText, discord.ChannelTypeGuildNews}

var Bday = discord.SlashCommandCreate{
	Name:        "bday",
	Description: "Birthday announcements",
	Options: []discord.ApplicationCommandOption{
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Save a member's birthday",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionUser{Name: "user", Description: "Whose birthday it is", Required: true},
				monthOption(true),
				dayOption(true),
				nicknameOption(),
			},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Remove a birthday",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionUser{Name: "user", Description: "Member to remove"},
				&discord.ApplicationCommandOptionString{Name: "user_id", Description: "ID of a member who already left"},
			},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "edit",
			Description: "Change a saved birthday",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionUser{Name: "user", Description: "Whose birthday to change", Required: true},
				monthOption(false),
				dayOption(false),
				nicknameOption(),
			},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "info",
			Description: "Show a member's birthday",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionUser{Name: "user", Description: "User to check", Required: true},
			},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List the saved birthdays",
			Options:     []discord.ApplicationCommandOption{monthOption(false)},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "setchannel",
			Description: "Channel for birthday announcements",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionChannel{Name: "channel", Description: "Announcement channel", Required: true, ChannelTypes: textChannels},
			},
		},
		&discord.ApplicationCommandOptionSubCommand{
			Name:        "setrole",
			Description: "Role given for the day; leave empty to stop",
			Options: []discord.ApplicationCommandOption{
				&discord.ApplicationCommandOptionRole{Name: "role", Description: "Birthday role"},
			},
		},
	},
}

func birthdayError(err error, name string) error {
	switch {
	case errors.Is(err, birthday.ErrExists):
		return utils.NewUserError("%s's birthday is already saved!", name)
	case errors.Is(err, birthday.ErrNotFound):
		return utils.NewNotFoundError("%s's birthday is not saved!", name)
	case errors.Is(err, birthday.ErrInvalidDate):
		return utils.NewUserError("That date does not exist!")
	case errors.Is(err, birthday.ErrNothingToEdit):
		return utils.NewUserError("You must choose at least one option to edit!")
	}
	return err
}

func optionalNickname(data discord.SlashCommandInteractionData) *string {
	if s, ok := data.OptString("nickname"); ok {
		return utils.OptionalText(s)
	}
	return nil
}

func optionalInt(data discord.SlashCommandInteractionData, name string) *int {
	if v, ok := data.OptInt(name); ok {
		return &v
	}
	return nil
}

func BdayAddHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		target := optionProfile(data, "user")
		name := identity.Resolve(target)

		ctx, cancel := queryContext()
		defer cancel()

		err := b.Birthdays.Add(ctx, guildID(e), target.UserID, data.Int("month"), data.Int("day"), optionalNickname(data))
		if err != nil {
			return birthdayError(err, name)
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Successfully added %s's birthday!", name))
	}
}

func BdayRemoveHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()

		var userID snowflake.ID
		var label string
		if _, ok := data.OptUser("user"); ok {
			target := optionProfile(data, "user")
			userID, label = target.UserID, identity.Resolve(target)
		} else if raw, ok := data.OptString("user_id"); ok {
			id, err := snowflake.Parse(strings.TrimSpace(raw))
			if err != nil {
				return utils.NewUserError("You must enter a valid UserID!")
			}
			userID, label = id, "ID: "+id.String()
		} else {
			return utils.NewUserError("You must choose a user or manually enter the user ID!")
		}

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Birthdays.Remove(ctx, guildID(e), userID); err != nil {
			if errors.Is(err, birthday.ErrNotFound) {
				return utils.NewNotFoundError("No birthday found for %s!", label)
			}
			return err
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Removed %s from the birthday list!", label))
	}
}

func BdayEditHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		target := optionProfile(data, "user")
		name := identity.Resolve(target)

		ctx, cancel := queryContext()
		defer cancel()

		_, err := b.Birthdays.Edit(ctx, guildID(e), target.UserID, birthday.Edit{
			Month:    optionalInt(data, "month"),
			Day:      optionalInt(data, "day"),
			Nickname: optionalNickname(data),
		})
		if err != nil {
			return birthdayError(err, name)
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Altered the birthday information for %s!", name))
	}
}

func birthdayInfo(name string, bd *models.Birthday) string {
	if bd.Nickname != nil {
		name = fmt.Sprintf("%s (%s)", name, *bd.Nickname)
	}
	return fmt.Sprintf("%s's birthday is on %s %s!", name, birthday.MonthName(bd.BirthMonth), birthday.Ordinal(bd.BirthDay))
}

func BdayInfoHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		target := optionProfile(data, "user")
		name := identity.Resolve(target)

		ctx, cancel := queryContext()
		defer cancel()

		bd, err := b.Birthdays.Get(ctx, guildID(e), target.UserID)
		if err != nil {
			return birthdayError(err, name)
		}
		return utils.EH.CreateMessage(e, birthdayInfo(name, bd))
	}
}

// birthdayLines renders one list line per birthday, numbered from 1.
func birthdayLines(list []*models.Birthday) []string {
	lines := make([]string, len(list))
	for i, bd := range list {
		name := utils.UserMention(bd.UserID)
		if bd.Nickname != nil {
			name = *bd.Nickname
		}
		lines[i] = fmt.Sprintf("- **[%d]** %s - ID: %d - Birthday: %d/%d", i+1, name, bd.UserID, bd.BirthDay, bd.BirthMonth)
	}
	return lines
}

func BdayListHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		month, _ := e.SlashCommandInteractionData().OptInt("month")

		ctx, cancel := queryContext()
		defer cancel()

		list, err := b.Birthdays.List(ctx, guildID(e), month)
		if err != nil {
			return birthdayError(err, "")
		}
		if len(list) == 0 {
			return utils.NewNotFoundError("No birthdays found for this server!")
		}

		title := "Birthdays"
		if month != 0 {
			title = "Birthdays in " + birthday.MonthName(month)
		}
		return utils.Paginate(b.Paginator, e, utils.ListPage{
			Title:   title,
			Color:   config.AmethystColor,
			PerPage: config.BirthdaysPerPage,
			Lines:   birthdayLines(list),
		})
	}
}

func BdaySetChannelHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		channel := e.SlashCommandInteractionData().Channel("channel")

		ctx, cancel := queryContext()
		defer cancel()

		if err := b.Guilds.SetColumn(ctx, guildID(e), repositories.BirthdayChannel, &channel.ID); err != nil {
			return err
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Now posting birthday announcements in %s!", utils.ChannelMention(channel.ID)))
	}
}

func BdaySetRoleHandler(b *amethyst.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		role, ok := e.SlashCommandInteractionData().OptRole("role")

		ctx, cancel := queryContext()
		defer cancel()

		var roleID *snowflake.ID
		if ok {
			roleID = &role.ID
		}
		if err := b.Guilds.SetColumn(ctx, guildID(e), repositories.BirthdayRole, roleID); err != nil {
			return err
		}
		if !ok {
			return utils.EH.CreateMessage(e, "No longer giving a role on a member's birthday!")
		}
		return utils.EH.CreateMessage(e, fmt.Sprintf("Now giving the %s role on birthdays!", role.Name))
	}
}
