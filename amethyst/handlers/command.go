package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"
	"time"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/utils"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

// Options gate a command before its body runs.
type Options struct {
	GuildOnly   bool
	OwnersOnly  bool
	Permissions discord.Permissions
	Cooldown    time.Duration
	// Interactive commands wait on button presses and are never logged as slow.
	Interactive bool
	// Check returns a CommandError to refuse the invocation.
	Check func(e *handler.CommandEvent) error
}

// UserEnsurer provisions the invoking member before any command body.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, guildID snowflake.ID, profile identity.Profile) (string, error)
}

type Wrapper struct {
	users     UserEnsurer
	cooldowns *Cooldowns
	owners    map[snowflake.ID]struct{}
}

func NewWrapper(users UserEnsurer, cooldowns *Cooldowns) *Wrapper {
	return &Wrapper{users: users, cooldowns: cooldowns}
}

// WithOwners sets who may run OwnersOnly commands. Nobody may by default.
func (w *Wrapper) WithOwners(ids ...snowflake.ID) *Wrapper {
	w.owners = make(map[snowflake.ID]struct{}, len(ids))
	for _, id := range ids {
		w.owners[id] = struct{}{}
	}
	return w
}

func (w *Wrapper) isOwner(userID snowflake.ID) bool {
	_, ok := w.owners[userID]
	return ok
}

var permissionNames = map[discord.Permissions]string{
	discord.PermissionManageChannels: "Manage Channels",
	discord.PermissionManageGuild:    "Manage Server",
	discord.PermissionManageRoles:    "Manage Roles",
	discord.PermissionManageMessages: "Manage Messages",
	discord.PermissionAdministrator:  "Administrator",
}

func permissionName(p discord.Permissions) string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "required"
}

// CooldownMessage is shown while a member's cooldown is running.
func CooldownMessage(left time.Duration) string {
	return fmt.Sprintf("Slow down! Try again in %ds.", int(math.Ceil(left.Seconds())))
}

func (w *Wrapper) gate(name string, opts Options, e *handler.CommandEvent) error {
	if opts.OwnersOnly && !w.isOwner(e.User().ID) {
		return utils.NewPermissionError("Only the bot owners can run this command!")
	}

	guildID := e.GuildID()
	if guildID == nil {
		if opts.GuildOnly {
			return utils.NewUserError("This command can only be used in a server.")
		}
		return nil
	}

	member := e.Member()
	if opts.Permissions != 0 && (member == nil || !member.Permissions.Has(opts.Permissions)) {
		return utils.NewPermissionError("You need the %s permission to run this command!", permissionName(opts.Permissions))
	}

	if opts.Cooldown > 0 && w.cooldowns != nil {
		if left, ok := w.cooldowns.Take(name, *guildID, e.User().ID, opts.Cooldown); !ok {
			return utils.NewCooldownError(CooldownMessage(left))
		}
	}

	if opts.Check != nil {
		if err := opts.Check(e); err != nil {
			return err
		}
	}

	profile := identity.FromUser(e.User())
	if member != nil {
		profile = identity.FromMember(member.Member)
	}
	ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
	defer cancel()
	if _, err := w.users.EnsureUser(ctx, *guildID, profile); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// Wrap applies opts and runs the command on its own goroutine so that
// interactive commands never hold up the gateway. Panics are recovered and
// any returned error is rendered as an ephemeral embed.
func (w *Wrapper) Wrap(name string, opts Options, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		go w.run(name, opts, h, e)
		return nil
	}
}

func (w *Wrapper) run(name string, opts Options, h handler.CommandHandler, e *handler.CommandEvent) {
	var err error
	start := time.Now()
	attrs := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("user_id", e.User().ID.String()),
		slog.String("user_name", e.User().Username),
	}

	slog.Debug("Command started", append(attrs,
		slog.Any("guild_id", e.GuildID()),
		slog.String("channel_id", e.ChannelID().String()),
	)...)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command panicked", append(attrs,
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)...)
			err = fmt.Errorf("panic: %v", r)
		}

		attrs = append(attrs, slog.Duration("took", time.Since(start)))
		if err != nil {
			t, _ := utils.Classify(err)
			if t.Expected() {
				slog.Info("Command refused", append(attrs,
					slog.String("status", t.String()),
					slog.String("reason", err.Error()),
				)...)
			} else {
				slog.Error("Command failed", append(attrs,
					slog.Any("error", err),
					slog.String("status", "failed"),
				)...)
			}
			if respErr := utils.EH.RespondError(e, err); respErr != nil {
				slog.Error("Failed to send error response", append(attrs, slog.Any("error", respErr))...)
			}
			return
		}

		if !opts.Interactive && time.Since(start) > config.SlowCommandThreshold {
			slog.Warn("Command executed slowly", append(attrs, slog.String("status", "slow"))...)
		} else {
			slog.Info("Command completed", append(attrs, slog.String("status", "success"))...)
		}
	}()

	if err = w.gate(name, opts, e); err != nil {
		return
	}
	err = h(e)
}
