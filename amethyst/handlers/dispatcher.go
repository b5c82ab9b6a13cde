package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/logger"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/scheduler"
	"github.com/amethystbot/amethyst/internal/gateways/database/models"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Dispatcher reacts to gateway events and owns the periodic tasks.
type Dispatcher struct {
	ctx        context.Context
	bot        *amethyst.Bot
	scheduler  *scheduler.Scheduler
	collectors *Collectors
}

func NewDispatcher(ctx context.Context, b *amethyst.Bot, collectors *Collectors) (*Dispatcher, error) {
	s, err := scheduler.New(
		scheduler.Task{
			Name:    "birthday",
			Spec:    config.BirthdayCron,
			Timeout: config.ScheduledTaskTimeout,
			Run:     func(ctx context.Context) error { return b.Greeter.Run(ctx) },
		},
		scheduler.Task{
			Name:    "monthly-vc-reset",
			Spec:    config.MonthlyResetCron,
			Timeout: config.ScheduledTaskTimeout,
			Run:     b.VCT.ResetMonthly,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Dispatcher{ctx: ctx, bot: b, scheduler: s, collectors: collectors}, nil
}

func (d *Dispatcher) Listeners() []bot.EventListener {
	return []bot.EventListener{
		bot.NewListenerFunc(d.onReady),
		bot.NewListenerFunc(d.onGuildReady),
		bot.NewListenerFunc(d.onGuildJoin),
		bot.NewListenerFunc(d.onMemberJoin),
		bot.NewListenerFunc(d.onMemberLeave),
		bot.NewListenerFunc(d.onMemberUpdate),
		bot.NewListenerFunc(d.onMessage),
		bot.NewListenerFunc(d.onVoiceStateUpdate),
		bot.NewListenerFunc(d.collectors.OnComponent),
	}
}

// Wait blocks until the periodic tasks have stopped.
func (d *Dispatcher) Wait() {
	d.scheduler.Wait()
}

func (d *Dispatcher) eventContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(d.ctx, config.EventHandlerTimeout)
}

func (d *Dispatcher) onReady(_ *events.Ready) {
	logger.System("Amethyst is now ready",
		slog.String("version", d.bot.Version),
		slog.String("commit", d.bot.Commit))

	if d.scheduler.Start(d.ctx) {
		slog.Info("Periodic tasks started", slog.String("type", "task"))
	}

	ctx, cancel := d.eventContext()
	defer cancel()
	if err := d.bot.Client.SetPresence(ctx,
		gateway.WithListeningActivity("/bday"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.String("type", "sys"), slog.Any("error", err))
	}
}

func (d *Dispatcher) onGuildReady(e *events.GuildReady) {
	d.prepareGuild(e.GuildID)
}

func (d *Dispatcher) onGuildJoin(e *events.GuildJoin) {
	d.prepareGuild(e.GuildID)
}

// prepareGuild provisions the guild rows and closes voice sessions whose
// members left voice while the bot was away.
func (d *Dispatcher) prepareGuild(guildID snowflake.ID) {
	ctx, cancel := d.eventContext()
	defer cancel()

	if err := d.bot.Provisioner.EnsureGuild(ctx, guildID); err != nil {
		logger.EventError("Failed to provision guild", err, guildID)
		return
	}

	cleared, err := d.bot.VCT.Safeguard(ctx, guildID, d.bot.VoiceChannel(guildID))
	if err != nil {
		logger.EventError("Voice safeguard failed", err, guildID)
		return
	}
	if cleared > 0 {
		slog.Info("Cleared stale voice sessions",
			slog.String("type", "vc"),
			slog.String("guild_id", guildID.String()),
			slog.Int("count", cleared))
	}
}

func (d *Dispatcher) send(ctx context.Context, channelID snowflake.ID, msg discord.MessageCreate) error {
	_, err := d.bot.Client.Rest().CreateMessage(channelID, msg, rest.WithCtx(ctx))
	return err
}

// announcement returns nil when the kind is not configured for the guild.
func (d *Dispatcher) announcement(ctx context.Context, kind repositories.AnnouncementKind, guildID snowflake.ID) (*models.Announcement, error) {
	a, err := d.bot.Announcements.Get(ctx, kind, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil || a.ChannelID == nil {
		return nil, err
	}
	return a, nil
}

func (d *Dispatcher) onMemberJoin(e *events.GuildMemberJoin) {
	if e.Member.User.Bot {
		return
	}
	ctx, cancel := d.eventContext()
	defer cancel()

	profile := identity.FromMember(e.Member)
	name, err := d.bot.Provisioner.EnsureUser(ctx, e.GuildID, profile)
	if err != nil {
		logger.EventError("Failed to provision member", err, e.GuildID, slog.String("user_id", e.Member.User.ID.String()))
		name = identity.Resolve(profile)
	}

	welcome, err := d.announcement(ctx, repositories.WelcomeAnnouncement, e.GuildID)
	if err != nil {
		logger.EventError("Failed to load welcome settings", err, e.GuildID)
		return
	}
	if welcome == nil {
		return
	}

	msg := discord.MessageCreate{Embeds: []discord.Embed{WelcomeEmbed(name, profile.AvatarURL, welcome)}}
	if err = d.send(ctx, *welcome.ChannelID, msg); err != nil {
		logger.EventError("Failed to send welcome message", err, e.GuildID)
	}
}

func (d *Dispatcher) onMemberLeave(e *events.GuildMemberLeave) {
	if e.User.Bot {
		return
	}
	ctx, cancel := d.eventContext()
	defer cancel()

	profile := identity.FromUser(e.User)
	if e.Member.User.ID == e.User.ID {
		profile = identity.FromMember(e.Member)
	}

	if err := d.bot.Provisioner.RemoveMember(ctx, e.GuildID, e.User.ID); err != nil {
		logger.EventError("Failed to remove member data", err, e.GuildID, slog.String("user_id", e.User.ID.String()))
	}

	settings, err := d.bot.Guilds.Get(ctx, e.GuildID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.EventError("Failed to load guild settings", err, e.GuildID)
		}
		return
	}
	if settings.MemberLeaveChannelID == nil {
		return
	}

	msg := discord.MessageCreate{
		Content:         LeaveMessage(identity.Resolve(profile)),
		AllowedMentions: &discord.AllowedMentions{},
	}
	if err = d.send(ctx, *settings.MemberLeaveChannelID, msg); err != nil {
		logger.EventError("Failed to send leave message", err, e.GuildID)
	}
}

func (d *Dispatcher) onMemberUpdate(e *events.GuildMemberUpdate) {
	if e.Member.User.Bot {
		return
	}
	ctx, cancel := d.eventContext()
	defer cancel()

	if _, err := d.bot.Provisioner.EnsureUser(ctx, e.GuildID, identity.FromMember(e.Member)); err != nil {
		logger.EventError("Failed to sync display name", err, e.GuildID, slog.String("user_id", e.Member.User.ID.String()))
	}
}

func (d *Dispatcher) onMessage(e *events.GuildMessageCreate) {
	if IsBoostMessage(e.Message.Type) {
		d.onBoost(e)
		return
	}
	if e.Message.Author.Bot || e.Message.Content == "" {
		return
	}

	for _, egg := range d.bot.Cfg.EasterEggs {
		if !egg.Matches(e.GuildID, e.Message.Author.ID, e.Message.Content) {
			continue
		}
		ctx, cancel := d.eventContext()
		err := d.send(ctx, e.ChannelID, discord.MessageCreate{Content: egg.Reply})
		cancel()
		if err != nil {
			logger.EventError("Failed to send easter egg", err, e.GuildID)
		}
		return
	}
}

func (d *Dispatcher) onBoost(e *events.GuildMessageCreate) {
	ctx, cancel := d.eventContext()
	defer cancel()

	boost, err := d.announcement(ctx, repositories.BoostAnnouncement, e.GuildID)
	if err != nil {
		logger.EventError("Failed to load boost settings", err, e.GuildID)
		return
	}
	if boost == nil {
		return
	}

	profile := identity.FromUser(e.Message.Author)
	if e.Message.Member != nil {
		profile.Nickname = e.Message.Member.Nick
	}
	msg := discord.MessageCreate{Embeds: []discord.Embed{BoostEmbed(identity.Resolve(profile), profile.AvatarURL, boost)}}
	if err = d.send(ctx, *boost.ChannelID, msg); err != nil {
		logger.EventError("Failed to send boost message", err, e.GuildID)
	}
}

func (d *Dispatcher) onVoiceStateUpdate(e *events.GuildVoiceStateUpdate) {
	if e.Member.User.Bot {
		return
	}
	guildID := e.VoiceState.GuildID
	userID := e.VoiceState.UserID

	ctx, cancel := d.eventContext()
	defer cancel()

	if _, err := d.bot.Provisioner.EnsureUser(ctx, guildID, identity.FromMember(e.Member)); err != nil {
		logger.EventError("Failed to provision voice member", err, guildID, slog.String("user_id", userID.String()))
		return
	}

	action, err := d.bot.VCT.HandleVoiceUpdate(ctx, guildID, userID, e.OldVoiceState.ChannelID, e.VoiceState.ChannelID)
	if err != nil {
		logger.EventError("Failed to track voice update", err, guildID, slog.String("user_id", userID.String()))
		return
	}
	slog.Debug("Voice state handled",
		slog.String("type", "vc"),
		slog.String("guild_id", guildID.String()),
		slog.String("user_id", userID.String()),
		slog.String("action", action.String()))
}
