package amethyst

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/services"
	"github.com/amethystbot/amethyst/internal/domain/birthday"
	"github.com/amethystbot/amethyst/internal/domain/identity"
	"github.com/amethystbot/amethyst/internal/domain/media"
	"github.com/amethystbot/amethyst/internal/domain/minigames"
	"github.com/amethystbot/amethyst/internal/domain/mtg"
	"github.com/amethystbot/amethyst/internal/domain/provision"
	"github.com/amethystbot/amethyst/internal/domain/quotes"
	"github.com/amethystbot/amethyst/internal/domain/stats"
	"github.com/amethystbot/amethyst/internal/domain/vctracker"
	"github.com/amethystbot/amethyst/internal/gateways/database"
	"github.com/amethystbot/amethyst/internal/gateways/database/repositories"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/paginator"
	"github.com/disgoorg/snowflake/v2"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	Guilds        repositories.GuildRepository
	Users         repositories.UserRepository
	Announcements repositories.AnnouncementRepository

	Identities  *identity.Cache
	Provisioner *provision.Provisioner
	Media       *media.Registry
	BotGifs     *media.BotGifs
	Downloader  *services.Downloader
	Scryfall    *mtg.Client
	VCT         *vctracker.Engine
	Birthdays   *birthday.Service
	Greeter     *birthday.Engine
	Games       *minigames.Games
	Stats       *stats.Service
	Quotes      *quotes.Service
}

// InitServices builds the repositories and domain services on top of db.
func (b *Bot) InitServices(ctx context.Context, db *database.DB) error {
	b.DB = db
	b.Guilds = repositories.NewGuildRepository(db)
	b.Users = repositories.NewUserRepository(db)
	b.Announcements = repositories.NewAnnouncementRepository(db.BunDB())

	voice := repositories.NewVoiceRepository(db.BunDB())
	birthdays := repositories.NewBirthdayRepository(db.BunDB())
	quoteLog := repositories.NewQuoteRepository(db)

	identities, err := identity.NewCache(b.Users, config.IdentityCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create identity cache: %w", err)
	}
	b.Identities = identities
	b.Provisioner = provision.NewProvisioner(b.Guilds, b.Users, identities)

	b.Media = media.NewRegistry(repositories.NewCustomGifRepository(db))
	if b.Cfg.Spaces.Enabled() {
		spaces, err := services.NewSpacesService(ctx, services.SpacesOptions{
			Key:      b.Cfg.Spaces.Key,
			Secret:   b.Cfg.Spaces.Secret,
			Region:   b.Cfg.Spaces.Region,
			Bucket:   b.Cfg.Spaces.Bucket,
			Endpoint: b.Cfg.Spaces.Endpoint,
			CDNURL:   b.Cfg.Spaces.CDNURL,
		})
		if err != nil {
			return err
		}
		b.Media.WithStorage(spaces)
		slog.Info("Gif storage enabled",
			slog.String("type", "sys"),
			slog.String("bucket", spaces.GetBucket()))
	}
	b.Downloader = services.NewDownloader(b.Cfg.HTTP.Timeout(), config.MaxGifBytes)
	b.Scryfall = mtg.NewClient(b.Cfg.HTTP.Timeout(), mtg.DefaultBaseURL)
	b.BotGifs = media.NewBotGifs(repositories.NewBotSettingsRepository(db.BunDB()), map[media.BotGif]string{
		media.RouletteClick: config.RouletteClickGIF,
		media.RouletteFire:  config.RouletteBangGIF,
	})

	b.VCT = vctracker.NewEngine(voice).WithWorkers(config.RecheckWorkers)
	b.Birthdays = birthday.NewService(birthdays)
	b.Greeter = birthday.NewEngine(b.Guilds, birthdays, b.Users, b.Media, &platform{bot: b})
	b.Games = minigames.NewGames(b.Users, b.Media, b.Guilds)
	b.Stats = stats.NewService(b.Users, quoteLog, voice, b.VCT)
	b.Quotes = quotes.NewService(quoteLog)
	return nil
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(
			gateway.IntentGuilds,
			gateway.IntentGuildMembers,
			gateway.IntentGuildMessages,
			gateway.IntentMessageContent,
			gateway.IntentGuildVoiceStates,
		)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagMembers, cache.FlagVoiceStates)),
		bot.WithRestClientConfigOpts(rest.WithHTTPClient(&http.Client{Timeout: b.Cfg.HTTP.Timeout()})),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// ApplicationOwners lists the team members of app, or its single owner.
func ApplicationOwners(app *discord.Application) []snowflake.ID {
	if app.Team != nil {
		owners := make([]snowflake.ID, 0, len(app.Team.Members))
		for _, m := range app.Team.Members {
			owners = append(owners, m.User.ID)
		}
		return owners
	}
	if app.Owner != nil {
		return []snowflake.ID{app.Owner.ID}
	}
	return nil
}

// Owners returns the configured owners, asking Discord when none are set.
func (b *Bot) Owners(ctx context.Context) ([]snowflake.ID, error) {
	if len(b.Cfg.Bot.Owners) > 0 {
		return b.Cfg.Bot.Owners, nil
	}
	app, err := b.Client.Rest().GetCurrentApplication(rest.WithCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return ApplicationOwners(app), nil
}

// VoiceChannel looks a member's current voice channel up in the gateway cache.
func (b *Bot) VoiceChannel(guildID snowflake.ID) vctracker.ChannelLookup {
	return func(userID snowflake.ID) *snowflake.ID {
		state, ok := b.Client.Caches().VoiceState(guildID, userID)
		if !ok {
			return nil
		}
		return state.ChannelID
	}
}
