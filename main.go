package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amethystbot/amethyst/amethyst"
	"github.com/amethystbot/amethyst/amethyst/commands"
	"github.com/amethystbot/amethyst/amethyst/config"
	"github.com/amethystbot/amethyst/amethyst/handlers"
	"github.com/amethystbot/amethyst/amethyst/logger"
	"github.com/amethystbot/amethyst/internal/gateways/database"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	cfg, err := amethyst.LoadConfig(*path)
	if err != nil {
		logger.Fatal("Failed to load configuration", "config", err)
	}
	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	logger.System("Starting Amethyst",
		slog.String("version", version),
		slog.String("commit", commit))

	dbStartTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), config.StartupTimeout)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		URL:          cfg.DB.URL,
		PoolSize:     cfg.DB.PoolSize,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  cfg.DB.MaxLifetime,
	})
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err = db.InitializeSchema(ctx); err != nil {
		logger.Fatal("Failed to initialize database schema", "database", err)
	}
	slog.Info("Database ready",
		slog.String("type", "db"),
		slog.Duration("took", time.Since(dbStartTime)))

	b := amethyst.New(*cfg, version, commit)
	if err = b.InitServices(ctx, db); err != nil {
		logger.Fatal("Failed to initialize services", "services", err)
	}

	cooldowns, err := handlers.NewCooldowns(config.CooldownCacheSize)
	if err != nil {
		logger.Fatal("Failed to create cooldown cache", "cooldowns", err)
	}
	collectors := handlers.NewCollectors(commands.Games...)
	wrapper := handlers.NewWrapper(b.Provisioner, cooldowns)

	h := handler.New()
	commands.Register(h, b, wrapper, collectors)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	dispatcher, err := handlers.NewDispatcher(rootCtx, b, collectors)
	if err != nil {
		logger.Fatal("Failed to create dispatcher", "dispatcher", err)
	}

	if err = b.SetupBot(append([]bot.EventListener{h}, dispatcher.Listeners()...)...); err != nil {
		logger.Fatal("Failed to setup bot", "bot_setup", err)
	}

	owners, err := b.Owners(ctx)
	if err != nil {
		slog.Warn("Owner commands disabled",
			slog.String("type", "sys"),
			slog.Any("error", err))
	}
	wrapper.WithOwners(owners...)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		logger.System("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("component", "command_sync"),
			)
		}
	}

	openCtx, openCancel := context.WithTimeout(context.Background(), config.GatewayOpenTimeout)
	defer openCancel()
	if err = b.Client.OpenGateway(openCtx); err != nil {
		logger.Fatal("Failed to open gateway", "gateway", err)
	}

	logger.System("Amethyst is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.System("Shutting down...")

	stop()
	dispatcher.Wait()
}
