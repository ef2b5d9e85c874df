package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/frontierdeck/frontierdeck/deckbot"
	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
	"github.com/frontierdeck/frontierdeck/deckbot/commands"
	"github.com/frontierdeck/frontierdeck/deckbot/database"
	"github.com/frontierdeck/frontierdeck/deckbot/database/repositories"
	"github.com/frontierdeck/frontierdeck/deckbot/handlers"
	"github.com/frontierdeck/frontierdeck/deckbot/logger"
	"github.com/frontierdeck/frontierdeck/deckbot/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting FrontierDeck",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := deckbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Database connection failed",
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}

	if err := db.Ping(ctx); err != nil {
		slog.Error("Database health check failed", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	b := deckbot.New(*cfg, version, commit)
	b.DB = db
	b.DeckRepository = repositories.NewDeckRepository(db.BunDB())

	// The bot stays up on a broken catalog; every command then reports
	// an empty catalog instead of the process dying.
	b.CatalogStore = catalog.NewStore()
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		slog.Warn("Failed to load card catalog, continuing with an empty one",
			slog.String("type", "sys"),
			slog.String("path", cfg.Catalog.Path),
			slog.Any("error", err))
		cat = catalog.Empty()
	} else {
		slog.Info("Card catalog loaded",
			slog.String("path", cfg.Catalog.Path),
			slog.Int("cards", cat.Len()),
			slog.Int("packs", len(cat.Packs())))
	}
	b.CatalogStore.Set(cat)

	b.SpacesService = services.NewSpacesService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.CardRoot,
	)
	b.DeckService = services.NewDeckService(b.DeckRepository, b.CatalogStore)
	b.SearchService = services.NewSearchService()
	b.DeckImageService = services.NewDeckImageService(b.SpacesService)

	// Warm the image existence cache in the background; deck renders
	// work either way, the warmup just makes the first ones faster.
	go func() {
		warmCtx, warmCancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer warmCancel()

		images := make([]string, 0, cat.Len())
		for _, card := range cat.Cards() {
			if card.Image != "" {
				images = append(images, card.Image)
			}
		}
		if err := b.SpacesService.WarmImageCache(warmCtx, images); err != nil {
			slog.Warn("Image cache warmup aborted", slog.Any("error", err))
		}
	}()

	h := handler.New()
	h.Command("/searchcards", handlers.WrapWithLogging("searchcards", commands.SearchCardsHandler(b)))
	h.Command("/card", handlers.WrapWithLogging("card", commands.CardInfoHandler(b)))
	h.Autocomplete("/card", handlers.WrapAutocompleteWithLogging("card", commands.CardInfoAutocompleteHandler(b)))
	h.Command("/deck", handlers.WrapWithLogging("deck", commands.DeckHandler(b)))
	h.Autocomplete("/deck", handlers.WrapAutocompleteWithLogging("deck", commands.DeckAutocompleteHandler(b)))
	h.Command("/deckcode", handlers.WrapWithLogging("deckcode", commands.DeckCodeHandler(b)))
	h.Command("/deckimage", handlers.WrapWithLogging("deckimage", commands.DeckImageHandler(b)))
	h.Command("/packs", handlers.WrapWithLogging("packs", commands.PacksHandler(b)))
	h.Command("/version", commands.VersionHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("FrontierDeck is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s
	slog.Info("Shutting down...")
}
