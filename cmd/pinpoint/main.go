package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/common/clock"
	"github.com/KirkDiggler/pinpoint/internal/common/uuid"
	"github.com/KirkDiggler/pinpoint/internal/config"
	"github.com/KirkDiggler/pinpoint/internal/database"
	"github.com/KirkDiggler/pinpoint/internal/handlers/api"
	"github.com/KirkDiggler/pinpoint/internal/handlers/discord"
	"github.com/KirkDiggler/pinpoint/internal/repositories/catalog"
	"github.com/KirkDiggler/pinpoint/internal/repositories/guess"
	"github.com/KirkDiggler/pinpoint/internal/repositories/kv"
	"github.com/KirkDiggler/pinpoint/internal/repositories/session"
	"github.com/KirkDiggler/pinpoint/internal/services/current_session"
	"github.com/KirkDiggler/pinpoint/internal/services/draft"
	"github.com/KirkDiggler/pinpoint/internal/services/messaging"
	gameService "github.com/KirkDiggler/pinpoint/internal/services/game"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("pinpoint stopped")
	}
}

// stores holds the backends picked by STORE_DRIVER
type stores struct {
	sessionRepo session.Repository
	guessRepo   guess.Repository
	local       kv.Store
	health      map[string]api.HealthCheck
	close       func()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	catalogCfg, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return err
	}
	catalogRepo, err := catalog.NewStatic(catalogCfg)
	if err != nil {
		return fmt.Errorf("invalid catalog %s: %w", cfg.CatalogPath, err)
	}
	log.Info().Str("path", cfg.CatalogPath).Int("images", len(catalogCfg.Images)).Msg("catalog loaded")

	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   st.sessionRepo,
		GuessRepo:     st.guessRepo,
		CatalogRepo:   catalogRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	draftSvc, err := draft.New(&draft.Config{
		Store:         st.local,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create draft service: %w", err)
	}

	server, err := api.New(&api.Config{
		Addr:         cfg.HTTPAddr,
		GameService:  gameSvc,
		DraftService: draftSvc,
		HealthChecks: st.health,
	})
	if err != nil {
		return fmt.Errorf("failed to create http api: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down http api")
		return server.Shutdown(context.Background())
	})

	if cfg.DiscordEnabled() {
		currentSessions, err := current_session.New(&current_session.Config{Store: st.local})
		if err != nil {
			return fmt.Errorf("failed to create current session service: %w", err)
		}

		messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
		if err != nil {
			return fmt.Errorf("failed to create messaging service: %w", err)
		}

		bot, err := discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.DiscordApplicationID,
			GuildID:          cfg.DiscordGuildID,
			GameService:      gameSvc,
			DraftService:     draftSvc,
			CurrentSessions:  currentSessions,
			MessagingService: messagingSvc,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			stop()
			return errors.Join(fmt.Errorf("failed to start Discord bot: %w", err), g.Wait())
		}

		g.Go(func() error {
			<-ctx.Done()
			log.Info().Msg("shutting down discord bot")
			return bot.Stop()
		})
	} else {
		log.Info().Msg("DISCORD_TOKEN not set, discord bot disabled")
	}

	return g.Wait()
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return openRedis(ctx, cfg)
	}
}

func openRedis(ctx context.Context, cfg *config.Config) (*stores, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		closeRedis(redisClient)
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	st, err := redisStores(redisClient, cfg)
	if err != nil {
		closeRedis(redisClient)
		return nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("using redis store")

	return st, nil
}

func redisStores(redisClient *redis.Client, cfg *config.Config) (*stores, error) {
	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	guessRepo, err := guess.NewRedis(&guess.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create guess repository: %w", err)
	}

	local, err := kv.NewRedis(&kv.Config{
		RedisClient: redisClient,
		TTL:         cfg.LocalStateTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create local store: %w", err)
	}

	return &stores{
		sessionRepo: sessionRepo,
		guessRepo:   guessRepo,
		local:       local,
		health: map[string]api.HealthCheck{
			"redis": func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			},
		},
		close: func() {
			closeRedis(redisClient)
		},
	}, nil
}

func closeRedis(redisClient *redis.Client) {
	if err := redisClient.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close redis client")
	}
}

// openSQLite keeps sessions and guesses on disk. Drafts and current-session
// pointers stay in process memory since there is no shared cache to hold them.
func openSQLite(ctx context.Context, cfg *config.Config) (*stores, error) {
	db, err := database.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}

	if err := database.Migrate(ctx, db); err != nil {
		closeDB()
		return nil, err
	}

	sessionRepo, err := session.NewSQLite(&session.SQLiteConfig{DB: db})
	if err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	guessRepo, err := guess.NewSQLite(&guess.SQLiteConfig{DB: db})
	if err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to create guess repository: %w", err)
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite store")

	return &stores{
		sessionRepo: sessionRepo,
		guessRepo:   guessRepo,
		local:       kv.NewMemory(),
		health: map[string]api.HealthCheck{
			"sqlite": db.PingContext,
		},
		close: closeDB,
	}, nil
}
