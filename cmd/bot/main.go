package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aadsleague/invitemgr/internal/common/clock"
	"github.com/aadsleague/invitemgr/internal/handlers/discord"
	remoteRepo "github.com/aadsleague/invitemgr/internal/repositories/remote"
	snapshotRepo "github.com/aadsleague/invitemgr/internal/repositories/snapshot"
	"github.com/aadsleague/invitemgr/internal/services/series"
)

type config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_KEY"`
}

func main() {
	// Load .env if present; real environments set vars directly
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	snapRepo, err := snapshotRepo.NewRedis(&snapshotRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}

	// Cloud sync is optional; push/pull report the store as unconfigured when absent
	var remoteStore remoteRepo.Store
	supabase, err := remoteRepo.NewSupabase(&remoteRepo.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
	})
	switch {
	case err == nil:
		remoteStore = supabase
	case errors.Is(err, remoteRepo.ErrNotConfigured):
		log.Println("Supabase credentials not set, cloud sync disabled")
	default:
		log.Fatalf("Failed to create remote store: %v", err)
	}

	// Initialize series service
	seriesSvc, err := series.New(&series.Config{
		SnapshotRepo: snapRepo,
		RemoteStore:  remoteStore,
		Clock:        &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create series service: %v", err)
	}

	// Restore persisted state, seeding the demo dataset on first run
	loadOut, err := seriesSvc.Load(ctx, &series.LoadInput{})
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	if !loadOut.Restored {
		seedOut, err := seriesSvc.SeedDemoData(ctx, &series.SeedDemoDataInput{})
		if err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Printf("Seeded demo data: %d players, %d events, %d participations",
			seedOut.Players, seedOut.Events, seedOut.Participations)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		SeriesService: seriesSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
