package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitality/internal/config"
	"vitality/internal/kvstore"
	"vitality/internal/models"
	"vitality/internal/notifier"
	"vitality/internal/weather"

	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisCfg := config.GetRedisConfig()
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	var kv kvstore.Store
	kv, err = kvstore.NewRedisStore(client, redisCfg.KeyPrefix)
	if err != nil {
		log.Printf("Redis unavailable (%v), falling back to in-memory store", err)
		kv = kvstore.NewMemoryStore()
	}

	location := cfg.Weather.Location
	provider := weather.NewCachedProvider(
		weather.NewOpenMeteoClient(location.Latitude, location.Longitude),
		kv, time.Duration(cfg.Weather.CacheTTLMinutes)*time.Minute)

	defaults := models.NotificationSchedule{
		WaterReminderTime:  cfg.Notifications.WaterReminderTime,
		MealSuggestionTime: cfg.Notifications.MealSuggestionTime,
		Enabled:            cfg.Notifications.Enabled,
	}
	scheduler := notifier.NewScheduler(kv, &notifier.ConsoleNotifier{}, provider, defaults,
		time.Duration(cfg.Notifications.PollIntervalSeconds)*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go scheduler.Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Println("Notifier running. Press Ctrl+C to stop...")
	<-quit

	log.Println("Shutting down notifier...")
	cancel()
}
