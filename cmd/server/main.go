package main

import (
	"log"
	"time"

	"vitality/internal/activity"
	"vitality/internal/config"
	"vitality/internal/database"
	"vitality/internal/kvstore"
	"vitality/internal/meals"
	"vitality/internal/models"
	"vitality/internal/notifier"
	"vitality/internal/server"
	"vitality/internal/weather"
	"vitality/internal/workout"

	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	kv := openStore()
	catalog, vocabulary := loadCatalogs()

	location := cfg.Weather.Location
	log.Printf("Weather location: %s (%.4f, %.4f)", location.Name, location.Latitude, location.Longitude)

	client := weather.NewOpenMeteoClient(location.Latitude, location.Longitude)
	cached := weather.NewCachedProvider(client, kv, time.Duration(cfg.Weather.CacheTTLMinutes)*time.Minute)

	store := activity.NewStore(kv)
	store.Subscribe(func(record models.DailyActivity) {
		log.Printf("Activity update: %d steps, %d glasses, %d active minutes",
			record.Steps, record.HydrationGlasses, record.ActiveMinutes)
	})

	defaults := models.NotificationSchedule{
		WaterReminderTime:  cfg.Notifications.WaterReminderTime,
		MealSuggestionTime: cfg.Notifications.MealSuggestionTime,
		Enabled:            cfg.Notifications.Enabled,
	}
	scheduler := notifier.NewScheduler(kv, &notifier.ConsoleNotifier{}, cached, defaults,
		time.Duration(cfg.Notifications.PollIntervalSeconds)*time.Second)

	httpServer := server.NewServer(cached, meals.NewRecommender(catalog),
		meals.NewPantry(kv), meals.NewSavedMeals(kv), vocabulary, store, scheduler)

	log.Println("Starting server on :8080")
	if err := httpServer.Start(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore connects to Redis, falling back to the in-memory store
// when it is unreachable.
func openStore() kvstore.Store {
	redisCfg := config.GetRedisConfig()
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	store, err := kvstore.NewRedisStore(client, redisCfg.KeyPrefix)
	if err != nil {
		log.Printf("Redis unavailable (%v), falling back to in-memory store", err)
		return kvstore.NewMemoryStore()
	}

	log.Printf("Connected to Redis at %s", redisCfg.Addr)
	return store
}

// loadCatalogs reads the seeded recipe, vocabulary and video catalogs
// from MySQL. A missing database or empty tables keep the compiled-in
// catalogs.
func loadCatalogs() ([]models.Recipe, meals.Vocabulary) {
	catalog := meals.DefaultCatalog()
	vocabulary := meals.DefaultVocabulary()

	db, err := database.NewDB(config.GetDatabaseDSN())
	if err != nil {
		log.Printf("Database unavailable (%v), using built-in catalogs", err)
		return catalog, vocabulary
	}
	defer db.Close()

	if recipes, err := db.GetAllRecipes(); err != nil {
		log.Printf("Failed to load recipes: %v", err)
	} else if len(recipes) > 0 {
		log.Printf("Loaded %d recipes from database", len(recipes))
		catalog = recipes
	}

	if names, err := db.GetIngredientVocabulary(); err != nil {
		log.Printf("Failed to load ingredient vocabulary: %v", err)
	} else if len(names) > 0 {
		vocabulary = meals.Vocabulary(names)
	}

	// The low and recovery tiers share one catalog, so their rows are
	// merged before installing.
	gentle := loadVideos(db, models.IntensityLow)
	gentle = append(gentle, loadVideos(db, models.IntensityRecovery)...)
	workout.UseVideoCatalog(models.IntensityLow, gentle)
	workout.UseVideoCatalog(models.IntensityModerate, loadVideos(db, models.IntensityModerate))
	workout.UseVideoCatalog(models.IntensityHigh, loadVideos(db, models.IntensityHigh))

	return catalog, vocabulary
}

func loadVideos(db *database.DB, tier models.Intensity) []models.WorkoutVideo {
	videos, err := db.GetWorkoutVideos(tier)
	if err != nil {
		log.Printf("Failed to load %s workout videos: %v", tier, err)
		return nil
	}
	return videos
}
