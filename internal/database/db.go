package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vitality/internal/metrics"
	"vitality/internal/models"

	_ "github.com/go-sql-driver/mysql"
)

// DB holds the catalog tables: recipes, workout videos and the
// ingredient vocabulary. Catalogs are written by the seeder and read
// once at startup; the core never mutates them at runtime.
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection and initializes the schema
// dsn format: "username:password@tcp(host:port)/dbname?parseTime=true"
func NewDB(dsn string) (*DB, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool
	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	db := &DB{conn: conn}

	// Initialize schema
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	// MySQL doesn't support multiple statements in one Exec, so we need to split them
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			id BIGINT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			ingredients JSON NOT NULL,
			tags JSON NOT NULL,
			weather_categories JSON NOT NULL,
			prep_time VARCHAR(50) NOT NULL DEFAULT '',
			diet_type VARCHAR(20) NOT NULL DEFAULT 'veg',
			protein VARCHAR(20) NOT NULL DEFAULT '',
			calories VARCHAR(20) NOT NULL DEFAULT '',
			UNIQUE INDEX idx_recipes_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS workout_videos (
			id BIGINT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			duration VARCHAR(50) NOT NULL DEFAULT '',
			channel VARCHAR(100) NOT NULL DEFAULT '',
			tier VARCHAR(20) NOT NULL,
			INDEX idx_workout_videos_tier (tier)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS ingredients (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			UNIQUE INDEX idx_ingredients_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// InsertRecipe inserts one catalog recipe. List fields are stored as
// JSON columns.
func (db *DB) InsertRecipe(recipe models.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	tags, err := json.Marshal(recipe.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	categories, err := json.Marshal(recipe.WeatherCategories)
	if err != nil {
		return fmt.Errorf("failed to encode weather categories: %w", err)
	}

	query := `INSERT INTO recipes (id, name, ingredients, tags, weather_categories, prep_time, diet_type, protein, calories)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	_, err = db.conn.Exec(query, recipe.ID, recipe.Name, ingredients, tags, categories,
		recipe.PrepTime, recipe.DietType, recipe.Protein, recipe.Calories)
	metrics.RecordDBQuery("insert", "recipes", time.Since(start), err)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return fmt.Errorf("duplicate recipe")
		}
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

// GetAllRecipes loads the full recipe catalog in id order.
func (db *DB) GetAllRecipes() ([]models.Recipe, error) {
	query := `SELECT id, name, ingredients, tags, weather_categories, prep_time, diet_type, protein, calories
		FROM recipes ORDER BY id`

	start := time.Now()
	rows, err := db.conn.Query(query)
	metrics.RecordDBQuery("select", "recipes", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var r models.Recipe
		var ingredients, tags, categories []byte
		if err := rows.Scan(&r.ID, &r.Name, &ingredients, &tags, &categories,
			&r.PrepTime, &r.DietType, &r.Protein, &r.Calories); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}

		if err := json.Unmarshal(ingredients, &r.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to decode ingredients for recipe %d: %w", r.ID, err)
		}
		if err := json.Unmarshal(tags, &r.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for recipe %d: %w", r.ID, err)
		}
		if err := json.Unmarshal(categories, &r.WeatherCategories); err != nil {
			return nil, fmt.Errorf("failed to decode weather categories for recipe %d: %w", r.ID, err)
		}

		recipes = append(recipes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipes: %w", err)
	}

	return recipes, nil
}

// InsertWorkoutVideo inserts one tiered catalog video.
func (db *DB) InsertWorkoutVideo(video models.WorkoutVideo) error {
	query := `INSERT INTO workout_videos (id, title, duration, channel, tier) VALUES (?, ?, ?, ?, ?)`

	start := time.Now()
	_, err := db.conn.Exec(query, video.ID, video.Title, video.Duration, video.Channel, string(video.Tier))
	metrics.RecordDBQuery("insert", "workout_videos", time.Since(start), err)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return fmt.Errorf("duplicate workout video")
		}
		return fmt.Errorf("failed to insert workout video: %w", err)
	}
	return nil
}

// GetWorkoutVideos returns the catalog slice for one intensity tier,
// in id order.
func (db *DB) GetWorkoutVideos(tier models.Intensity) ([]models.WorkoutVideo, error) {
	query := `SELECT id, title, duration, channel, tier FROM workout_videos WHERE tier = ? ORDER BY id`

	start := time.Now()
	rows, err := db.conn.Query(query, string(tier))
	metrics.RecordDBQuery("select", "workout_videos", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query workout videos: %w", err)
	}
	defer rows.Close()

	var videos []models.WorkoutVideo
	for rows.Next() {
		var v models.WorkoutVideo
		var t string
		if err := rows.Scan(&v.ID, &v.Title, &v.Duration, &v.Channel, &t); err != nil {
			return nil, fmt.Errorf("failed to scan workout video: %w", err)
		}
		v.Tier = models.Intensity(t)
		videos = append(videos, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout videos: %w", err)
	}

	return videos, nil
}

// InsertIngredient adds one vocabulary entry.
func (db *DB) InsertIngredient(name string) error {
	query := `INSERT INTO ingredients (name) VALUES (?)`

	start := time.Now()
	_, err := db.conn.Exec(query, name)
	metrics.RecordDBQuery("insert", "ingredients", time.Since(start), err)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return fmt.Errorf("duplicate ingredient")
		}
		return fmt.Errorf("failed to insert ingredient: %w", err)
	}
	return nil
}

// GetIngredientVocabulary returns all vocabulary entries sorted by
// name.
func (db *DB) GetIngredientVocabulary() ([]string, error) {
	query := `SELECT name FROM ingredients ORDER BY name`

	start := time.Now()
	rows, err := db.conn.Query(query)
	metrics.RecordDBQuery("select", "ingredients", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()

	var vocabulary []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		vocabulary = append(vocabulary, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}

	return vocabulary, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
