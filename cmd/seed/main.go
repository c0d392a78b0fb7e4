package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"vitality/internal/config"
	"vitality/internal/database"
	"vitality/internal/meals"
	"vitality/internal/models"
	"vitality/internal/workout"
)

func main() {
	// Load config for database connection
	config.Load("./config.yaml")

	// Initialize database
	db, err := database.NewDB(config.GetDatabaseDSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seedRecipes(db, "recipes_seed.csv")
	seedVocabulary(db)
	seedVideos(db)
}

// seedRecipes imports the recipe catalog from CSV. List columns use
// "|" as the separator. When the file is missing the compiled-in
// catalog is inserted instead.
func seedRecipes(db *database.DB, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("No CSV file at %s, seeding built-in catalog", csvPath)
		count := 0
		for _, recipe := range meals.DefaultCatalog() {
			if err := db.InsertRecipe(recipe); err != nil {
				if err.Error() == "duplicate recipe" {
					continue
				}
				log.Printf("Failed to insert recipe %s: %v", recipe.Name, err)
				continue
			}
			count++
		}
		log.Printf("Seeded %d built-in recipes", count)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Read header row
	header, err := reader.Read()
	if err != nil {
		log.Fatalf("Failed to read CSV header: %v", err)
	}
	log.Printf("CSV Header: %v\n", header)

	count := 0
	skipped := 0

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Fatalf("Failed to read CSV record: %v", err)
		}

		if len(record) < 9 {
			log.Printf("Skipping invalid record: %v", record)
			skipped++
			continue
		}

		id, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			log.Printf("Skipping record with invalid id: %v", record)
			skipped++
			continue
		}

		recipe := models.Recipe{
			ID:                id,
			Name:              record[1],
			Ingredients:       splitList(record[2]),
			Tags:              splitList(record[3]),
			WeatherCategories: splitCategories(record[4]),
			PrepTime:          record[5],
			DietType:          record[6],
			Protein:           record[7],
			Calories:          record[8],
		}

		if len(recipe.Ingredients) == 0 || len(recipe.Tags) == 0 || len(recipe.WeatherCategories) == 0 {
			log.Printf("Skipping recipe with empty list column: %v", record)
			skipped++
			continue
		}

		if err := db.InsertRecipe(recipe); err != nil {
			if err.Error() == "duplicate recipe" {
				log.Printf("Recipe already exists: %s", recipe.Name)
			} else {
				log.Printf("Failed to insert recipe %s: %v", recipe.Name, err)
			}
			skipped++
			continue
		}

		count++
		if count%100 == 0 {
			log.Printf("Inserted %d recipes...", count)
		}
	}

	log.Printf("Import complete! Successfully inserted %d recipes, skipped %d", count, skipped)
}

func seedVocabulary(db *database.DB) {
	count := 0
	for _, name := range meals.DefaultVocabulary() {
		if err := db.InsertIngredient(name); err != nil {
			if err.Error() == "duplicate ingredient" {
				continue
			}
			log.Printf("Failed to insert ingredient %s: %v", name, err)
			continue
		}
		count++
	}
	log.Printf("Seeded %d vocabulary ingredients", count)
}

func seedVideos(db *database.DB) {
	count := 0
	for _, tier := range []models.Intensity{models.IntensityLow, models.IntensityModerate, models.IntensityHigh} {
		for _, video := range workout.VideosFor(tier) {
			if err := db.InsertWorkoutVideo(video); err != nil {
				if err.Error() == "duplicate workout video" {
					continue
				}
				log.Printf("Failed to insert workout video %s: %v", video.Title, err)
				continue
			}
			count++
		}
	}
	log.Printf("Seeded %d workout videos", count)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitCategories(s string) []models.WeatherCategory {
	var out []models.WeatherCategory
	for _, part := range splitList(s) {
		out = append(out, models.WeatherCategory(part))
	}
	return out
}
