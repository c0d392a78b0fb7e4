package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"vitality/internal/activity"
	"vitality/internal/meals"
	"vitality/internal/models"
	"vitality/internal/notifier"
	"vitality/internal/weather"
	"vitality/internal/workout"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type IncrementRequest struct {
	Field string  `json:"field"`
	Delta float64 `json:"delta"`
}

type PantryRequest struct {
	Name string `json:"name"`
}

type SavedMealRequest struct {
	ID int64 `json:"id"`
}

// Server represents the HTTP server
type Server struct {
	weather     *weather.CachedProvider
	recommender *meals.Recommender
	pantry      *meals.Pantry
	saved       *meals.SavedMeals
	vocabulary  meals.Vocabulary
	activity    *activity.Store
	scheduler   *notifier.Scheduler
	mux         *http.ServeMux

	now func() time.Time
}

// NewServer creates a new HTTP server
func NewServer(provider *weather.CachedProvider, recommender *meals.Recommender,
	pantry *meals.Pantry, saved *meals.SavedMeals, vocabulary meals.Vocabulary,
	store *activity.Store, scheduler *notifier.Scheduler) *Server {
	s := &Server{
		weather:     provider,
		recommender: recommender,
		pantry:      pantry,
		saved:       saved,
		vocabulary:  vocabulary,
		activity:    store,
		scheduler:   scheduler,
		mux:         http.NewServeMux(),
		now:         time.Now,
	}

	// Register routes
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/weather", s.handleWeather)
	s.mux.HandleFunc("/weather/refresh", s.handleWeatherRefresh)
	s.mux.HandleFunc("/recommendations/meals", s.handleMealRecommendations)
	s.mux.HandleFunc("/recommendations/workout", s.handleWorkoutRecommendation)
	s.mux.HandleFunc("/recommendations/mood", s.handleMoodPlan)
	s.mux.HandleFunc("/moods", s.handleMoods)
	s.mux.HandleFunc("/activity", s.handleActivity)
	s.mux.HandleFunc("/activity/increment", s.handleActivityIncrement)
	s.mux.HandleFunc("/pantry", s.handlePantry)
	s.mux.HandleFunc("/ingredients/suggest", s.handleIngredientSuggest)
	s.mux.HandleFunc("/meals/saved", s.handleSavedMeals)
	s.mux.HandleFunc("/schedule", s.handleSchedule)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// handleHealth returns the server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status": "healthy",
		"time":   s.now().UTC().String(),
	})
}

// handleWeather returns the current reading with its derived category.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	reading, err := s.weather.Current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	category := weather.Classify(reading)
	writeJSON(w, map[string]interface{}{
		"reading":  reading,
		"category": category,
		"icon":     weather.Icon(category),
	})
}

// handleWeatherRefresh forces a fetch past the cache.
func (s *Server) handleWeatherRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reading, err := s.weather.Refresh()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	category := weather.Classify(reading)
	writeJSON(w, map[string]interface{}{
		"reading":  reading,
		"category": category,
		"icon":     weather.Icon(category),
	})
}

// handleMealRecommendations returns weather-filtered, pantry-scored
// recipes grouped by meal type. The category is derived from live
// weather unless overridden with ?category=.
func (s *Server) handleMealRecommendations(w http.ResponseWriter, r *http.Request) {
	var category models.WeatherCategory
	if override := r.URL.Query().Get("category"); override != "" {
		category = models.WeatherCategory(override)
	} else {
		reading, err := s.weather.Current()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		category = weather.Classify(reading)
	}

	pantry, err := s.pantry.Items()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	buckets := s.recommender.Recommend(category, pantry)
	writeJSON(w, map[string]interface{}{
		"category":        category,
		"pantry":          pantry,
		"recommendations": buckets,
	})
}

// handleWorkoutRecommendation builds a metrics snapshot from today's
// activity record and the live weather, then runs the intensity
// cascade over it.
func (s *Server) handleWorkoutRecommendation(w http.ResponseWriter, r *http.Request) {
	record, err := s.activity.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	condition := ""
	if reading, err := s.weather.Current(); err == nil {
		condition = reading.Condition
	}

	snapshot := models.MetricsSnapshot{
		SleepQuality:     record.SleepScore,
		StressLevel:      record.StressScore,
		Soreness:         record.SorenessScore,
		StepsToday:       record.Steps,
		HourOfDay:        s.now().Hour(),
		WeatherCondition: condition,
	}

	writeJSON(w, workout.Recommend(snapshot))
}

// handleMoodPlan returns the plan and greeting for ?mood=.
func (s *Server) handleMoodPlan(w http.ResponseWriter, r *http.Request) {
	mood := r.URL.Query().Get("mood")
	if mood == "" {
		http.Error(w, "mood query parameter is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]interface{}{
		"plan":     workout.PlanFor(mood),
		"greeting": workout.GreetingFor(mood, s.now().Hour()),
	})
}

// handleMoods lists the selectable moods.
func (s *Server) handleMoods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"moods": workout.Moods()})
}

// handleActivity reads or updates today's activity record.
func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		record, err := s.activity.Get()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, record)

	case http.MethodPost:
		var update activity.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		record, err := s.activity.Update(update)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, record)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleActivityIncrement applies a delta to one counter field.
func (s *Server) handleActivityIncrement(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req IncrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	record, err := s.activity.Increment(req.Field, req.Delta)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, record)
}

// handlePantry lists, adds or removes pantry ingredients.
func (s *Server) handlePantry(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.pantry.Items()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{"items": items})

	case http.MethodPost, http.MethodDelete:
		var req PantryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		var err error
		if r.Method == http.MethodPost {
			err = s.pantry.Add(req.Name)
		} else {
			err = s.pantry.Remove(req.Name)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		items, err := s.pantry.Items()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{"items": items})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleIngredientSuggest returns autocomplete matches for ?q=.
func (s *Server) handleIngredientSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	writeJSON(w, map[string]interface{}{
		"query":       query,
		"suggestions": s.vocabulary.Suggest(query),
	})
}

// handleSavedMeals lists, saves or unsaves recipe ids.
func (s *Server) handleSavedMeals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		ids, err := s.saved.IDs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{"ids": ids})

	case http.MethodPost, http.MethodDelete:
		var req SavedMealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.ID <= 0 {
			http.Error(w, "id must be positive, got "+strconv.FormatInt(req.ID, 10), http.StatusBadRequest)
			return
		}

		var err error
		if r.Method == http.MethodPost {
			err = s.saved.Save(req.ID)
		} else {
			err = s.saved.Unsave(req.ID)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		ids, err := s.saved.IDs()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]interface{}{"ids": ids})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSchedule reads or replaces the notification schedule.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.scheduler.Schedule())

	case http.MethodPut:
		var schedule models.NotificationSchedule
		if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.scheduler.SetSchedule(schedule); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, s.scheduler.Schedule())

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
