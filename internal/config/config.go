package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

var (
	instance *Config
	once     sync.Once
)

// Config - can/will add more later
type Config struct {
	Weather struct {
		CacheTTLMinutes int      `yaml:"cache_ttl_minutes"`
		Location        Location `yaml:"location"`
	} `yaml:"weather"`
	Notifications struct {
		WaterReminderTime   string `yaml:"water_reminder_time"`
		MealSuggestionTime  string `yaml:"meal_suggestion_time"`
		Enabled             bool   `yaml:"enabled"`
		PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	} `yaml:"notifications"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

func Load(configPath string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file %s: %w", configPath, readErr)
			return
		}

		if parseErr := yaml.Unmarshal(data, instance); parseErr != nil {
			err = fmt.Errorf("failed to parse config: %w", parseErr)
			return
		}

		instance.applyDefaults()

		if validateErr := instance.validate(); validateErr != nil {
			err = validateErr
			return
		}
	})

	return instance, err
}

func Get() *Config {
	if instance == nil {
		panic("config not loaded - call config.Load() first")
	}
	return instance
}

func (c *Config) applyDefaults() {
	if c.Weather.CacheTTLMinutes == 0 {
		c.Weather.CacheTTLMinutes = 30
	}
	if c.Notifications.PollIntervalSeconds == 0 {
		c.Notifications.PollIntervalSeconds = 60
	}
	if c.Notifications.WaterReminderTime == "" {
		c.Notifications.WaterReminderTime = "10:00"
	}
	if c.Notifications.MealSuggestionTime == "" {
		c.Notifications.MealSuggestionTime = "11:30"
	}
}

func (c *Config) validate() error {
	if c.Weather.Location.Name == "" {
		return fmt.Errorf("weather.location.name cannot be empty")
	}
	if c.Weather.Location.Latitude < -90 || c.Weather.Location.Latitude > 90 {
		return fmt.Errorf("weather.location.latitude must be between -90 and 90")
	}
	if c.Weather.Location.Longitude < -180 || c.Weather.Location.Longitude > 180 {
		return fmt.Errorf("weather.location.longitude must be between -180 and 180")
	}
	if !validClock(c.Notifications.WaterReminderTime) {
		return fmt.Errorf("notifications.water_reminder_time must be HH:MM, got %q", c.Notifications.WaterReminderTime)
	}
	if !validClock(c.Notifications.MealSuggestionTime) {
		return fmt.Errorf("notifications.meal_suggestion_time must be HH:MM, got %q", c.Notifications.MealSuggestionTime)
	}
	return nil
}

// validClock reports whether s is a 24h "HH:MM" clock value.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59
}
