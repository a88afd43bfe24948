package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Upstream scheduling API.
	MindbodyBaseURL  string `mapstructure:"MINDBODY_BASE_URL"`
	MindbodySiteID   string `mapstructure:"MINDBODY_SITE_ID"`
	MindbodyUsername string `mapstructure:"MINDBODY_USERNAME"`
	MindbodyPassword string `mapstructure:"MINDBODY_PASSWORD"`
	MindbodyRPS      int    `mapstructure:"MINDBODY_RPS"`

	// Redis configuration (token mirror).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Read environment variables.
	viper.AutomaticEnv()

	// Set defaults.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("MINDBODY_BASE_URL", "https://api.mindbodyonline.com/public/v6")
	viper.SetDefault("MINDBODY_SITE_ID", "")
	viper.SetDefault("MINDBODY_USERNAME", "")
	viper.SetDefault("MINDBODY_PASSWORD", "")
	viper.SetDefault("MINDBODY_RPS", 5)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
