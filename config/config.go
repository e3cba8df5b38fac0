package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB     int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisPrefsDB     int    `mapstructure:"REDIS_PREFS_DB"`
	RedisBreedDB     int    `mapstructure:"REDIS_BREED_DB"`
	RedisMailQueueDB int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`

	// Breed lookup APIs.
	DogAPIURL string `mapstructure:"DOG_API_URL"`
	CatAPIURL string `mapstructure:"CAT_API_URL"`

	// Outbound email. When the API key is empty, composed messages are
	// only logged.
	EmailAPIKey   string `mapstructure:"EMAIL_API_KEY"`
	EmailFromAddr string `mapstructure:"EMAIL_FROM_ADDR"`
	EmailFromName string `mapstructure:"EMAIL_FROM_NAME"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_PREFS_DB", 1)
	viper.SetDefault("REDIS_BREED_DB", 2)
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "petsitter")
	viper.SetDefault("DOG_API_URL", "https://api.thedogapi.com/v1")
	viper.SetDefault("CAT_API_URL", "https://api.thecatapi.com/v1")
	viper.SetDefault("EMAIL_API_KEY", "")
	viper.SetDefault("EMAIL_FROM_ADDR", "no-reply@petsitter.example")
	viper.SetDefault("EMAIL_FROM_NAME", "PetSitter")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
