package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	StorageDriver     string `mapstructure:"STORAGE_DRIVER"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB  int    `mapstructure:"REDIS_DRAFT_DB"`
	EventQueueDB  int    `mapstructure:"EVENT_QUEUE_DB"`

	// Interview scheduling.
	SlotDuration  time.Duration `mapstructure:"SLOT_DURATION"`
	DraftTTL      time.Duration `mapstructure:"DRAFT_TTL"`
	ClientTimeout time.Duration `mapstructure:"CLIENT_TIMEOUT"`
	Holidays      []string      `mapstructure:"HOLIDAYS"`
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
	viper.SetDefault("EVENT_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "hirewire")
	viper.SetDefault("STORAGE_DRIVER", "mongo")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SLOT_DURATION", "1h")
	viper.SetDefault("DRAFT_TTL", "30m")
	viper.SetDefault("CLIENT_TIMEOUT", "15s")
	viper.SetDefault("HOLIDAYS", []string{})

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

// UseMemoryStorage reports whether slot groups are kept in process instead of MongoDB.
func UseMemoryStorage() bool {
	return strings.EqualFold(AppConfig.StorageDriver, "memory")
}
