package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory", a SQLite file path, or a PostgreSQL DSN
	}
	Auth struct {
		JWTSecret string        `mapstructure:"jwt_secret"`
		TokenTTL  time.Duration `mapstructure:"token_ttl"`
	}
	Scheduler struct {
		PlanRefreshCron string `mapstructure:"plan_refresh_cron"` // empty disables the job
		Timezone        string `mapstructure:"timezone"`
	}
	News struct {
		DefaultLimit int  `mapstructure:"default_limit"`
		SeedOnStart  bool `mapstructure:"seed_on_start"`
	}
	Cors struct {
		AllowedOrigin string `mapstructure:"allowed_origin"`
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

const devJWTSecret = "nutriplan-dev-secret-change-me"

// LoadConfig loads configuration from an optional .env file, the config file
// and environment variables, in increasing order of precedence.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: [Config] No .env file found, relying on process environment.")
	}

	viper.SetConfigName("config")    // Name of config file (without extension)
	viper.SetConfigType("yaml")      // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("./config")  // Path to look for the config file in
	viper.AddConfigPath(".")         // Optionally look for config in the working directory
	viper.AddConfigPath("../config") // For running from locations like tests

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	applyEnvOverrides(&AppConfig)

	if AppConfig.Auth.JWTSecret == "" {
		AppConfig.Auth.JWTSecret = devJWTSecret
		log.Println("WARN: [Config] auth.jwt_secret is not set; using the built-in development secret. Set JWT_SECRET in production.")
	}
	log.Println("INFO: [Config] Configuration loading complete.")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.dsn", "memory")
	v.SetDefault("auth.token_ttl", "72h")
	v.SetDefault("scheduler.plan_refresh_cron", "")
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("news.default_limit", 10)
	v.SetDefault("news.seed_on_start", true)
	v.SetDefault("cors.allowed_origin", "*")
}

// applyEnvOverrides lets deployment environments override the handful of
// settings that usually differ between machines.
func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
		log.Println("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if spec := os.Getenv("PLAN_REFRESH_CRON"); spec != "" {
		cfg.Scheduler.PlanRefreshCron = spec
		log.Printf("INFO: [Config] Plan refresh schedule overridden by environment variable PLAN_REFRESH_CRON: %s", spec)
	}
}
