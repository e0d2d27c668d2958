package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config application configuration
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
	Birthday BirthdayConfig `yaml:"birthday"`
	AI       AIConfig       `yaml:"ai"`
}

// AppConfig general application settings
type AppConfig struct {
	Env string `yaml:"env"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig MySQL settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// RedisConfig Redis settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

// BirthdayConfig business rules for the birthday lifecycle.
// GracePeriodDays is how many days past the target day a page stays
// celebrating before it switches to the expired view.
type BirthdayConfig struct {
	GracePeriodDays int    `yaml:"grace_period_days"`
	DefaultMusicURL string `yaml:"default_music_url"`
	DefaultPhotoURL string `yaml:"default_photo_url"`
	ShareBaseURL    string `yaml:"share_base_url"`
}

// AIConfig external layout/TTS service settings
type AIConfig struct {
	Enabled        bool   `yaml:"enabled"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads a yaml config file and applies env var overrides
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()
	if cfg.Birthday.GracePeriodDays < 0 {
		cfg.Birthday.GracePeriodDays = 0
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App:    AppConfig{Env: "local"},
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			Host: "127.0.0.1",
			Port: 3306,
			User: "bliss",
			Name: "bliss",
		},
		Redis: RedisConfig{
			Host:     "127.0.0.1",
			Port:     6379,
			PoolSize: 10,
		},
		CORS: CORSConfig{AllowOrigins: "http://localhost:3000"},
		Birthday: BirthdayConfig{
			GracePeriodDays: 1,
			DefaultMusicURL: "/music/happy-birthday-classic.mp3",
			DefaultPhotoURL: "https://placehold.co/400x400.png",
			ShareBaseURL:    "http://localhost:3000",
		},
		AI: AIConfig{TimeoutSeconds: 15},
	}
}

// applyEnvOverrides lets env vars win over yaml values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Redis.Port = p
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.CORS.AllowOrigins = v
	}
	if v := os.Getenv("BIRTHDAY_GRACE_PERIOD_DAYS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil && d >= 0 {
			c.Birthday.GracePeriodDays = d
		}
	}
	if v := os.Getenv("SHARE_BASE_URL"); v != "" {
		c.Birthday.ShareBaseURL = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
		c.AI.Enabled = true
	}
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev" || c.App.Env == "local"
}

// DSN builds the MySQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Name)
}
