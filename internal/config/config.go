// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Places   PlacesConfig
	Identity IdentityConfig
	SMTP     SMTPConfig
	Log      LogConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
	// PublicBaseURL is where invitation links point, e.g. "https://api.wanderlog.app".
	PublicBaseURL string
}

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type JWTConfig struct {
	Secret string
}

type PlacesConfig struct {
	APIKey        string
	BaseURL       string
	PhotoURL      string
	PhotoMaxWidth int
}

type IdentityConfig struct {
	TokenInfoURL string
	// ClientID switches login to local ID-token validation with this audience.
	ClientID string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool
}

type LogConfig struct {
	Level  string
	Format string
}

type HTTPConfig struct {
	ClientTimeout time.Duration
	CORSOrigins   []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "Wanderlog")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")

	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("PLACES_PHOTO_URL", "https://maps.googleapis.com/maps/api/place/photo")
	v.SetDefault("PLACES_PHOTO_MAX_WIDTH", 400)

	v.SetDefault("GOOGLE_TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo")

	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USE_SSL", false)
	v.SetDefault("SMTP_REQUIRE_TLS", true)
	v.SetDefault("SMTP_FROM_NAME", "Wanderlog")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "")

	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("CORS_ORIGINS", "")
}

// Load reads an optional .env file and then the process environment.
// DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Env:           v.GetString("APP_ENV"),
			Port:          v.GetString("PORT"),
			PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{Secret: v.GetString("JWT_SECRET")},
		Places: PlacesConfig{
			APIKey:        v.GetString("GOOGLE_PLACES_API_KEY"),
			BaseURL:       strings.TrimRight(v.GetString("PLACES_BASE_URL"), "/"),
			PhotoURL:      v.GetString("PLACES_PHOTO_URL"),
			PhotoMaxWidth: v.GetInt("PLACES_PHOTO_MAX_WIDTH"),
		},
		Identity: IdentityConfig{
			TokenInfoURL: v.GetString("GOOGLE_TOKENINFO_URL"),
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		},
		SMTP: SMTPConfig{
			Host:       v.GetString("SMTP_HOST"),
			Port:       v.GetInt("SMTP_PORT"),
			Username:   v.GetString("SMTP_USERNAME"),
			Password:   v.GetString("SMTP_PASSWORD"),
			From:       v.GetString("SMTP_FROM"),
			FromName:   v.GetString("SMTP_FROM_NAME"),
			UseSSL:     v.GetBool("SMTP_USE_SSL"),
			RequireTLS: v.GetBool("SMTP_REQUIRE_TLS"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		HTTP: HTTPConfig{
			ClientTimeout: v.GetDuration("HTTP_CLIENT_TIMEOUT"),
			CORSOrigins:   splitCSV(v.GetString("CORS_ORIGINS")),
		},
	}

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	var missing []string
	if cfg.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
