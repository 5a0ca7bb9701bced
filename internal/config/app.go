package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// AppConfig holds server-level configuration, read once at process start.
type AppConfig struct {
	JWTSecret          string
	JWTExpirationHours int64
	CookieMaxAge       int // seconds; independent from the token expiry
	ServerPort         string
	FrontendURL        string
	Production         bool
}

// LoadAppConfig reads server configuration from environment variables,
// applying defaults for anything unset or invalid.
func LoadAppConfig() *AppConfig {
	cfg := &AppConfig{
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpirationHours: 24,
		CookieMaxAge:       3600,
		ServerPort:         os.Getenv("SERVER_PORT"),
		FrontendURL:        os.Getenv("FRONTEND_URL"),
		Production:         os.Getenv("APP_ENV") == "production",
	}

	if cfg.JWTSecret == "" {
		// Matches the documented fallback. Insecure for anything beyond
		// local development.
		cfg.JWTSecret = "default_secret"
		log.Warn().Msg("JWT_SECRET not set, using insecure default")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			log.Warn().Str("value", v).Msg("Invalid JWT_EXPIRATION_HOURS, defaulting to 24")
		} else {
			cfg.JWTExpirationHours = parsed
		}
	}

	if v := os.Getenv("COOKIE_MAX_AGE_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			log.Warn().Str("value", v).Msg("Invalid COOKIE_MAX_AGE_SECONDS, defaulting to 3600")
		} else {
			cfg.CookieMaxAge = parsed
		}
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:3000"
	}

	return cfg
}
