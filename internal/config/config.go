package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// EnvDevelopment switches the process to human-readable logs.
const EnvDevelopment = "DEV"

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Env           string
	Port          string
	LogLevel      string
	DatabaseURL   string
	SessionSecret string
	SessionIssuer string
	CookieSecure  bool
	CORSOrigins   []string

	// ProtectClassRegistration puts POST /cadastro-turma behind the session gate.
	ProtectClassRegistration bool
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Env:           fallback(os.Getenv("APP_ENV"), "production"),
		Port:          fallback(os.Getenv("PORT"), "5000"),
		LogLevel:      fallback(os.Getenv("LOG_LEVEL"), "info"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SessionIssuer: fallback(os.Getenv("SESSION_ISSUER"), "escola-be"),
		CORSOrigins:   parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	if secure, err := strconv.ParseBool(fallback(os.Getenv("SESSION_COOKIE_SECURE"), "false")); err == nil {
		cfg.CookieSecure = secure
	}
	if protect, err := strconv.ParseBool(fallback(os.Getenv("PROTECT_CLASS_REGISTRATION"), "false")); err == nil {
		cfg.ProtectClassRegistration = protect
	}

	if cfg.DatabaseURL == "" {
		dbURL, err := databaseURLFromParts()
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseURL = dbURL
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// IsDevelopment reports whether APP_ENV selects the development profile.
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

// databaseURLFromParts composes a postgres URL from the discrete DB_* variables.
func databaseURLFromParts() (string, error) {
	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	name := strings.TrimSpace(os.Getenv("DB_NAME"))
	if host == "" || name == "" {
		return "", errors.New("DATABASE_URL or DB_HOST and DB_NAME are required")
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, fallback(os.Getenv("DB_PORT"), "5432")),
		Path:   "/" + name,
	}
	user := strings.TrimSpace(os.Getenv("DB_USER"))
	if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
		u.User = url.UserPassword(user, password)
	} else if user != "" {
		u.User = url.User(user)
	}
	q := url.Values{}
	q.Set("sslmode", fallback(os.Getenv("DB_SSLMODE"), "disable"))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
