package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port string

	DBDriver string
	DBDSN    string

	LogLevel  string
	LogFormat string
	LogFile   string
	AppName   string

	JWTSecret string
	TokenTTL  time.Duration

	AdminEmails []string
	CORSOrigins []string

	// Requests por minuto y por IP contra /auth/login. 0 = sin límite.
	LoginRateLimit int
	// Si es true la IP del cliente sale de X-Forwarded-For / X-Real-IP.
	TrustProxyHeaders bool
}

// Load lee la configuración desde env. Si existe un .env en el cwd, se carga
// primero (sin pisar variables ya exportadas).
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv construye la configuración usando getenv (inyectable para tests).
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        withDefault(getenv("PORT"), "5000"),
		DBDriver:    strings.ToLower(withDefault(getenv("DB_DRIVER"), DriverMemory)),
		DBDSN:       strings.TrimSpace(getenv("DB_DSN")),
		LogLevel:    getenv("LOG_LEVEL"),
		LogFormat:   getenv("LOG_FORMAT"),
		LogFile:     strings.TrimSpace(getenv("LOG_FILE")),
		AppName:     withDefault(getenv("APP_NAME"), "family-care"),
		JWTSecret:   strings.TrimSpace(getenv("JWT_SECRET")),
		TokenTTL:    24 * time.Hour,
		AdminEmails: splitList(getenv("ADMIN_EMAILS")),
		CORSOrigins: splitList(withDefault(getenv("CORS_ORIGINS"), "*")),

		LoginRateLimit: 10,
	}

	// Compat: DB_DSN sin DB_DRIVER implica postgres (como antes).
	if strings.TrimSpace(getenv("DB_DRIVER")) == "" && cfg.DBDSN != "" {
		cfg.DBDriver = DriverPostgres
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("config: DB_DSN required for driver %q", cfg.DBDriver)
		}
	default:
		return Config{}, fmt.Errorf("config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if v := strings.TrimSpace(getenv("TOKEN_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("config: invalid TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = d
	}

	if v := strings.TrimSpace(getenv("LOGIN_RATE_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("config: invalid LOGIN_RATE_LIMIT %q", v)
		}
		cfg.LoginRateLimit = n
	}

	if v := getenv("TRUST_PROXY_HEADERS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TRUST_PROXY_HEADERS %q", v)
		}
		cfg.TrustProxyHeaders = b
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
