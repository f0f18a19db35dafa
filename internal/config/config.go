package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

type Config struct {
	Env      Env
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Evidence uploads land under this directory (fs blob store).
	EvidenceBasePath string

	AuthHMACSecret string
	TokenTTL       time.Duration

	CORSOrigins []string
}

func FromEnv() Config {
	env := Env(os.Getenv("APP_ENV"))
	if env == "" {
		env = EnvDev
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Env:              env,
		HTTPAddr:         addr,
		DBDriver:         envOr("DB_DRIVER", "sqlite"),
		DBDSN:            envOr("DB_DSN", ""),
		EvidenceBasePath: envOr("EVIDENCE_BASE_PATH", "./data/evidence"),
		AuthHMACSecret:   envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		TokenTTL:         envDuration("TOKEN_TTL_HOURS", 8*time.Hour),
		CORSOrigins:      csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	hours, err := strconv.Atoi(v)
	if err != nil || hours <= 0 {
		return def
	}
	return time.Duration(hours) * time.Hour
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
