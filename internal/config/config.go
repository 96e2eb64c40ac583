package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Engine   EngineConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration

	RunSeeders bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string

	DefaultTTL time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// EngineConfig tunes the career intelligence engine. Defaults match the
// analytics-snapshot posture: bounded scans, long cache TTLs.
type EngineConfig struct {
	PopulationCap       int
	RecommendationPeers int
	PredictionPeers     int

	RecommendationTTL time.Duration
	SkillGapTTL       time.Duration
	PredictionTTL     time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "career-compass"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:                req("DB_HOST"),
		Port:                opt("DB_PORT", "5432"),
		Name:                req("DB_NAME"),
		User:                req("DB_USER"),
		Password:            os.Getenv("DB_PASSWORD"),
		SSLMode:             opt("DB_SSL_MODE", "disable"),
		PoolMaxConns:        int32(intEnv("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:        int32(intEnv("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime: durationEnv("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 30*time.Minute),
		RunSeeders:          boolEnv("DB_RUN_SEEDERS", false),
	}

	cfg.Redis = RedisConfig{
		Host:       opt("REDIS_HOST", "localhost"),
		Port:       opt("REDIS_PORT", "6379"),
		Password:   os.Getenv("REDIS_PASSWORD"),
		DefaultTTL: durationEnv("REDIS_TTL_SECONDS", 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_SECONDS", 15*time.Minute),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_SECONDS", 24*time.Hour),
	}

	cfg.Engine = EngineConfig{
		PopulationCap:       intEnv("ENGINE_POPULATION_CAP", 200),
		RecommendationPeers: intEnv("ENGINE_RECOMMENDATION_PEERS", 5),
		PredictionPeers:     intEnv("ENGINE_PREDICTION_PEERS", 20),
		RecommendationTTL:   durationEnv("ENGINE_RECOMMENDATION_TTL_SECONDS", 24*time.Hour),
		SkillGapTTL:         durationEnv("ENGINE_SKILL_GAP_TTL_SECONDS", 6*time.Hour),
		PredictionTTL:       durationEnv("ENGINE_PREDICTION_TTL_SECONDS", 7*24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func boolEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
