package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Store                string
	SourceTag            string
	RequireAuth          bool
	CollectAdAttribution bool
	GreetingDelay        time.Duration
	SessionTTL           time.Duration
	RunMigrations        bool
	SummaryCron          string
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	AdminSessionTTL      time.Duration
}

func Default() Config {
	return Config{
		Store:           StoreMongo,
		SourceTag:       "intake-kiosk",
		GreetingDelay:   2 * time.Second,
		SessionTTL:      30 * time.Minute,
		SummaryCron:     "0 23 * * *",
		AdminSessionTTL: 12 * time.Hour,
	}
}

/*
* Start from defaults
* Override with any INTAKE_* variable that is set, the .env file is loaded by main before this
* Values that fail to parse keep the default and are logged
 */
func Load() Config {
	cfg := Default()
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("INTAKE_STORE"))); v != "" {
		if v == StoreMongo || v == StoreMemory {
			cfg.Store = v
		} else {
			log.Println("Unknown INTAKE_STORE, using mongo: ", v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("INTAKE_SOURCE_TAG")); v != "" {
		cfg.SourceTag = v
	}
	if v := strings.TrimSpace(os.Getenv("INTAKE_SUMMARY_CRON")); v != "" {
		cfg.SummaryCron = v
	}
	cfg.RedisAddr = strings.TrimSpace(os.Getenv("INTAKE_REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("INTAKE_REDIS_PASSWORD")
	if v := strings.TrimSpace(os.Getenv("INTAKE_REDIS_DB")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Println("Error parsing INTAKE_REDIS_DB: ", err)
		} else {
			cfg.RedisDB = n
		}
	}
	cfg.RequireAuth = boolEnv("INTAKE_REQUIRE_AUTH", cfg.RequireAuth)
	cfg.CollectAdAttribution = boolEnv("INTAKE_COLLECT_AD_ATTRIBUTION", cfg.CollectAdAttribution)
	cfg.RunMigrations = boolEnv("INTAKE_RUN_MIGRATIONS", cfg.RunMigrations)
	cfg.GreetingDelay = durationEnv("INTAKE_GREETING_DELAY", cfg.GreetingDelay)
	cfg.SessionTTL = durationEnv("INTAKE_SESSION_TTL", cfg.SessionTTL)
	cfg.AdminSessionTTL = durationEnv("INTAKE_ADMIN_SESSION_TTL", cfg.AdminSessionTTL)
	return cfg
}

func boolEnv(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Println("Error parsing ", key, ": ", err)
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Println("Error parsing ", key, ": ", raw)
		return def
	}
	return v
}
