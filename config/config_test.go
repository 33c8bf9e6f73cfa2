package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"INTAKE_STORE", "INTAKE_SOURCE_TAG", "INTAKE_REQUIRE_AUTH", "INTAKE_COLLECT_AD_ATTRIBUTION",
		"INTAKE_GREETING_DELAY", "INTAKE_SESSION_TTL", "INTAKE_RUN_MIGRATIONS", "INTAKE_SUMMARY_CRON",
		"INTAKE_REDIS_ADDR", "INTAKE_REDIS_PASSWORD", "INTAKE_REDIS_DB", "INTAKE_ADMIN_SESSION_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INTAKE_STORE", "Memory")
	t.Setenv("INTAKE_SOURCE_TAG", "front-desk")
	t.Setenv("INTAKE_REQUIRE_AUTH", "true")
	t.Setenv("INTAKE_COLLECT_AD_ATTRIBUTION", "1")
	t.Setenv("INTAKE_GREETING_DELAY", "0s")
	t.Setenv("INTAKE_SESSION_TTL", "5m")

	cfg := Load()
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "front-desk", cfg.SourceTag)
	assert.True(t, cfg.RequireAuth)
	assert.True(t, cfg.CollectAdAttribution)
	assert.Equal(t, time.Duration(0), cfg.GreetingDelay)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
}

func TestLoad_BadValuesKeepDefaults(t *testing.T) {
	t.Setenv("INTAKE_STORE", "postgres")
	t.Setenv("INTAKE_REQUIRE_AUTH", "maybe")
	t.Setenv("INTAKE_SESSION_TTL", "soon")

	cfg := Load()
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.False(t, cfg.RequireAuth)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
