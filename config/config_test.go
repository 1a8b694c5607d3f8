package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("NOTES_TEST_VALUE", "set")

	assert.Equal(t, "set", GetEnv("NOTES_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NOTES_TEST_MISSING", "fallback"))
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "Unset uses default", value: "", expected: time.Minute},
		{name: "Valid duration", value: "30s", expected: 30 * time.Second},
		{name: "Garbage uses default", value: "often", expected: time.Minute},
		{name: "Negative uses default", value: "-5m", expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NOTES_TEST_INTERVAL", tt.value)
			assert.Equal(t, tt.expected, GetDuration("NOTES_TEST_INTERVAL", time.Minute))
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DB_PATH", "LOG_LEVEL", "CORS_ORIGINS", "CHECKPOINT_INTERVAL"} {
		t.Setenv(key, "")
	}

	Load()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "./data/notes.db", AppConfig.DBPath)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, "*", AppConfig.CORSOrigins)
	assert.Equal(t, 5*time.Minute, AppConfig.CheckpointInterval)
}
