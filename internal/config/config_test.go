package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "formgate", cfg.MongoDatabase)
	assert.Equal(t, "submissions", cfg.SubmissionCollection)
	assert.Equal(t, "failed_notifications", cfg.FailedNotificationCollection)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, "", cfg.NotifyEndpoint, "notifications are disabled unless an endpoint is configured")
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.NotNil(t, cfg.ServerLog)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "contact")
	t.Setenv("SUBMISSION_COLLECTION", "entries")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2s")
	t.Setenv("MESSENGER_GATEWAY_URL", " https://gateway.example.com/ ")
	t.Setenv("MESSENGER_GATEWAY_DESTINATION", "discord")
	t.Setenv("MESSENGER_GATEWAY_TIMEOUT", "500ms")
	t.Setenv("API_ALLOWED_ORIGINS", "https://example.com, https://www.example.com ,")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "contact", cfg.MongoDatabase)
	assert.Equal(t, "entries", cfg.SubmissionCollection)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "https://gateway.example.com/", cfg.NotifyEndpoint)
	assert.Equal(t, "discord", cfg.NotifyDestination)
	assert.Equal(t, 500*time.Millisecond, cfg.NotifyTimeout)
	assert.Equal(t, []string{"https://example.com", "https://www.example.com"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT", "not-a-duration")
	t.Setenv("MESSENGER_GATEWAY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 3*time.Second, cfg.NotifyTimeout)
}
