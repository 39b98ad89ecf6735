package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	SubmissionCollection         string
	FailedNotificationCollection string
	Timeout                      time.Duration
	ServerLog                    *log.Logger
	NotifyEndpoint               string
	NotifyDestination            string
	NotifyTimeout                time.Duration
	AllowedOrigins               []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	// 通知エンドポイントが未設定のときは管理者通知そのものを無効化する。
	notifyEndpoint := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_URL"))
	notifyDestination := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION"))

	notifyTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			notifyTimeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "formgate"),
		SubmissionCollection:         envOrDefault("SUBMISSION_COLLECTION", "submissions"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		ServerLog:                    log.New(os.Stdout, "[formgate-api] ", log.LstdFlags|log.Lshortfile),
		NotifyEndpoint:               notifyEndpoint,
		NotifyDestination:            notifyDestination,
		NotifyTimeout:                notifyTimeout,
		AllowedOrigins:               allowedOrigins,
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
