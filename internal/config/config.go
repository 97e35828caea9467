package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultServerAddr = ":8080"
const defaultChannelID = "TransferApp"
const defaultChannelKey = "TransferKey001"
const defaultLockMaxAttempts = 1000
const defaultLockRetryDelay = 100 * time.Microsecond
const defaultLogLevel = "info"

type Config struct {
	ServerAddr      string
	ChannelID       string
	ChannelKey      string
	LockMaxAttempts int
	LockRetryDelay  time.Duration
	WebhookURL      string
	LogLevel        string
}

func Load() (Config, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	addr := strings.TrimSpace(os.Getenv("SERVER_ADDR"))
	if addr == "" {
		addr = defaultServerAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	lockMaxAttempts := defaultLockMaxAttempts
	if raw := strings.TrimSpace(os.Getenv("LOCK_MAX_ATTEMPTS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			lockMaxAttempts = parsed
		}
	}

	lockRetryDelay := defaultLockRetryDelay
	if raw := strings.TrimSpace(os.Getenv("LOCK_RETRY_DELAY")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			lockRetryDelay = parsed
		}
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	return Config{
		ServerAddr:      addr,
		ChannelID:       channelID,
		ChannelKey:      channelKey,
		LockMaxAttempts: lockMaxAttempts,
		LockRetryDelay:  lockRetryDelay,
		WebhookURL:      strings.TrimSpace(os.Getenv("NOTIFICATION_WEBHOOK_URL")),
		LogLevel:        logLevel,
	}, nil
}
