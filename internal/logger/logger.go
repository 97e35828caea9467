package logger

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Fields map[string]any

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

var sensitiveKeys = map[string]struct{}{
	"channelkey":  {},
	"channel_key": {},
	"password":    {},
	"pin":         {},
}

// SetLevel applies the configured log level. Unknown values leave the level
// untouched.
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func Info(message string, fields Fields) {
	log.Info().Fields(sanitizeFields(fields)).Msg(message)
}

func Error(message string, err error, fields Fields) {
	event := log.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(sanitizeFields(fields)).Msg(message)
}

// SanitizePayload masks sensitive keys anywhere inside the payload before it
// is logged.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func sanitizeFields(fields Fields) map[string]any {
	if fields == nil {
		return map[string]any{}
	}

	sanitized, ok := SanitizePayload(map[string]any(fields)).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return sanitized
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
