package logger_test

import (
	"testing"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePayloadMasksSensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"accountId":  "acc-1",
		"channelKey": "TransferKey001",
		"nested": map[string]any{
			"password": "hunter2",
			"amount":   "10",
		},
	}

	sanitized, ok := logger.SanitizePayload(payload).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "acc-1", sanitized["accountId"])
	assert.Equal(t, "******", sanitized["channelKey"])

	nested, ok := sanitized["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", nested["password"])
	assert.Equal(t, "10", nested["amount"])
}

func TestSanitizePayloadHandlesSlices(t *testing.T) {
	payload := []any{
		map[string]any{"channel-key": "secret"},
		"plain",
	}

	sanitized, ok := logger.SanitizePayload(payload).([]any)
	require.True(t, ok)
	require.Len(t, sanitized, 2)

	first, ok := sanitized[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", first["channel-key"])
	assert.Equal(t, "plain", sanitized[1])
}

func TestSanitizePayloadUnmarshalableValue(t *testing.T) {
	assert.Equal(t, "<unavailable>", logger.SanitizePayload(make(chan int)))
}
