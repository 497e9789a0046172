package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

func TestNormalizeMessage_Aliases(t *testing.T) {
	timestamp := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	msg := model.ChatMessage{
		SessionID: "s-1",
		MessageID: "m-1",
		Role:      "assistant",
		Content:   "Drink plenty of water today.",
		Timestamp: timestamp,
	}

	normalized := NormalizeMessage(msg)
	assert.Equal(t, "assistant", normalized.Sender)
	assert.Equal(t, "Drink plenty of water today.", normalized.Text)
	assert.Equal(t, "s-1", normalized.SessionID)
	assert.Equal(t, timestamp, normalized.Timestamp)
}

func TestNormalizeHistory_PreservesOrder(t *testing.T) {
	history := &model.ChatHistory{
		SessionID: "s-1",
		Messages: []model.ChatMessage{
			{MessageID: "m-1", Role: "user", Content: "hello"},
			{MessageID: "m-2", Role: "assistant", Content: "hi"},
		},
	}

	messages := NormalizeHistory(history)
	require.Len(t, messages, 2)
	assert.Equal(t, "m-1", messages[0].MessageID)
	assert.Equal(t, "user", messages[0].Sender)
	assert.Equal(t, "m-2", messages[1].MessageID)
}

func TestNormalizeHistory_Nil(t *testing.T) {
	assert.Nil(t, NormalizeHistory(nil))
}
