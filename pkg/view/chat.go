package view

import (
	"time"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Message is the view-facing chat message. Sender and Text alias the
// wire's role and content fields.
type Message struct {
	MessageID string
	SessionID string
	Sender    string
	Text      string
	Timestamp time.Time
}

// NormalizeMessage maps a wire chat message onto its view shape
func NormalizeMessage(msg model.ChatMessage) Message {
	return Message{
		MessageID: msg.MessageID,
		SessionID: msg.SessionID,
		Sender:    msg.Role,
		Text:      msg.Content,
		Timestamp: msg.Timestamp,
	}
}

// NormalizeHistory maps a session transcript, preserving timestamp order
func NormalizeHistory(history *model.ChatHistory) []Message {
	if history == nil {
		return nil
	}
	messages := make([]Message, 0, len(history.Messages))
	for _, m := range history.Messages {
		messages = append(messages, NormalizeMessage(m))
	}
	return messages
}
