package api

import (
	"context"
	"fmt"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// chatMessageRequest is the payload for POST /chat/message. A nil session
// ID starts a new session.
type chatMessageRequest struct {
	SessionID *string `json:"session_id"`
	Message   string  `json:"message"`
}

// SendChatMessage sends a message to the health assistant and returns the
// assistant's reply. Pass a nil sessionID to start a new session; the reply
// carries the session ID to use for follow-ups.
func (c *Client) SendChatMessage(ctx context.Context, message string, sessionID *string) (*model.ChatMessage, error) {
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	var reply model.ChatMessage
	if err := c.post(ctx, "/chat/message", chatMessageRequest{SessionID: sessionID, Message: message}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ChatHistory fetches the transcript of a chat session, ordered by timestamp
func (c *Client) ChatHistory(ctx context.Context, sessionID string) (*model.ChatHistory, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required")
	}

	var history model.ChatHistory
	if err := c.get(ctx, "/chat/sessions/"+sessionID+"/history", &history); err != nil {
		return nil, err
	}
	return &history, nil
}
