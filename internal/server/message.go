package server

import (
	"encoding/json"
	"time"
)

// MessageType represents a WebSocket message type
type MessageType string

// WebSocket message type constants
const (
	// Client to server messages
	MessageTypeNewGame  MessageType = "new_game"
	MessageTypeMove     MessageType = "move"
	MessageTypeGetState MessageType = "get_state"

	// Server to client messages
	MessageTypeState MessageType = "state"
	MessageTypeWon   MessageType = "won"
	MessageTypeError MessageType = "error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

// NewGameData starts a fresh deal; an explicit seed makes it reproducible
type NewGameData struct {
	Seed *int64 `json:"seed,omitempty"`
}

// MoveData moves the card with the given ID, and its run, to a pile
type MoveData struct {
	Card   int `json:"card"`
	Target int `json:"target"`
}

// Server → Client Messages

// StateData carries the full game state after any change. Tableau and
// stock are the codec's two persisted values, embedded as-is.
type StateData struct {
	Tableau  json.RawMessage `json:"tableau"`
	Stock    json.RawMessage `json:"stock"`
	Resolved int             `json:"resolved,omitempty"`
	Won      bool            `json:"won,omitempty"`
}

// WonData announces the terminal success state
type WonData struct {
	Message string `json:"message"`
}

// ErrorData reports a rejected request; play continues
type ErrorData struct {
	Message string `json:"message"`
}
