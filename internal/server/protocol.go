package server

import (
	"encoding/json"

	"github.com/rybkr/tilepuzzle/internal/store"
)

// Message types exchanged on the generate stream.
const (
	TypeGenerate = "Generate"
	TypeLevel    = "Level"
	TypeError    = "Error"
)

// IntentEnvelope is a client request on the stream.
type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReplyEnvelope is a server message on the stream. Exactly one of Level and
// Error is set.
type ReplyEnvelope struct {
	Type  string       `json:"type"`
	Level *store.Level `json:"level,omitempty"`
	Error *ErrorBody   `json:"error,omitempty"`
}

// ErrorBody describes a rejected request.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
