// Package store persists generated levels so that every player in a room
// can fetch the same puzzle by ID.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rybkr/tilepuzzle/internal/board"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=storemock github.com/rybkr/tilepuzzle/internal/store Repository

var (
	ErrNotFound     = errors.New("level not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Level is a stored puzzle.
type Level struct {
	ID        string        `json:"id"`
	Result    *board.Result `json:"result"`
	CreatedAt time.Time     `json:"createdAt"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// SaveInput contains parameters for storing a level
type SaveInput struct {
	Result *board.Result
	TTL    time.Duration // How long the level should live (0 = repository default)
}

// SaveOutput contains the stored level
type SaveOutput struct {
	Level *Level
}

// GetInput contains parameters for retrieving a level
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved level
type GetOutput struct {
	Level *Level
}

// DeleteInput contains parameters for deleting a level
type DeleteInput struct {
	ID string
}

// Repository defines the interface for level storage operations
type Repository interface {
	// Save stores a level under a freshly generated ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a level by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a level; deleting a missing level is not an error
	Delete(ctx context.Context, input DeleteInput) error
}
