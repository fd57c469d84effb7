package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrWeightOutOfRange = errors.New("weight out of range")

// Snapshot is the diagnostic record persisted when a search fails.
type Snapshot struct {
	ID        string    `json:"id"`
	Game      string    `json:"game"`
	Board     string    `json:"board"`
	Moves     []string  `json:"moves"`
	Error     string    `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSnapshot(game, board string, moves []string, cause error) *Snapshot {
	s := &Snapshot{
		ID:        uuid.New().String(),
		Game:      game,
		Board:     board,
		Moves:     moves,
		CreatedAt: time.Now().UTC(),
	}

	if cause != nil {
		s.Error = cause.Error()
	}

	return s
}
