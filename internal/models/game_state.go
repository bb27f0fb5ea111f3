package models

import (
	"encoding/json"
	"time"
)

// GameStatus represents the coarse-grained phase of a game
type GameStatus string

const (
	// GameStatusWaiting indicates a game is waiting for players to join
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusInProgress indicates a game is being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusPaused indicates a game has been temporarily suspended
	GameStatusPaused GameStatus = "paused"

	// GameStatusCompleted indicates a game has finished
	GameStatusCompleted GameStatus = "completed"

	// GameStatusCancelled indicates a game was abandoned before finishing
	GameStatusCancelled GameStatus = "cancelled"
)

// GameState holds the lifecycle state of a single game
type GameState struct {
	// GameID is the unique identifier for the game
	GameID string `json:"gameId"`

	// Status is the current phase of the game
	Status GameStatus `json:"status"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the state last changed, if it has
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// CurrentRound is the number of completed rotations through the turn order
	CurrentRound int `json:"currentRound"`

	// MaxRounds caps the number of rounds; zero means unlimited
	MaxRounds int `json:"maxRounds,omitempty"`
}

// ToJSON serializes the state to a deterministic JSON snapshot
func (s *GameState) ToJSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseGameState rebuilds a game state from a JSON snapshot produced by ToJSON
func ParseGameState(data string) (*GameState, error) {
	var state GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}
