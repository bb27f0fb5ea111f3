package models

import (
	"time"
)

// TurnStatus represents the state of a single turn, and of the turn
// manager itself (the manager mirrors the status of its current turn)
type TurnStatus string

const (
	// TurnStatusPending indicates no turn is currently in progress
	TurnStatusPending TurnStatus = "pending"

	// TurnStatusActive indicates a player is currently entitled to act
	TurnStatusActive TurnStatus = "active"

	// TurnStatusCompleted indicates a turn that has just ended
	TurnStatusCompleted TurnStatus = "completed"

	// TurnStatusSkipped indicates a turn that was abandoned rather than completed
	TurnStatusSkipped TurnStatus = "skipped"
)

// Turn is an immutable record of one rotation slot
type Turn struct {
	// Number is the 1-based sequence number of the turn
	Number int `json:"number"`

	// PlayerID is the ID of the player entitled to act
	PlayerID string `json:"playerId"`

	// Status is the current state of the turn
	Status TurnStatus `json:"status"`

	// StartedAt is when the turn began
	StartedAt time.Time `json:"startedAt"`

	// CompletedAt is when the turn ended, if it has
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
