package eventlog

import (
	"time"

	"github.com/Rexiusq/GameCore/internal/events"
)

// Record is the persisted form of a dispatched action. The action payload
// itself is opaque to the core; only the identifying fields are kept.
type Record struct {
	// ID is the unique identifier of the action
	ID string `json:"id"`

	// GameID is the game the action belongs to
	GameID string `json:"gameId"`

	// PlayerID is the acting player
	PlayerID string `json:"playerId"`

	// Type is the action discriminant
	Type events.ActionType `json:"type"`

	// Timestamp is when the action was created
	Timestamp time.Time `json:"timestamp"`
}

// AppendRecordInput contains parameters for appending a record
type AppendRecordInput struct {
	// Record is the action record to append
	Record *Record
}

// GetRecordsForGameInput contains parameters for reading a game's log
type GetRecordsForGameInput struct {
	// GameID is the game whose log to read
	GameID string
}

// GetRecordsForGameOutput contains a game's log in append order
type GetRecordsForGameOutput struct {
	// Records holds the log entries, oldest first
	Records []*Record
}

// ClearGameInput contains parameters for removing a game's log
type ClearGameInput struct {
	// GameID is the game whose log to remove
	GameID string
}
