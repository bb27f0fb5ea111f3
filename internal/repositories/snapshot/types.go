package snapshot

import (
	"github.com/Rexiusq/GameCore/internal/models"
)

// Record is the unit of persistence: one game's state together with its
// roster, re-derivable from the public fields of both
type Record struct {
	// State is the lifecycle state of the game
	State *models.GameState `json:"state"`

	// Players is the roster in insertion order
	Players []*models.Player `json:"players"`
}

// SaveSnapshotInput contains parameters for persisting a snapshot
type SaveSnapshotInput struct {
	// Record is the snapshot to persist
	Record *Record
}

// GetSnapshotInput contains parameters for retrieving a snapshot
type GetSnapshotInput struct {
	// GameID is the unique identifier of the game
	GameID string
}

// DeleteSnapshotInput contains parameters for removing a snapshot
type DeleteSnapshotInput struct {
	// GameID is the unique identifier of the game
	GameID string
}

// ListActiveGamesInput contains parameters for listing active games
type ListActiveGamesInput struct{}

// ListActiveGamesOutput contains the snapshots of all active games
type ListActiveGamesOutput struct {
	// Records holds one snapshot per active game
	Records []*Record
}
