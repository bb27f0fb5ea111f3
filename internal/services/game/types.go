package game

import (
	"context"

	"github.com/Rexiusq/GameCore/internal/common/clock"
	"github.com/Rexiusq/GameCore/internal/common/uuid"
	"github.com/Rexiusq/GameCore/internal/events"
	"github.com/Rexiusq/GameCore/internal/models"
	"github.com/Rexiusq/GameCore/internal/random"
	"github.com/Rexiusq/GameCore/internal/repositories/snapshot"
	"github.com/Rexiusq/GameCore/internal/rules"
	"github.com/Rexiusq/GameCore/internal/turn"
)

// StartHook runs after the game status flips to in-progress. It receives
// the final roster and returns the turn manager to install, or nil for
// games without rotation. The hook never observes a waiting game.
type StartHook func(ctx context.Context, players []*models.Player) (*turn.Manager, error)

// EndHook runs after the game status flips to completed
type EndHook func(ctx context.Context, state *models.GameState, winner *models.Player)

// Config holds configuration for the game service
type Config struct {
	// GameID for the new game; generated when empty
	GameID string

	// MaxRounds caps the number of rounds; zero means unlimited
	MaxRounds int

	// Rules is the game-specific rule set (required)
	Rules rules.Rules

	// Dispatcher broadcasts actions to listeners (defaults to a fresh one)
	Dispatcher *events.Dispatcher

	// SnapshotRepo persists game snapshots (optional)
	SnapshotRepo snapshot.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        *random.Source

	// Lifecycle hooks (optional)
	OnStart StartHook
	OnEnd   EndHook
}

// AddPlayerInput contains parameters for adding a player to the roster
type AddPlayerInput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	// Player is the roster record that was created
	Player *models.Player
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	// Removed indicates whether the player was present
	Removed bool
}

// GetPlayerInput contains parameters for looking up a player
type GetPlayerInput struct {
	// PlayerID is the unique identifier for the player
	PlayerID string
}

// GetPlayerOutput contains the result of a player lookup
type GetPlayerOutput struct {
	// Player is the roster record, nil when absent
	Player *models.Player

	// Found indicates whether the player was present
	Found bool
}

// StartGameInput contains parameters for starting the game
type StartGameInput struct{}

// StartGameOutput contains the result of starting the game
type StartGameOutput struct {
	// State is the lifecycle state after the transition
	State *models.GameState
}

// EndGameInput contains parameters for ending the game
type EndGameInput struct{}

// EndGameOutput contains the result of ending the game
type EndGameOutput struct {
	// State is the lifecycle state after the transition
	State *models.GameState

	// Winner is the winning player per the rules, nil when there is none
	Winner *models.Player
}

// PauseGameInput contains parameters for pausing the game
type PauseGameInput struct{}

// PauseGameOutput contains the result of pausing the game
type PauseGameOutput struct {
	// State is the lifecycle state after the transition
	State *models.GameState
}

// ResumeGameInput contains parameters for resuming the game
type ResumeGameInput struct{}

// ResumeGameOutput contains the result of resuming the game
type ResumeGameOutput struct {
	// State is the lifecycle state after the transition
	State *models.GameState
}

// CancelGameInput contains parameters for cancelling the game
type CancelGameInput struct{}

// CancelGameOutput contains the result of cancelling the game
type CancelGameOutput struct {
	// State is the lifecycle state after the transition
	State *models.GameState
}

// SubmitActionInput contains parameters for submitting a player action
type SubmitActionInput struct {
	// Action is the domain action to validate, execute, and dispatch
	Action events.Action
}

// SubmitActionOutput contains the result of submitting an action
type SubmitActionOutput struct {
	// GameOver indicates the rules declared the game finished
	GameOver bool

	// Winner is the winning player when the game finished, nil otherwise
	Winner *models.Player
}

// BeginTurnInput contains parameters for starting the current player's turn
type BeginTurnInput struct{}

// BeginTurnOutput contains the result of starting a turn
type BeginTurnOutput struct {
	// Turn is the newly created turn record
	Turn *models.Turn
}

// FinishTurnInput contains parameters for ending the active turn
type FinishTurnInput struct {
	// Skip abandons the turn instead of completing it
	Skip bool
}

// FinishTurnOutput contains the result of ending a turn
type FinishTurnOutput struct {
	// Turn is the closed turn record
	Turn *models.Turn
}

// AdvanceTurnInput contains parameters for advancing the rotation
type AdvanceTurnInput struct{}

// AdvanceTurnOutput contains the result of advancing the rotation
type AdvanceTurnOutput struct {
	// Player is the next player in rotation
	Player *models.Player

	// Round is the number of completed rotations
	Round int
}

// GetStateInput contains parameters for reading the game state
type GetStateInput struct{}

// GetStateOutput contains the game state and its serialized snapshot
type GetStateOutput struct {
	// State is a copy of the lifecycle state
	State *models.GameState

	// JSON is the deterministic snapshot of the state
	JSON string
}

// SaveSnapshotInput contains parameters for persisting the game
type SaveSnapshotInput struct{}

// SaveSnapshotOutput contains the result of persisting the game
type SaveSnapshotOutput struct{}

// LoadSnapshotInput contains parameters for restoring the game
type LoadSnapshotInput struct{}

// LoadSnapshotOutput contains the result of restoring the game
type LoadSnapshotOutput struct {
	// State is the restored lifecycle state
	State *models.GameState
}
