package game

import (
	"context"

	"github.com/Rexiusq/GameCore/internal/turn"
)

// Service defines the interface for game lifecycle operations
type Service interface {
	// AddPlayer appends a player to the roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer marks a player disconnected and removes them from the roster
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// GetPlayer looks up a player; absence is reported as a value
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// StartGame validates via the rules, flips the status, and runs the start hook
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// EndGame unconditionally completes the game and runs the end hook
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// PauseGame suspends an in-progress game
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)

	// ResumeGame resumes a paused game
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)

	// CancelGame abandons a game that has not finished
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)

	// SubmitAction validates, executes, and dispatches a player action
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// BeginTurn starts a turn for the player at the cursor
	BeginTurn(ctx context.Context, input *BeginTurnInput) (*BeginTurnOutput, error)

	// FinishTurn completes or skips the active turn
	FinishTurn(ctx context.Context, input *FinishTurnInput) (*FinishTurnOutput, error)

	// AdvanceTurn moves the rotation to the next eligible player
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// GetState returns the current state and its deterministic snapshot
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// SaveSnapshot persists the game to the snapshot repository
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)

	// LoadSnapshot restores the game from the snapshot repository
	LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error)

	// TurnManager returns the installed turn manager, nil before the game starts
	TurnManager() *turn.Manager
}
