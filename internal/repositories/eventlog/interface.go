package eventlog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Rexiusq/GameCore/internal/repositories/eventlog Repository

import (
	"context"
)

// Repository defines the interface for persistent action log storage
type Repository interface {
	// AppendRecord appends an action record to a game's log
	AppendRecord(ctx context.Context, input *AppendRecordInput) error

	// GetRecordsForGame retrieves a game's log in append order
	GetRecordsForGame(ctx context.Context, input *GetRecordsForGameInput) (*GetRecordsForGameOutput, error)

	// ClearGame removes a game's log
	ClearGame(ctx context.Context, input *ClearGameInput) error
}
