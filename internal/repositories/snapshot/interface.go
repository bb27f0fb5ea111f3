package snapshot

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Rexiusq/GameCore/internal/repositories/snapshot Repository

import (
	"context"
)

// Repository defines the interface for game snapshot persistence
type Repository interface {
	// SaveSnapshot persists a game snapshot
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves a snapshot by game ID
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*Record, error)

	// DeleteSnapshot removes a snapshot
	DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error

	// ListActiveGames retrieves snapshots of all in-progress or paused games
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)
}
