package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Rexiusq/GameCore/internal/common/errs"
	"github.com/Rexiusq/GameCore/internal/models"
)

const (
	// Key prefixes for Redis
	snapshotKeyPrefix = "snapshot:"
	activeGamesKey    = "active_games"
)

// ErrSnapshotNotFound is returned when a snapshot is not found
var ErrSnapshotNotFound = fmt.Errorf("%w: snapshot not found", errs.ErrNotFound)

// Config holds configuration for the Redis snapshot repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSnapshot persists a game snapshot to Redis
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Record == nil || input.Record.State == nil {
		return errors.New("input, record, and state cannot be nil")
	}

	state := input.Record.State
	if state.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	// Marshal the record to JSON
	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the snapshot
	snapshotKey := fmt.Sprintf("%s%s", snapshotKeyPrefix, state.GameID)
	pipe.Set(ctx, snapshotKey, recordJSON, 0) // No expiration for now

	// Keep the active games index in step with the game status
	if state.Status == models.GameStatusInProgress || state.Status == models.GameStatusPaused {
		pipe.SAdd(ctx, activeGamesKey, state.GameID)
	} else {
		pipe.SRem(ctx, activeGamesKey, state.GameID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// GetSnapshot retrieves a game snapshot by game ID from Redis
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*Record, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	snapshotKey := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.GameID)
	recordJSON, err := r.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &record, nil
}

// DeleteSnapshot removes a game snapshot from Redis
func (r *redisRepository) DeleteSnapshot(ctx context.Context, input *DeleteSnapshotInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	snapshotKey := fmt.Sprintf("%s%s", snapshotKeyPrefix, input.GameID)
	pipe.Del(ctx, snapshotKey)
	pipe.SRem(ctx, activeGamesKey, input.GameID)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// ListActiveGames retrieves the snapshots of all in-progress or paused games
func (r *redisRepository) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &ListActiveGamesOutput{
			Records: []*Record{},
		}, nil
	}

	// Fetch all snapshots in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd)

	for _, gameID := range gameIDs {
		snapshotKey := fmt.Sprintf("%s%s", snapshotKeyPrefix, gameID)
		commands[gameID] = pipe.Get(ctx, snapshotKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	records := make([]*Record, 0, len(gameIDs))
	for gameID, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Snapshot was deleted between reading the index and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get snapshot %s: %w", gameID, err)
		}

		var record Record
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", gameID, err)
		}

		records = append(records, &record)
	}

	return &ListActiveGamesOutput{
		Records: records,
	}, nil
}
