package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	gameEventsKeyPrefix = "game_events:"
)

// Config holds configuration for the Redis event log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event log repository
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

// AppendRecord appends an action record to a game's log. A list keeps the
// log in strict append order, matching the dispatcher's history.
func (r *redisRepository) AppendRecord(ctx context.Context, input *AppendRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("record ID cannot be empty")
	}

	if record.GameID == "" {
		return errors.New("record game ID cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	gameKey := fmt.Sprintf("%s%s", gameEventsKeyPrefix, record.GameID)
	if err := r.client.RPush(ctx, gameKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}

// GetRecordsForGame retrieves a game's log in append order
func (r *redisRepository) GetRecordsForGame(ctx context.Context, input *GetRecordsForGameInput) (*GetRecordsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameEventsKeyPrefix, input.GameID)
	entries, err := r.client.LRange(ctx, gameKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		var record Record
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, &record)
	}

	return &GetRecordsForGameOutput{
		Records: records,
	}, nil
}

// ClearGame removes a game's log
func (r *redisRepository) ClearGame(ctx context.Context, input *ClearGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameEventsKeyPrefix, input.GameID)
	if err := r.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to clear game log: %w", err)
	}

	return nil
}
