package eventlog

import (
	"context"
	"errors"
	"log"

	"github.com/Rexiusq/GameCore/internal/events"
)

// Recorder is an event listener that mirrors every dispatched action into
// the persistent log. Storage failures are logged and swallowed so the
// recorder honors the dispatcher's fault-isolation contract like any other
// listener.
type Recorder struct {
	repo   Repository
	gameID string
}

// RecorderConfig holds configuration for a recorder
type RecorderConfig struct {
	// Repository is the backing event log store
	Repository Repository

	// GameID is the game whose actions to record
	GameID string
}

// NewRecorder creates a recorder for one game's action stream
func NewRecorder(cfg *RecorderConfig) (*Recorder, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}

	if cfg.GameID == "" {
		return nil, errors.New("game ID cannot be empty")
	}

	return &Recorder{
		repo:   cfg.Repository,
		gameID: cfg.GameID,
	}, nil
}

// OnGameEvent persists the dispatched action's identifying fields
func (r *Recorder) OnGameEvent(action events.Action) {
	record := &Record{
		ID:        action.ActionID(),
		GameID:    r.gameID,
		PlayerID:  action.PlayerID(),
		Type:      action.Type(),
		Timestamp: action.Timestamp(),
	}

	err := r.repo.AppendRecord(context.Background(), &AppendRecordInput{
		Record: record,
	})
	if err != nil {
		log.Printf("eventlog: failed to record action %s: %v", record.ID, err)
	}
}
