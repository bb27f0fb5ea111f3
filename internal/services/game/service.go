package game

import (
	"context"
	"fmt"

	"github.com/Rexiusq/GameCore/internal/common/clock"
	"github.com/Rexiusq/GameCore/internal/common/uuid"
	"github.com/Rexiusq/GameCore/internal/events"
	"github.com/Rexiusq/GameCore/internal/models"
	"github.com/Rexiusq/GameCore/internal/random"
	"github.com/Rexiusq/GameCore/internal/repositories/snapshot"
	"github.com/Rexiusq/GameCore/internal/roster"
	"github.com/Rexiusq/GameCore/internal/rules"
	"github.com/Rexiusq/GameCore/internal/turn"
)

// service implements the Service interface. It owns the game state and
// roster exclusively, holds at most one turn manager at a time, and
// delegates notification to the dispatcher. Operations are synchronous;
// concurrent use of one instance requires external serialization.
type service struct {
	state      *models.GameState
	roster     *roster.Roster
	rules      rules.Rules
	dispatcher *events.Dispatcher
	turns      *turn.Manager
	snapshots  snapshot.Repository
	clock      clock.Clock
	uuidGen    uuid.UUID
	random     *random.Source
	onStart    StartHook
	onEnd      EndHook
}

// New creates a new game service in the waiting state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Rules == nil {
		return nil, ErrNilRules
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New(nil)
	}

	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		dispatcher = events.NewDispatcher()
	}

	gameID := cfg.GameID
	if gameID == "" {
		gameID = uuidGen.NewUUID()
	}

	return &service{
		state: &models.GameState{
			GameID:    gameID,
			Status:    models.GameStatusWaiting,
			CreatedAt: clk.Now(),
			MaxRounds: cfg.MaxRounds,
		},
		roster:     roster.New(),
		rules:      cfg.Rules,
		dispatcher: dispatcher,
		snapshots:  cfg.SnapshotRepo,
		clock:      clk,
		uuidGen:    uuidGen,
		random:     rnd,
		onStart:    cfg.OnStart,
		onEnd:      cfg.OnEnd,
	}, nil
}

// touch stamps the state with the current time
func (s *service) touch() {
	now := s.clock.Now()
	s.state.UpdatedAt = &now
}

// AddPlayer appends a player to the roster, preserving join order
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	if s.roster.Len() >= s.rules.MaxPlayers() {
		return nil, ErrGameFull
	}

	player := &models.Player{
		ID:       input.PlayerID,
		Name:     input.PlayerName,
		Status:   models.PlayerStatusWaiting,
		JoinedAt: s.clock.Now(),
	}

	if err := s.roster.Add(player); err != nil {
		return nil, err
	}

	s.touch()

	return &AddPlayerOutput{
		Player: player,
	}, nil
}

// RemovePlayer marks a player disconnected and removes them from the
// roster. An absent ID is a silent no-op.
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	player, removed := s.roster.Remove(input.PlayerID)
	if removed {
		player.Status = models.PlayerStatusDisconnected
		s.touch()
	}

	return &RemovePlayerOutput{
		Removed: removed,
	}, nil
}

// GetPlayer looks up a player by ID
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	player, found := s.roster.Get(input.PlayerID)
	return &GetPlayerOutput{
		Player: player,
		Found:  found,
	}, nil
}

// StartGame validates the roster via the rules, flips the status to
// in-progress, and then runs the start hook. The ordering is deliberate:
// validation is never bypassed and the hook never observes a waiting game.
// Only a waiting game can start; a finished game never re-enters play.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if s.state.Status != models.GameStatusWaiting {
		return nil, ErrGameAlreadyStarted
	}

	if !s.rules.CanStartGame(s.roster.Players()) {
		return nil, ErrCannotStart
	}

	s.state.Status = models.GameStatusInProgress
	s.touch()

	if s.onStart != nil {
		manager, err := s.onStart(ctx, s.roster.Players())
		if err != nil {
			return nil, fmt.Errorf("start hook failed: %w", err)
		}
		s.turns = manager
	} else {
		manager, err := turn.New(&turn.Config{
			Players: s.roster.Players(),
			Clock:   s.clock,
			Random:  s.random,
		})
		if err != nil {
			return nil, err
		}
		s.turns = manager
	}

	return &StartGameOutput{
		State: s.state,
	}, nil
}

// EndGame completes the game unconditionally and runs the end hook.
// Callers decide when ending is appropriate.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	s.state.Status = models.GameStatusCompleted
	s.touch()

	winner := s.rules.GetWinner(s.state, s.roster.Players())

	if s.onEnd != nil {
		s.onEnd(ctx, s.state, winner)
	}

	return &EndGameOutput{
		State:  s.state,
		Winner: winner,
	}, nil
}

// PauseGame suspends an in-progress game
func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	if s.state.Status != models.GameStatusInProgress {
		return nil, ErrGameNotInProgress
	}

	s.state.Status = models.GameStatusPaused
	s.touch()

	return &PauseGameOutput{
		State: s.state,
	}, nil
}

// ResumeGame returns a paused game to in-progress
func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	if s.state.Status != models.GameStatusPaused {
		return nil, ErrGameNotPaused
	}

	s.state.Status = models.GameStatusInProgress
	s.touch()

	return &ResumeGameOutput{
		State: s.state,
	}, nil
}

// CancelGame abandons a game that has not reached a terminal state
func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if s.state.Status == models.GameStatusCompleted || s.state.Status == models.GameStatusCancelled {
		return nil, ErrGameFinished
	}

	s.state.Status = models.GameStatusCancelled
	s.touch()

	return &CancelGameOutput{
		State: s.state,
	}, nil
}

// SubmitAction runs the per-action flow: turn ownership check, rule
// validation, execution against state, then dispatch to listeners. When
// the rules declare the game over, the game is ended in the same call.
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil || input.Action == nil {
		return nil, ErrNilAction
	}

	if s.state.Status != models.GameStatusInProgress {
		return nil, ErrGameNotInProgress
	}

	action := input.Action

	if s.turns != nil && !s.turns.IsPlayerTurn(action.PlayerID()) {
		return nil, ErrNotPlayersTurn
	}

	if !s.rules.ValidateAction(action, s.state) {
		return nil, ErrActionRejected
	}

	if err := action.Execute(s.state); err != nil {
		return nil, fmt.Errorf("failed to execute action: %w", err)
	}

	if err := s.dispatcher.Dispatch(action); err != nil {
		return nil, err
	}

	s.touch()

	if s.rules.IsGameOver(s.state) {
		out, err := s.EndGame(ctx, &EndGameInput{})
		if err != nil {
			return nil, err
		}
		return &SubmitActionOutput{
			GameOver: true,
			Winner:   out.Winner,
		}, nil
	}

	return &SubmitActionOutput{}, nil
}

// BeginTurn starts a turn for the player at the cursor
func (s *service) BeginTurn(ctx context.Context, input *BeginTurnInput) (*BeginTurnOutput, error) {
	if s.turns == nil {
		return nil, ErrNoTurnManager
	}

	t, err := s.turns.StartTurn()
	if err != nil {
		return nil, err
	}

	return &BeginTurnOutput{
		Turn: t,
	}, nil
}

// FinishTurn completes or skips the active turn
func (s *service) FinishTurn(ctx context.Context, input *FinishTurnInput) (*FinishTurnOutput, error) {
	if s.turns == nil {
		return nil, ErrNoTurnManager
	}

	var err error
	if input != nil && input.Skip {
		err = s.turns.SkipTurn()
	} else {
		err = s.turns.EndTurn()
	}
	if err != nil {
		return nil, err
	}

	return &FinishTurnOutput{
		Turn: s.turns.CurrentTurn(),
	}, nil
}

// AdvanceTurn moves the rotation to the next eligible player and keeps
// the round counter in step with completed rotations
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if s.turns == nil {
		return nil, ErrNoTurnManager
	}

	player, err := s.turns.NextTurn()
	if err != nil {
		return nil, err
	}

	s.state.CurrentRound = s.turns.Rounds()
	s.touch()

	return &AdvanceTurnOutput{
		Player: player,
		Round:  s.state.CurrentRound,
	}, nil
}

// GetState returns the current state and its deterministic snapshot.
// Pure read, no side effect.
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	stateJSON, err := s.state.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}

	stateCopy := *s.state
	return &GetStateOutput{
		State: &stateCopy,
		JSON:  stateJSON,
	}, nil
}

// SaveSnapshot persists the game state and roster
func (s *service) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	if s.snapshots == nil {
		return nil, ErrNoSnapshotRepo
	}

	err := s.snapshots.SaveSnapshot(ctx, &snapshot.SaveSnapshotInput{
		Record: &snapshot.Record{
			State:   s.state,
			Players: s.roster.Players(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return &SaveSnapshotOutput{}, nil
}

// LoadSnapshot restores the game state and roster from the repository.
// Any installed turn manager is discarded; the caller rebuilds rotation
// over the restored roster.
func (s *service) LoadSnapshot(ctx context.Context, input *LoadSnapshotInput) (*LoadSnapshotOutput, error) {
	if s.snapshots == nil {
		return nil, ErrNoSnapshotRepo
	}

	record, err := s.snapshots.GetSnapshot(ctx, &snapshot.GetSnapshotInput{
		GameID: s.state.GameID,
	})
	if err != nil {
		return nil, err
	}

	restored := roster.New()
	for _, player := range record.Players {
		if err := restored.Add(player); err != nil {
			return nil, fmt.Errorf("failed to restore roster: %w", err)
		}
	}

	s.state = record.State
	s.roster = restored
	s.turns = nil

	return &LoadSnapshotOutput{
		State: s.state,
	}, nil
}

// TurnManager returns the installed turn manager, nil before the game starts
func (s *service) TurnManager() *turn.Manager {
	return s.turns
}
