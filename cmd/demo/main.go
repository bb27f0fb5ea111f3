// Command demo drives a short three-player game against a live Redis,
// exercising the lifecycle service, turn rotation, event dispatch, the
// persistent event log, and snapshot storage.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Rexiusq/GameCore/internal/common/uuid"
	"github.com/Rexiusq/GameCore/internal/events"
	"github.com/Rexiusq/GameCore/internal/models"
	"github.com/Rexiusq/GameCore/internal/repositories/eventlog"
	"github.com/Rexiusq/GameCore/internal/repositories/snapshot"
	gameService "github.com/Rexiusq/GameCore/internal/services/game"
)

// demoRules is a minimal rule set: the game ends after the configured
// number of rounds and the first non-eliminated player wins
type demoRules struct{}

func (r *demoRules) MinPlayers() int { return 2 }
func (r *demoRules) MaxPlayers() int { return 4 }

func (r *demoRules) CanStartGame(players []*models.Player) bool {
	return len(players) >= r.MinPlayers()
}

func (r *demoRules) ValidateAction(action events.Action, state *models.GameState) bool {
	return action.PlayerID() != ""
}

func (r *demoRules) IsGameOver(state *models.GameState) bool {
	return state.MaxRounds > 0 && state.CurrentRound >= state.MaxRounds
}

func (r *demoRules) GetWinner(state *models.GameState, players []*models.Player) *models.Player {
	for _, p := range players {
		if p.Status != models.PlayerStatusEliminated {
			return p
		}
	}
	return nil
}

// passAction is the only action the demo plays
type passAction struct {
	id       string
	playerID string
	at       time.Time
}

func (a *passAction) ActionID() string                      { return a.id }
func (a *passAction) Type() events.ActionType               { return events.ActionTypePass }
func (a *passAction) PlayerID() string                      { return a.playerID }
func (a *passAction) Timestamp() time.Time                  { return a.at }
func (a *passAction) Validate(state *models.GameState) bool { return true }
func (a *passAction) Execute(state *models.GameState) error { return nil }

// consoleListener prints every dispatched action
type consoleListener struct{}

func (l *consoleListener) OnGameEvent(action events.Action) {
	log.Printf("event: %s by %s (%s)", action.Type(), action.PlayerID(), action.ActionID())
}

func main() {
	// Load .env if present; fall back to the process environment
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	snapshotRepo, err := snapshot.NewRedis(&snapshot.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}

	eventLogRepo, err := eventlog.NewRedis(&eventlog.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event log repository: %v", err)
	}

	// Initialize the game service
	ids := uuid.New()
	dispatcher := events.NewDispatcher()

	svc, err := gameService.New(&gameService.Config{
		MaxRounds:     3,
		Rules:         &demoRules{},
		Dispatcher:    dispatcher,
		SnapshotRepo:  snapshotRepo,
		UUIDGenerator: ids,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	state, err := svc.GetState(ctx, &gameService.GetStateInput{})
	if err != nil {
		log.Fatalf("Failed to read game state: %v", err)
	}
	gameID := state.State.GameID
	log.Printf("created game %s", gameID)

	// Mirror every dispatched action into the persistent event log
	recorder, err := eventlog.NewRecorder(&eventlog.RecorderConfig{
		Repository: eventLogRepo,
		GameID:     gameID,
	})
	if err != nil {
		log.Fatalf("Failed to create event recorder: %v", err)
	}

	if err := dispatcher.Subscribe(recorder); err != nil {
		log.Fatalf("Failed to subscribe recorder: %v", err)
	}
	if err := dispatcher.Subscribe(&consoleListener{}); err != nil {
		log.Fatalf("Failed to subscribe console listener: %v", err)
	}

	// Seat three players and start
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		out, err := svc.AddPlayer(ctx, &gameService.AddPlayerInput{
			PlayerID:   ids.NewUUID(),
			PlayerName: name,
		})
		if err != nil {
			log.Fatalf("Failed to add player %s: %v", name, err)
		}
		log.Printf("seated %s as %s", name, out.Player.ID)
	}

	if _, err := svc.StartGame(ctx, &gameService.StartGameInput{}); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	log.Printf("game started")

	// Play until the rules call it
	for {
		turnOut, err := svc.BeginTurn(ctx, &gameService.BeginTurnInput{})
		if err != nil {
			log.Fatalf("Failed to begin turn: %v", err)
		}

		actionOut, err := svc.SubmitAction(ctx, &gameService.SubmitActionInput{
			Action: &passAction{
				id:       ids.NewUUID(),
				playerID: turnOut.Turn.PlayerID,
				at:       time.Now(),
			},
		})
		if err != nil {
			log.Fatalf("Failed to submit action: %v", err)
		}

		if actionOut.GameOver {
			if actionOut.Winner != nil {
				log.Printf("game over, winner: %s", actionOut.Winner.Name)
			} else {
				log.Printf("game over with no winner")
			}
			break
		}

		if _, err := svc.AdvanceTurn(ctx, &gameService.AdvanceTurnInput{}); err != nil {
			log.Fatalf("Failed to advance turn: %v", err)
		}
	}

	// Persist the final snapshot and replay the log
	if _, err := svc.SaveSnapshot(ctx, &gameService.SaveSnapshotInput{}); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	records, err := eventLogRepo.GetRecordsForGame(ctx, &eventlog.GetRecordsForGameInput{
		GameID: gameID,
	})
	if err != nil {
		log.Fatalf("Failed to read event log: %v", err)
	}

	log.Printf("recorded %d actions:", len(records.Records))
	for _, record := range records.Records {
		log.Printf("  #%s %s by %s", record.ID, record.Type, record.PlayerID)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
