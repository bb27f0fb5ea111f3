package eventlog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/Rexiusq/GameCore/internal/events"
	"github.com/Rexiusq/GameCore/internal/models"
)

type EventLogTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *EventLogTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
}

func (s *EventLogTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestEventLogTestSuite(t *testing.T) {
	suite.Run(t, new(EventLogTestSuite))
}

func (s *EventLogTestSuite) newRecord(id string, actionType events.ActionType) *Record {
	return &Record{
		ID:        id,
		GameID:    "test-game-id",
		PlayerID:  "test-player-id",
		Type:      actionType,
		Timestamp: s.testNow,
	}
}

func (s *EventLogTestSuite) TestAppendAndGetPreservesOrder() {
	for _, id := range []string{"a1", "a2", "a3"} {
		err := s.repo.AppendRecord(context.Background(), &AppendRecordInput{
			Record: s.newRecord(id, events.ActionTypePlayCard),
		})
		s.Require().NoError(err)
	}

	result, err := s.repo.GetRecordsForGame(context.Background(), &GetRecordsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 3)
	s.Equal("a1", result.Records[0].ID)
	s.Equal("a2", result.Records[1].ID)
	s.Equal("a3", result.Records[2].ID)
	s.Equal(events.ActionTypePlayCard, result.Records[0].Type)
	s.Equal(s.testNow.Unix(), result.Records[0].Timestamp.Unix())
}

func (s *EventLogTestSuite) TestGetRecordsForUnknownGameIsEmpty() {
	result, err := s.repo.GetRecordsForGame(context.Background(), &GetRecordsForGameInput{
		GameID: "missing-game-id",
	})
	s.Require().NoError(err)
	s.Empty(result.Records)
}

func (s *EventLogTestSuite) TestClearGame() {
	err := s.repo.AppendRecord(context.Background(), &AppendRecordInput{
		Record: s.newRecord("a1", events.ActionTypePass),
	})
	s.Require().NoError(err)

	err = s.repo.ClearGame(context.Background(), &ClearGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	result, err := s.repo.GetRecordsForGame(context.Background(), &GetRecordsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(result.Records)
}

func (s *EventLogTestSuite) TestAppendValidatesRecord() {
	err := s.repo.AppendRecord(context.Background(), nil)
	s.Require().Error(err)

	err = s.repo.AppendRecord(context.Background(), &AppendRecordInput{
		Record: &Record{GameID: "test-game-id"},
	})
	s.Require().Error(err)
}

// recorderAction is a minimal action implementation for recorder tests
type recorderAction struct {
	id        string
	playerID  string
	timestamp time.Time
}

func (a *recorderAction) ActionID() string                      { return a.id }
func (a *recorderAction) Type() events.ActionType               { return events.ActionTypeCustom }
func (a *recorderAction) PlayerID() string                      { return a.playerID }
func (a *recorderAction) Timestamp() time.Time                  { return a.timestamp }
func (a *recorderAction) Validate(state *models.GameState) bool { return true }
func (a *recorderAction) Execute(state *models.GameState) error { return nil }

func (s *EventLogTestSuite) TestRecorderMirrorsDispatchedActions() {
	recorder, err := NewRecorder(&RecorderConfig{
		Repository: s.repo,
		GameID:     "test-game-id",
	})
	s.Require().NoError(err)

	dispatcher := events.NewDispatcher()
	s.Require().NoError(dispatcher.Subscribe(recorder))

	s.Require().NoError(dispatcher.Dispatch(&recorderAction{
		id:        "a1",
		playerID:  "test-player-id",
		timestamp: s.testNow,
	}))

	result, err := s.repo.GetRecordsForGame(context.Background(), &GetRecordsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Equal("a1", result.Records[0].ID)
	s.Equal(events.ActionTypeCustom, result.Records[0].Type)
	s.Equal("test-player-id", result.Records[0].PlayerID)
}
