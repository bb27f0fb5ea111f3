package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Rexiusq/GameCore/internal/common/errs"
	"github.com/Rexiusq/GameCore/internal/models"
)

type RosterTestSuite struct {
	suite.Suite
	roster  *Roster
	testNow time.Time
}

func (s *RosterTestSuite) SetupTest() {
	s.roster = New()
	s.testNow = time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
}

func TestRosterTestSuite(t *testing.T) {
	suite.Run(t, new(RosterTestSuite))
}

func (s *RosterTestSuite) newPlayer(id, name string) *models.Player {
	return &models.Player{
		ID:       id,
		Name:     name,
		Status:   models.PlayerStatusWaiting,
		JoinedAt: s.testNow,
	}
}

func (s *RosterTestSuite) TestAddPreservesInsertionOrder() {
	s.Require().NoError(s.roster.Add(s.newPlayer("a", "Alice")))
	s.Require().NoError(s.roster.Add(s.newPlayer("b", "Bob")))
	s.Require().NoError(s.roster.Add(s.newPlayer("c", "Carol")))

	players := s.roster.Players()
	s.Require().Len(players, 3)
	s.Equal("a", players[0].ID)
	s.Equal("b", players[1].ID)
	s.Equal("c", players[2].ID)
}

func (s *RosterTestSuite) TestAddNilPlayer() {
	err := s.roster.Add(nil)
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrInvalidArgument)
}

func (s *RosterTestSuite) TestAddDuplicateID() {
	s.Require().NoError(s.roster.Add(s.newPlayer("a", "Alice")))

	err := s.roster.Add(s.newPlayer("a", "Impostor"))
	s.Require().Error(err)
	s.ErrorIs(err, errs.ErrDuplicatePlayer)
	s.Equal(1, s.roster.Len())
}

func (s *RosterTestSuite) TestRemove() {
	s.Require().NoError(s.roster.Add(s.newPlayer("a", "Alice")))
	s.Require().NoError(s.roster.Add(s.newPlayer("b", "Bob")))

	removed, ok := s.roster.Remove("a")
	s.True(ok)
	s.Equal("Alice", removed.Name)
	s.Equal(1, s.roster.Len())

	_, found := s.roster.Get("a")
	s.False(found)
}

func (s *RosterTestSuite) TestRemoveAbsentIsNoOp() {
	removed, ok := s.roster.Remove("missing")
	s.False(ok)
	s.Nil(removed)
}

func (s *RosterTestSuite) TestGetReportsAbsenceAsValue() {
	player, found := s.roster.Get("missing")
	s.False(found)
	s.Nil(player)
}

func (s *RosterTestSuite) TestPlayersSliceIsACopy() {
	s.Require().NoError(s.roster.Add(s.newPlayer("a", "Alice")))

	players := s.roster.Players()
	players[0] = nil

	again := s.roster.Players()
	s.Require().NotNil(again[0])
	s.Equal("a", again[0].ID)
}

func (s *RosterTestSuite) TestPlayerRecordsAreShared() {
	s.Require().NoError(s.roster.Add(s.newPlayer("a", "Alice")))

	player, found := s.roster.Get("a")
	s.Require().True(found)
	player.Status = models.PlayerStatusEliminated

	s.Equal(models.PlayerStatusEliminated, s.roster.Players()[0].Status)
}
