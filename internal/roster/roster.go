package roster

import (
	"fmt"

	"github.com/Rexiusq/GameCore/internal/common/errs"
	"github.com/Rexiusq/GameCore/internal/models"
)

// Define errors
var (
	ErrNilPlayer     = fmt.Errorf("%w: player cannot be nil", errs.ErrInvalidArgument)
	ErrEmptyPlayerID = fmt.Errorf("%w: player ID cannot be empty", errs.ErrInvalidArgument)
	ErrPlayerExists  = fmt.Errorf("%w: player ID already in roster", errs.ErrDuplicatePlayer)
)

// Roster is an ordered, keyed collection of players. Insertion order is
// preserved; that order is what a subsequently constructed turn manager
// rotates through. Players are held by reference so status changes made
// through the roster are visible to every holder of the same record.
type Roster struct {
	players []*models.Player
	byID    map[string]*models.Player
}

// New creates an empty roster
func New() *Roster {
	return &Roster{
		players: []*models.Player{},
		byID:    make(map[string]*models.Player),
	}
}

// Add appends a player to the roster, preserving insertion order
func (r *Roster) Add(player *models.Player) error {
	if player == nil {
		return ErrNilPlayer
	}

	if player.ID == "" {
		return ErrEmptyPlayerID
	}

	if _, exists := r.byID[player.ID]; exists {
		return ErrPlayerExists
	}

	r.players = append(r.players, player)
	r.byID[player.ID] = player

	return nil
}

// Remove deletes a player from the roster. It returns the removed player,
// or false if the ID was not present.
func (r *Roster) Remove(playerID string) (*models.Player, bool) {
	player, exists := r.byID[playerID]
	if !exists {
		return nil, false
	}

	delete(r.byID, playerID)

	for i, p := range r.players {
		if p.ID == playerID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}

	return player, true
}

// Get looks up a player by ID. Absence is reported as a value, not an error.
func (r *Roster) Get(playerID string) (*models.Player, bool) {
	player, exists := r.byID[playerID]
	return player, exists
}

// Players returns the roster in insertion order. The slice is a copy; the
// player records are shared.
func (r *Roster) Players() []*models.Player {
	players := make([]*models.Player, len(r.players))
	copy(players, r.players)
	return players
}

// Len returns the number of players in the roster
func (r *Roster) Len() int {
	return len(r.players)
}
