package rules

//go:generate mockgen -package=mocks -destination=mocks/mock_rules.go github.com/Rexiusq/GameCore/internal/rules Rules

import (
	"github.com/Rexiusq/GameCore/internal/events"
	"github.com/Rexiusq/GameCore/internal/models"
)

// Rules is the capability the lifecycle service requires of a rule set.
// Concrete games implement it; the core only consults it and never
// implements any game's win logic itself.
type Rules interface {
	// MinPlayers returns the minimum roster size required to start
	MinPlayers() int

	// MaxPlayers returns the maximum roster size
	MaxPlayers() int

	// CanStartGame reports whether the roster is valid to start with
	CanStartGame(players []*models.Player) bool

	// ValidateAction reports whether an action is legal against the state
	ValidateAction(action events.Action, state *models.GameState) bool

	// IsGameOver reports whether the game has reached a terminal position
	IsGameOver(state *models.GameState) bool

	// GetWinner returns the winning player, or nil if there is none yet
	GetWinner(state *models.GameState, players []*models.Player) *models.Player
}
