package events

import (
	"time"

	"github.com/Rexiusq/GameCore/internal/models"
)

// ActionType discriminates actions in the history log. The dispatcher uses
// it only for filtering; everything else about an action is opaque.
type ActionType string

const (
	// ActionTypePlayCard represents playing a card or piece
	ActionTypePlayCard ActionType = "play_card"

	// ActionTypeDrawCard represents drawing from a deck or pool
	ActionTypeDrawCard ActionType = "draw_card"

	// ActionTypePass represents passing the turn without acting
	ActionTypePass ActionType = "pass"

	// ActionTypeForfeit represents conceding the game
	ActionTypeForfeit ActionType = "forfeit"

	// ActionTypeCustom represents a game-specific action
	ActionTypeCustom ActionType = "custom"
)

// Action is the capability the core requires of a domain action. Concrete
// actions (play a card, move a piece) live in the consuming layer; the
// core validates, executes, and logs them through this interface.
type Action interface {
	// ActionID returns the unique identifier of the action
	ActionID() string

	// Type returns the discriminant used for history filtering
	Type() ActionType

	// PlayerID returns the ID of the acting player
	PlayerID() string

	// Timestamp returns when the action was created
	Timestamp() time.Time

	// Validate reports whether the action is legal against the given state
	Validate(state *models.GameState) bool

	// Execute applies the action to the given state
	Execute(state *models.GameState) error
}

// Listener is an observer notified synchronously on every dispatched
// action. A listener that blocks blocks the whole dispatch.
type Listener interface {
	// OnGameEvent handles a dispatched action
	OnGameEvent(action Action)
}
