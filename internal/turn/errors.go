package turn

import (
	"fmt"

	"github.com/Rexiusq/GameCore/internal/common/errs"
)

// Define errors
var (
	ErrNoPlayers            = fmt.Errorf("%w: player list cannot be nil or empty", errs.ErrInvalidArgument)
	ErrNoEligiblePlayers    = fmt.Errorf("%w: no eligible players to rotate through", errs.ErrInvalidState)
	ErrTurnAlreadyActive    = fmt.Errorf("%w: a turn is already active", errs.ErrInvalidState)
	ErrNoActiveTurn         = fmt.Errorf("%w: no turn is active", errs.ErrInvalidState)
	ErrAllPlayersEliminated = fmt.Errorf("%w: no active players remaining", errs.ErrInvalidState)
)
