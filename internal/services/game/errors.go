package game

import (
	"fmt"

	"github.com/Rexiusq/GameCore/internal/common/errs"
)

// Define errors
var (
	ErrNilConfig      = fmt.Errorf("%w: config cannot be nil", errs.ErrInvalidArgument)
	ErrNilRules       = fmt.Errorf("%w: rules cannot be nil", errs.ErrInvalidArgument)
	ErrNilInput       = fmt.Errorf("%w: input cannot be nil", errs.ErrInvalidArgument)
	ErrEmptyPlayerID  = fmt.Errorf("%w: player ID cannot be empty", errs.ErrInvalidArgument)
	ErrNilAction      = fmt.Errorf("%w: action cannot be nil", errs.ErrInvalidArgument)
	ErrActionRejected = fmt.Errorf("%w: action failed rule validation", errs.ErrInvalidArgument)

	ErrGameFull = fmt.Errorf("%w: game is at maximum capacity", errs.ErrCapacityExceeded)

	ErrCannotStart        = fmt.Errorf("%w: cannot start", errs.ErrInvalidState)
	ErrGameAlreadyStarted = fmt.Errorf("%w: game has already started", errs.ErrInvalidState)
	ErrGameNotInProgress  = fmt.Errorf("%w: game is not in progress", errs.ErrInvalidState)
	ErrGameNotPaused      = fmt.Errorf("%w: game is not paused", errs.ErrInvalidState)
	ErrGameFinished       = fmt.Errorf("%w: game has already finished", errs.ErrInvalidState)
	ErrNotPlayersTurn     = fmt.Errorf("%w: not this player's turn", errs.ErrInvalidState)
	ErrNoTurnManager      = fmt.Errorf("%w: no turn manager installed", errs.ErrInvalidState)
	ErrNoSnapshotRepo     = fmt.Errorf("%w: no snapshot repository configured", errs.ErrInvalidState)
)
