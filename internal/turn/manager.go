package turn

import (
	"github.com/Rexiusq/GameCore/internal/common/clock"
	"github.com/Rexiusq/GameCore/internal/models"
	"github.com/Rexiusq/GameCore/internal/random"
)

// Config holds configuration for a turn manager
type Config struct {
	// Players is the candidate rotation order. Players whose status is not
	// Active or Waiting at construction time are filtered out; the filtered
	// order is fixed for the manager's lifetime.
	Players []*models.Player

	// Clock provides timestamps for turn records (defaults to the system clock)
	Clock clock.Clock

	// Random provides the shuffle source (defaults to a time-seeded source)
	Random *random.Source
}

// Manager is the rotation state machine. It owns the fixed rotation
// sequence, the cursor identifying whose turn it is, a monotonic turn
// counter, and the append-only turn history. Player records are shared
// with the roster, so status changes (elimination, disconnection) are
// visible here without any explicit synchronization call.
type Manager struct {
	players []*models.Player
	cursor  int
	counter int
	rounds  int
	status  models.TurnStatus
	history []*models.Turn
	clock   clock.Clock
	random  *random.Source
}

// New creates a turn manager over the given players. The rotation sequence
// is a snapshot of eligibility: later status changes never shrink it, they
// only cause players to be skipped.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil || len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}

	eligible := make([]*models.Player, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		if p == nil {
			continue
		}
		if p.Status == models.PlayerStatusActive || p.Status == models.PlayerStatusWaiting {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligiblePlayers
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New(nil)
	}

	return &Manager{
		players: eligible,
		cursor:  0,
		counter: 0,
		status:  models.TurnStatusPending,
		history: []*models.Turn{},
		clock:   clk,
		random:  rnd,
	}, nil
}

// StartTurn begins a turn for the player at the cursor. It increments the
// turn counter and appends a new record to the history.
func (m *Manager) StartTurn() (*models.Turn, error) {
	if m.status == models.TurnStatusActive {
		return nil, ErrTurnAlreadyActive
	}

	m.counter++
	m.status = models.TurnStatusActive

	t := &models.Turn{
		Number:    m.counter,
		PlayerID:  m.players[m.cursor].ID,
		Status:    models.TurnStatusActive,
		StartedAt: m.clock.Now(),
	}
	m.history = append(m.history, t)

	return t, nil
}

// EndTurn completes the active turn. Prior history entries are never touched.
func (m *Manager) EndTurn() error {
	return m.closeTurn(models.TurnStatusCompleted)
}

// SkipTurn abandons the active turn instead of completing it
func (m *Manager) SkipTurn() error {
	return m.closeTurn(models.TurnStatusSkipped)
}

func (m *Manager) closeTurn(status models.TurnStatus) error {
	if m.status != models.TurnStatusActive {
		return ErrNoActiveTurn
	}

	now := m.clock.Now()
	current := m.history[len(m.history)-1]
	current.Status = status
	current.CompletedAt = &now

	m.status = models.TurnStatusCompleted
	return nil
}

// NextTurn advances the cursor to the next non-eliminated player in
// rotation order. An active turn is completed first, so the manager never
// leaves a dangling active turn. Elimination only skips, never reorders;
// a player eliminated mid-turn keeps the current turn and is skipped on
// the rotation that follows.
func (m *Manager) NextTurn() (*models.Player, error) {
	if m.status == models.TurnStatusActive {
		if err := m.EndTurn(); err != nil {
			return nil, err
		}
	}

	n := len(m.players)
	for step := 1; step <= n; step++ {
		idx := (m.cursor + step) % n
		if m.players[idx].Status == models.PlayerStatusEliminated {
			continue
		}

		if m.cursor+step >= n {
			m.rounds++
		}
		m.cursor = idx
		m.status = models.TurnStatusPending
		return m.players[idx], nil
	}

	return nil, ErrAllPlayersEliminated
}

// IsPlayerTurn reports whether the given player is at the cursor with a
// turn currently active. The correct player during Pending or Completed
// still yields false.
func (m *Manager) IsPlayerTurn(playerID string) bool {
	return m.status == models.TurnStatusActive && m.players[m.cursor].ID == playerID
}

// EliminatePlayer marks a player in the rotation as eliminated. Unknown
// IDs are a no-op. The cursor is not advanced; the elimination takes
// effect on the next rotation.
func (m *Manager) EliminatePlayer(playerID string) {
	for _, p := range m.players {
		if p.ID == playerID {
			p.Status = models.PlayerStatusEliminated
			return
		}
	}
}

// ShuffleOrder randomizes the rotation sequence and resets the cursor to
// the first slot. The turn counter and history are untouched.
func (m *Manager) ShuffleOrder() {
	m.random.Shuffle(len(m.players), func(i, j int) {
		m.players[i], m.players[j] = m.players[j], m.players[i]
	})
	m.cursor = 0
}

// Status returns the manager's current turn status
func (m *Manager) Status() models.TurnStatus {
	return m.status
}

// CurrentPlayer returns the player at the cursor
func (m *Manager) CurrentPlayer() *models.Player {
	return m.players[m.cursor]
}

// CurrentTurnNumber returns the number of turns started so far
func (m *Manager) CurrentTurnNumber() int {
	return m.counter
}

// CurrentTurn returns the most recent turn record, or nil if no turn has
// been started
func (m *Manager) CurrentTurn() *models.Turn {
	if len(m.history) == 0 {
		return nil
	}
	return m.history[len(m.history)-1]
}

// History returns the turn records in creation order. The slice is a copy;
// the records are shared.
func (m *Manager) History() []*models.Turn {
	history := make([]*models.Turn, len(m.history))
	copy(history, m.history)
	return history
}

// Players returns the rotation sequence in its current order. The slice is
// a copy; the player records are shared.
func (m *Manager) Players() []*models.Player {
	players := make([]*models.Player, len(m.players))
	copy(players, m.players)
	return players
}

// Rounds returns the number of times the rotation has wrapped past the
// first slot
func (m *Manager) Rounds() int {
	return m.rounds
}
