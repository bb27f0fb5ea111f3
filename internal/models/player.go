package models

import (
	"encoding/json"
	"time"
)

// PlayerStatus represents the current state of a player in a roster
type PlayerStatus string

const (
	// PlayerStatusActive indicates a player is actively participating
	PlayerStatusActive PlayerStatus = "active"

	// PlayerStatusWaiting indicates a player has joined and is waiting for play
	PlayerStatusWaiting PlayerStatus = "waiting"

	// PlayerStatusEliminated indicates a player has been knocked out of rotation
	PlayerStatusEliminated PlayerStatus = "eliminated"

	// PlayerStatusDisconnected indicates a player has left the game
	PlayerStatusDisconnected PlayerStatus = "disconnected"
)

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Status is the current state of the player
	Status PlayerStatus `json:"status"`

	// JoinedAt is when the player joined the roster
	JoinedAt time.Time `json:"joinedAt"`
}

// ToJSON serializes the player to a deterministic JSON snapshot
func (p *Player) ToJSON() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParsePlayer rebuilds a player from a JSON snapshot produced by ToJSON
func ParsePlayer(data string) (*Player, error) {
	var player Player
	if err := json.Unmarshal([]byte(data), &player); err != nil {
		return nil, err
	}
	return &player, nil
}
