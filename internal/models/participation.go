package models

import (
	"time"
)

// EventParticipation records one player's presence in one event
type EventParticipation struct {
	// ID is the unique identifier for this participation, assigned monotonically
	ID int64 `json:"id"`

	// EventID is the event the player participated in
	EventID int64 `json:"event_id"`

	// PlayerID is the participating player
	PlayerID int64 `json:"player_id"`

	// IsDebut is whether this was the player's first-ever participation,
	// computed once at insertion and never recomputed
	IsDebut bool `json:"is_debut"`

	// IsVeteran is the inverse of IsDebut
	IsVeteran bool `json:"is_veteran"`

	// AddedAt is when the participation was recorded
	AddedAt time.Time `json:"added_at"`
}
