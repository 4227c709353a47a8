package models

import (
	"time"
)

// Snapshot is the serialized form of the three collections, used both for
// local persistence and for export files. Nil slices mean the collection
// was absent from the payload, not that it was empty.
type Snapshot struct {
	// Players is the full player collection
	Players []*Player `json:"players"`

	// Events is the full event collection
	Events []*Event `json:"events"`

	// Participations is the full participation collection
	Participations []*EventParticipation `json:"eventParticipants"`

	// ExportedAt is when the snapshot was produced
	ExportedAt time.Time `json:"exportedAt"`
}
