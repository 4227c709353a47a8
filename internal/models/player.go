package models

import (
	"time"
)

// Province identifies which province a player represents
type Province string

const (
	// ProvinceNB is New Brunswick
	ProvinceNB Province = "NB"

	// ProvinceNS is Nova Scotia
	ProvinceNS Province = "NS"

	// ProvincePEI is Prince Edward Island
	ProvincePEI Province = "PEI"
)

// IsValid reports whether the province is one of the closed set
func (p Province) IsValid() bool {
	switch p {
	case ProvinceNB, ProvinceNS, ProvincePEI:
		return true
	}
	return false
}

// PlayerStatus represents a player's standing in the series
type PlayerStatus string

const (
	// PlayerStatusProspect indicates a player with zero recorded participations
	PlayerStatusProspect PlayerStatus = "Prospect"

	// PlayerStatusActive indicates a player with at least one participation
	PlayerStatusActive PlayerStatus = "Active"

	// PlayerStatusWinner indicates a player who has won an event
	PlayerStatusWinner PlayerStatus = "Winner"

	// PlayerStatusTOCQualified indicates a player qualified for the Tournament of Champions
	PlayerStatusTOCQualified PlayerStatus = "TOC Qualified"
)

// Player represents a series participant
type Player struct {
	// ID is the unique identifier for the player, assigned monotonically
	ID int64 `json:"id"`

	// Name is the player's display name, unique case-insensitively
	Name string `json:"name"`

	// Province is the province the player represents
	Province Province `json:"province"`

	// Status is the player's current standing
	Status PlayerStatus `json:"status"`

	// TotalEvents is the count of the player's event participations
	TotalEvents int `json:"total_events"`

	// TOCQualified is whether the player has qualified for the championship
	TOCQualified bool `json:"toc_qualified"`

	// CreatedAt is when the player was added
	CreatedAt time.Time `json:"created_at"`
}
