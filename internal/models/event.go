package models

// EventType represents the kind of competition an event is
type EventType string

const (
	// EventTypeInvitational indicates an ordinary invitational event
	EventTypeInvitational EventType = "Invitational"

	// EventTypeTOC indicates the Tournament of Champions
	EventTypeTOC EventType = "TOC"
)

// EventStatus represents the current state of an event
type EventStatus string

const (
	// EventStatusPending indicates an event that has not started
	EventStatusPending EventStatus = "Pending"

	// EventStatusActive indicates an event in progress
	EventStatusActive EventStatus = "Active"

	// EventStatusCompleted indicates an event with a declared winner
	EventStatusCompleted EventStatus = "Completed"
)

// Event represents a scheduled or completed competition instance
type Event struct {
	// ID is the unique identifier for the event
	ID int64 `json:"id"`

	// Name is the display name of the event
	Name string `json:"name"`

	// EventType is the kind of competition
	EventType EventType `json:"event_type"`

	// Status is the current state of the event
	Status EventStatus `json:"status"`

	// WinnerID references the winning player once the event completes
	WinnerID *int64 `json:"winner_id"`
}
