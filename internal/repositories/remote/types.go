package remote

import "github.com/aadsleague/invitemgr/internal/models"

// UpsertPlayersInput contains the player records to write
type UpsertPlayersInput struct {
	Players []*models.Player
}

// UpsertEventsInput contains the event records to write
type UpsertEventsInput struct {
	Events []*models.Event
}

// UpsertParticipationsInput contains the participation records to write
type UpsertParticipationsInput struct {
	Participations []*models.EventParticipation
}

// FetchPlayersInput contains parameters for fetching players
type FetchPlayersInput struct{}

// FetchPlayersOutput contains the fetched player records
type FetchPlayersOutput struct {
	Players []*models.Player
}

// FetchEventsInput contains parameters for fetching events
type FetchEventsInput struct{}

// FetchEventsOutput contains the fetched event records
type FetchEventsOutput struct {
	Events []*models.Event
}

// FetchParticipationsInput contains parameters for fetching participations
type FetchParticipationsInput struct{}

// FetchParticipationsOutput contains the fetched participation records
type FetchParticipationsOutput struct {
	Participations []*models.EventParticipation
}
