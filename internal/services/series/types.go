package series

import (
	"github.com/aadsleague/invitemgr/internal/common/clock"
	"github.com/aadsleague/invitemgr/internal/models"
	"github.com/aadsleague/invitemgr/internal/repositories/remote"
	snapshotRepo "github.com/aadsleague/invitemgr/internal/repositories/snapshot"
)

// Config holds configuration for the series service
type Config struct {
	// Snapshot repository for local persistence
	SnapshotRepo snapshotRepo.Repository

	// Remote store for bulk sync; nil disables push/pull
	RemoteStore remote.Store

	// Clock for timestamps
	Clock clock.Clock

	// Maximum participants per ordinary event roster
	RosterCapacity int

	// ID of the reserved Tournament of Champions event
	ChampionshipEventID int64
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	Name     string
	Province models.Province
}

// AddPlayerOutput contains the created player
type AddPlayerOutput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID int64
}

// GetPlayerOutput contains the retrieved player
type GetPlayerOutput struct {
	Player *models.Player
}

// ListPlayersInput contains the filter predicates for listing players.
// Zero values mean the predicate is not applied.
type ListPlayersInput struct {
	Province     models.Province
	Status       models.PlayerStatus
	NameContains string
}

// ListPlayersOutput contains the filtered players in insertion order
type ListPlayersOutput struct {
	Players []*models.Player
}

// ListInviteCandidatesInput contains parameters for listing invite candidates
type ListInviteCandidatesInput struct{}

// ListInviteCandidatesOutput contains the invite pool, ordered by
// total events descending
type ListInviteCandidatesOutput struct {
	Players []*models.Player
}

// HistoryEntry is one event a player has participated in
type HistoryEntry struct {
	Event         *models.Event
	Participation *models.EventParticipation
	IsWinner      bool
}

// GetPlayerHistoryInput contains parameters for retrieving a player's history
type GetPlayerHistoryInput struct {
	PlayerID int64
}

// GetPlayerHistoryOutput contains the player and their event history
type GetPlayerHistoryOutput struct {
	Player  *models.Player
	Entries []*HistoryEntry
}

// EventSummary is an event with its derived roster information
type EventSummary struct {
	Event            *models.Event
	ParticipantCount int
	WinnerName       string
}

// ListEventsInput contains parameters for listing events
type ListEventsInput struct{}

// ListEventsOutput contains all events with derived roster information
type ListEventsOutput struct {
	Events []*EventSummary
}

// GetSummaryInput contains parameters for the dashboard summary
type GetSummaryInput struct{}

// GetSummaryOutput contains the dashboard counts
type GetSummaryOutput struct {
	TotalPlayers    int
	CompletedEvents int
	TOCQualified    int
	Prospects       int
}

// RosterEntry is one participation joined with its player
type RosterEntry struct {
	Player        *models.Player
	Participation *models.EventParticipation
}

// GetRosterInput contains parameters for retrieving an event roster
type GetRosterInput struct {
	EventID int64
}

// GetRosterOutput contains the event and its current roster
type GetRosterOutput struct {
	Event    *models.Event
	Entries  []*RosterEntry
	Capacity int
}

// ListRosterCandidatesInput contains parameters for listing players not yet
// on an event roster. Zero-valued filters are not applied.
type ListRosterCandidatesInput struct {
	EventID      int64
	Province     models.Province
	NameContains string
}

// ListRosterCandidatesOutput contains the available players
type ListRosterCandidatesOutput struct {
	Players []*models.Player
}

// AddToRosterInput contains parameters for adding a player to an event roster
type AddToRosterInput struct {
	EventID  int64
	PlayerID int64
}

// AddToRosterOutput contains the created participation
type AddToRosterOutput struct {
	Participation *models.EventParticipation
}

// RemoveFromRosterInput contains parameters for removing a player from a roster
type RemoveFromRosterInput struct {
	EventID  int64
	PlayerID int64
}

// RemoveFromRosterOutput contains the result of a roster removal
type RemoveFromRosterOutput struct {
	Player *models.Player
}

// SetEventWinnerInput contains parameters for declaring an event winner
type SetEventWinnerInput struct {
	EventID  int64
	WinnerID int64
}

// SetEventWinnerOutput contains the completed event, the winner, and the
// championship participation created for them (nil if they were already
// enrolled)
type SetEventWinnerOutput struct {
	Event             *models.Event
	Winner            *models.Player
	ChampionshipEntry *models.EventParticipation
}

// ExportInput contains parameters for exporting a snapshot
type ExportInput struct{}

// ExportOutput contains the exported snapshot
type ExportOutput struct {
	Snapshot *models.Snapshot
}

// ImportInput contains the raw JSON payload to import
type ImportInput struct {
	Data []byte
}

// ImportOutput reports which collections the payload replaced
type ImportOutput struct {
	PlayersReplaced        bool
	EventsReplaced         bool
	ParticipationsReplaced bool
}

// PushAllInput contains parameters for pushing all records to the remote store
type PushAllInput struct{}

// PushAllOutput contains the record counts pushed
type PushAllOutput struct {
	Players        int
	Events         int
	Participations int
}

// PullAllInput contains parameters for pulling all records from the remote store
type PullAllInput struct{}

// PullAllOutput contains the record counts pulled
type PullAllOutput struct {
	Players        int
	Events         int
	Participations int
}

// LoadInput contains parameters for loading the persisted snapshot
type LoadInput struct{}

// LoadOutput reports whether a snapshot was restored
type LoadOutput struct {
	Restored bool
}

// SeedDemoDataInput contains parameters for seeding demo data
type SeedDemoDataInput struct{}

// SeedDemoDataOutput contains the seeded record counts
type SeedDemoDataOutput struct {
	Players        int
	Events         int
	Participations int
}
