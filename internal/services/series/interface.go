package series

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/aadsleague/invitemgr/internal/services/series Service

// Service defines the interface for the roster and qualification engine
type Service interface {
	// AddPlayer creates a new player with a unique, case-insensitive name
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// ListPlayers returns players matching the conjunction of the supplied filters
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// ListInviteCandidates returns the active invite pool
	ListInviteCandidates(ctx context.Context, input *ListInviteCandidatesInput) (*ListInviteCandidatesOutput, error)

	// GetPlayerHistory returns a player's participations joined with their events
	GetPlayerHistory(ctx context.Context, input *GetPlayerHistoryInput) (*GetPlayerHistoryOutput, error)

	// ListEvents returns all events with participant counts and winner names
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// GetSummary returns the dashboard counts
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// GetRoster returns an event's current roster
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// ListRosterCandidates returns players not yet on an event's roster
	ListRosterCandidates(ctx context.Context, input *ListRosterCandidatesInput) (*ListRosterCandidatesOutput, error)

	// AddToRoster records a player's participation in an event
	AddToRoster(ctx context.Context, input *AddToRosterInput) (*AddToRosterOutput, error)

	// RemoveFromRoster deletes a player's participation in an event
	RemoveFromRoster(ctx context.Context, input *RemoveFromRosterInput) (*RemoveFromRosterOutput, error)

	// SetEventWinner declares an event winner and cascades qualification
	SetEventWinner(ctx context.Context, input *SetEventWinnerInput) (*SetEventWinnerOutput, error)

	// Export produces a serializable snapshot of all three collections
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import replaces the collections with a snapshot payload's contents
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// PushAll upserts every record to the remote store
	PushAll(ctx context.Context, input *PushAllInput) (*PushAllOutput, error)

	// PullAll replaces local state with the remote store's records
	PullAll(ctx context.Context, input *PullAllInput) (*PullAllOutput, error)

	// Load restores the collections from the persisted snapshot
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// SeedDemoData seeds the fixed demo roster of events, players, and
	// historical participations
	SeedDemoData(ctx context.Context, input *SeedDemoDataInput) (*SeedDemoDataOutput, error)
}
