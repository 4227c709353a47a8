package remote

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/aadsleague/invitemgr/internal/repositories/remote Store

// Store defines the interface for the remote table store used by bulk sync.
// Each call is a single one-directional bulk operation; there is no merge or
// conflict resolution across the three tables.
type Store interface {
	// UpsertPlayers writes every player record to the remote store, keyed by id
	UpsertPlayers(ctx context.Context, input *UpsertPlayersInput) error

	// UpsertEvents writes every event record to the remote store, keyed by id
	UpsertEvents(ctx context.Context, input *UpsertEventsInput) error

	// UpsertParticipations writes every participation record to the remote store, keyed by id
	UpsertParticipations(ctx context.Context, input *UpsertParticipationsInput) error

	// FetchPlayers retrieves all player records from the remote store
	FetchPlayers(ctx context.Context, input *FetchPlayersInput) (*FetchPlayersOutput, error)

	// FetchEvents retrieves all event records from the remote store
	FetchEvents(ctx context.Context, input *FetchEventsInput) (*FetchEventsOutput, error)

	// FetchParticipations retrieves all participation records from the remote store
	FetchParticipations(ctx context.Context, input *FetchParticipationsInput) (*FetchParticipationsOutput, error)
}
