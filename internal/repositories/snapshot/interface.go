package snapshot

import (
	"context"

	"github.com/aadsleague/invitemgr/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/aadsleague/invitemgr/internal/repositories/snapshot Repository

// Repository defines the interface for snapshot persistence
type Repository interface {
	// SaveSnapshot persists the full collection snapshot
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// GetSnapshot retrieves the persisted snapshot
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.Snapshot, error)
}
