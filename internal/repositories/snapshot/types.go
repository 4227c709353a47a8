package snapshot

import "github.com/aadsleague/invitemgr/internal/models"

// SaveSnapshotInput contains parameters for saving a snapshot
type SaveSnapshotInput struct {
	Snapshot *models.Snapshot
}

// GetSnapshotInput contains parameters for retrieving the snapshot
type GetSnapshotInput struct{}
