package interfaces

import (
	"context"

	"github.com/packstat/packstat/pkg/domain/model"
)

// SnapshotRepository defines persistence for the analytics snapshot. The
// snapshot is an opaque artifact: stores replace it wholesale on save and
// discard it wholesale on clear.
type SnapshotRepository interface {
	// Save persists the snapshot, replacing any previous one
	Save(ctx context.Context, snapshot *model.Snapshot) error

	// Load retrieves the stored snapshot. Returns nil, nil if none exists.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Clear discards the stored snapshot, if any
	Clear(ctx context.Context) error
}
