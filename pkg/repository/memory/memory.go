package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/interfaces"
	"github.com/packstat/packstat/pkg/domain/model"
)

// Memory is an in-memory snapshot store for tests and library embedding.
// The snapshot is held as serialized bytes so callers never share mutable
// state with the store.
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

var _ interfaces.SnapshotRepository = &Memory{}

// New creates an empty in-memory store
func New() *Memory {
	return &Memory{}
}

// Save replaces the stored snapshot
func (m *Memory) Save(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return goerr.New("cannot save nil snapshot")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to serialize snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

// Load returns the stored snapshot, or nil if none exists
func (m *Memory) Load(ctx context.Context) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, nil
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(m.data, &snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to deserialize snapshot")
	}
	return &snapshot, nil
}

// Clear discards the stored snapshot
func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
