package local

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/interfaces"
	"github.com/packstat/packstat/pkg/domain/model"
)

// Local persists the snapshot as a JSON file. Serialization is
// deterministic, so re-running the pipeline over an unchanged archive
// produces a byte-identical file.
type Local struct {
	path string
}

var _ interfaces.SnapshotRepository = &Local{}

// New creates a file-backed snapshot store at the given path
func New(path string) *Local {
	return &Local{path: path}
}

// Path returns the backing file path
func (l *Local) Path() string {
	return l.path
}

// Save writes the snapshot, replacing any previous file
func (l *Local) Save(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return goerr.New("cannot save nil snapshot")
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to serialize snapshot")
	}
	data = append(data, '\n')

	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write snapshot file", goerr.V("path", l.path))
	}
	return nil
}

// Load reads the snapshot file. Returns nil, nil if the file does not exist.
func (l *Local) Load(ctx context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", l.path))
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to parse snapshot file", goerr.V("path", l.path))
	}
	return &snapshot, nil
}

// Clear removes the snapshot file if it exists
func (l *Local) Clear(ctx context.Context) error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove snapshot file", goerr.V("path", l.path))
	}
	return nil
}
