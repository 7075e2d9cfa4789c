package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Snapshot is the complete immutable analytics artifact produced by one
// pipeline run. It is the sole input to all presentation surfaces, replaced
// wholesale on re-upload and discarded wholesale on clear.
//
// Snapshot carries no run metadata such as timestamps or random IDs: running
// the pipeline twice over the same archive must serialize to byte-identical
// JSON.
type Snapshot struct {
	Self          Identity                      `json:"self"`
	Users         UserDirectory                 `json:"users"`
	Channels      *ChannelDirectory             `json:"channels"`
	Aggregate     *AggregateStats               `json:"aggregate"`
	Conversations map[string]*ConversationStats `json:"conversations"`
	DMManifest    []string                      `json:"dmManifest,omitempty"`
	Activity      ActivityStats                 `json:"activity"`
}

// Validate checks the snapshot's structural invariants
func (s *Snapshot) Validate() error {
	if s.Self.ID == "" {
		return goerr.New("snapshot has no identity")
	}
	if s.Channels == nil || s.Aggregate == nil {
		return goerr.New("snapshot is missing mappings or aggregate stats")
	}

	var total int
	for key, conv := range s.Conversations {
		if conv == nil {
			return goerr.New("nil conversation stats", goerr.V("key", key))
		}
		total += conv.MessageCount
	}
	if total != s.Aggregate.MessageCount {
		return goerr.New("aggregate message count does not match conversations",
			goerr.V("aggregate", s.Aggregate.MessageCount),
			goerr.V("sum", total),
		)
	}

	return nil
}
