package store

import (
	"encoding/json"
	"fmt"

	"github.com/akwrites/penlight/internal/domain/plan"
)

// SchemaVersion is the current state blob schema. Version 0 is the legacy
// shape without a version field; it decodes identically and is migrated
// forward on the next save.
const SchemaVersion = 1

// State is the serialized registry: every project plus the active project
// id, which is empty only when Projects is empty.
type State struct {
	Version         int             `json:"version"`
	Projects        []*plan.Project `json:"projects"`
	ActiveProjectID string          `json:"activeProjectId,omitempty"`
}

// Encode serializes s at the current schema version.
func Encode(s State) ([]byte, error) {
	s.Version = SchemaVersion
	blob, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return blob, nil
}

// Decode parses a state blob, migrating legacy version-0 blobs forward.
// Blobs from a newer schema than this build understands are refused rather
// than partially read.
func Decode(blob []byte) (State, error) {
	var s State
	if err := json.Unmarshal(blob, &s); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if s.Version > SchemaVersion {
		return State{}, fmt.Errorf("%w: %d", ErrUnknownVersion, s.Version)
	}
	s.Version = SchemaVersion
	return s, nil
}
