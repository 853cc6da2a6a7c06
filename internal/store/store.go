// Package store persists the whole project registry as a single serialized
// blob behind a fixed key.
package store

import (
	"context"
	"errors"
)

// StateKey identifies this application's blob in shared stores.
const StateKey = "penlight.state"

// Store is a single-cell blob store. Get reports absence via its second
// return instead of an error so callers can distinguish a missing blob from
// a failing store.
type Store interface {
	Get(ctx context.Context) (blob []byte, ok bool, err error)
	Set(ctx context.Context, blob []byte) error
}

var (
	// ErrMalformedState indicates the stored blob could not be decoded.
	ErrMalformedState = errors.New("malformed state blob")
	// ErrUnknownVersion indicates the blob was written by a newer schema.
	ErrUnknownVersion = errors.New("unknown state schema version")
)
