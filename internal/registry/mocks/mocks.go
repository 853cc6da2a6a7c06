// Package mocks provides testify mocks for the registry's collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock for store.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Get(ctx context.Context) ([]byte, bool, error) {
	args := m.Called(ctx)
	blob, _ := args.Get(0).([]byte)
	return blob, args.Bool(1), args.Error(2)
}

func (m *Store) Set(ctx context.Context, blob []byte) error {
	args := m.Called(ctx, blob)
	return args.Error(0)
}

// DocumentReader is a mock for host.DocumentReader.
type DocumentReader struct {
	mock.Mock
}

func (m *DocumentReader) ReadText(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
