package host_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/akwrites/penlight/internal/host"
	"github.com/stretchr/testify/require"
)

func TestFileReader_ReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte("chapter one"), 0o644))

	text, err := host.NewFileReader(path).ReadText(context.Background())
	require.NoError(t, err)
	require.Equal(t, "chapter one", text)
}

func TestFileReader_Missing(t *testing.T) {
	r := host.NewFileReader(filepath.Join(t.TempDir(), "missing.md"))
	_, err := r.ReadText(context.Background())
	require.ErrorIs(t, err, host.ErrDocumentUnavailable)
}

func TestFileReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := host.NewFileReader("irrelevant")
	_, err := r.ReadText(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
