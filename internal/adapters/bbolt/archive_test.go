package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(filepath.Join(t.TempDir(), "gather.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_RoundTrip(t *testing.T) {
	a := openTestArchive(t)

	payload := []byte(`{"text":"he is less capable"}`)
	require.NoError(t, a.SaveMessage(42, payload))

	got, err := a.Message(42)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	n, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestArchive_MissingMessage(t *testing.T) {
	a := openTestArchive(t)

	got, err := a.Message(7)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestArchive_OverwriteSameID(t *testing.T) {
	a := openTestArchive(t)

	require.NoError(t, a.SaveMessage(1, []byte("first")))
	require.NoError(t, a.SaveMessage(1, []byte("second")))

	got, err := a.Message(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	n, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestArchive_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gather.db")

	a, err := NewArchive(path)
	require.NoError(t, err)
	require.NoError(t, a.SaveMessage(9, []byte("kept")))
	require.NoError(t, a.Close())

	reopened, err := NewArchive(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Message(9)
	require.NoError(t, err)
	assert.Equal(t, []byte("kept"), got)
}
