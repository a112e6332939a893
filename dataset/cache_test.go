package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestStoreCachesUntilSourceChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yield_data.csv")
	writeSource(t, path, sampleHeader+"1,Pole A,2020,WHEAT,4.0,1.0,\n")

	s := NewStore(path)
	first, err := s.Dataset()
	require.NoError(t, err)
	require.Len(t, first.Records, 1)

	// Unchanged file: same dataset instance, no re-read.
	again, err := s.Dataset()
	require.NoError(t, err)
	assert.Same(t, first, again)

	// Changed file: reload on next request.
	writeSource(t, path, sampleHeader+"1,Pole A,2020,WHEAT,4.0,1.0,\n2,Pole B,2020,WHEAT,6.0,2.0,\n")
	touchFuture(t, path)
	reloaded, err := s.Dataset()
	require.NoError(t, err)
	assert.Len(t, reloaded.Records, 2)
}

func TestStoreInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yield_data.csv")
	writeSource(t, path, sampleHeader+"1,Pole A,2020,WHEAT,4.0,1.0,\n")

	s := NewStore(path)
	first, err := s.Dataset()
	require.NoError(t, err)

	s.Invalidate()
	second, err := s.Dataset()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Records, second.Records)
}

func TestStoreMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope.csv"))
	_, err := s.Dataset()
	require.Error(t, err)
}

func TestStoreSelectorLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yield_data.csv")
	writeSource(t, path, sampleHeader+
		"1,Pole B,2020,WHEAT,4.0,1.0,\n"+
		"2,Pole A,2020,CORN,6.0,2.0,\n"+
		"2,Pole A,2021,WHEAT,5.0,2.0,\n")

	s := NewStore(path)
	ds, err := s.Dataset()
	require.NoError(t, err)
	assert.Equal(t, []string{"CORN", "WHEAT"}, ds.Crops)
	assert.Equal(t, []string{"Pole A", "Pole B"}, ds.Parcels)
}

// touchFuture bumps mtime past filesystem timestamp granularity so the store
// sees the rewrite even when the test runs inside one tick.
func touchFuture(t *testing.T, path string) {
	t.Helper()
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
}
