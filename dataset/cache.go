package dataset

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"parcelyield/models"
)

// Dataset is the loaded-and-normalized table plus the selector lists the UI
// needs. It is immutable once built; views only ever read it.
type Dataset struct {
	Records  []models.NormalizedRecord
	Crops    []string // sorted unique crop identifiers
	Parcels  []string // sorted unique parcel names
	LoadedAt time.Time
}

// Store caches the dataset for its source file. The cache key is explicit —
// the file's (mtime, size) — so an updated source is picked up on the next
// request and an untouched one is never re-read. Invalidate forces a reload.
//
// Renders are synchronous single passes, but the HTTP layer serves them
// concurrently, hence the RWMutex.
type Store struct {
	path string

	mu    sync.RWMutex
	ds    *Dataset
	mtime time.Time
	size  int64
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the source file location the store watches.
func (s *Store) Path() string { return s.path }

// Dataset returns the cached dataset, reloading when the source file changed.
// A stat or load failure yields no dataset; callers must not render.
func (s *Store) Dataset() (*Dataset, error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat yield data: %w", err)
	}

	s.mu.RLock()
	if s.ds != nil && fi.ModTime().Equal(s.mtime) && fi.Size() == s.size {
		ds := s.ds
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have reloaded while we waited for the lock.
	if s.ds != nil && fi.ModTime().Equal(s.mtime) && fi.Size() == s.size {
		return s.ds, nil
	}

	records, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.ds = build(records)
	s.mtime = fi.ModTime()
	s.size = fi.Size()
	return s.ds, nil
}

// Invalidate drops the cached dataset so the next request reloads from disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.ds = nil
	s.mu.Unlock()
}

func build(records []models.YieldRecord) *Dataset {
	normalized := Normalize(records)

	cropSet := make(map[string]struct{})
	parcelSet := make(map[string]struct{})
	for _, r := range normalized {
		cropSet[r.Crop] = struct{}{}
		parcelSet[r.ParcelName] = struct{}{}
	}

	return &Dataset{
		Records:  normalized,
		Crops:    sortedKeys(cropSet),
		Parcels:  sortedKeys(parcelSet),
		LoadedAt: time.Now(),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
