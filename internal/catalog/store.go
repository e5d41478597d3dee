package catalog

import "sync/atomic"

// Store holds the current catalog snapshot. Snapshots are replaced whole, never
// modified, so a reader keeps a consistent view for as long as it holds one.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)

	return s
}

// Current returns the active snapshot, or nil if none was ever loaded.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}

// Swap installs c as the active snapshot and returns the previous one.
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.current.Swap(c)
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}
