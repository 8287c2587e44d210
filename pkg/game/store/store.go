// Package store holds the client-side replica of server-authoritative
// game objects, keyed by identifier.
//
// The store is mutated only from the connection's delivery goroutine,
// which handles one message at a time. Interactive-context code reads
// objects exclusively from callbacks scheduled on the interactive
// runner, so the two never touch an object concurrently and no
// locking is used.
package store

import (
	"sort"

	"github.com/castlegate/frontier/pkg/game/model"
)

// Store maps object identifiers to domain objects.
type Store struct {
	objects map[string]model.Object
}

// NewStore creates an empty object store.
func NewStore() *Store {
	return &Store{
		objects: make(map[string]model.Object),
	}
}

// Get returns the object with the given identifier, or nil.
func (s *Store) Get(id string) model.Object {
	if id == "" {
		return nil
	}
	return s.objects[id]
}

// GetPlayer returns the player with the given identifier, or nil when
// absent or of a different kind.
func (s *Store) GetPlayer(id string) *model.Player {
	p, _ := s.Get(id).(*model.Player)
	return p
}

// GetUnit returns the unit with the given identifier, or nil.
func (s *Store) GetUnit(id string) *model.Unit {
	u, _ := s.Get(id).(*model.Unit)
	return u
}

// GetTile returns the tile with the given identifier, or nil.
func (s *Store) GetTile(id string) *model.Tile {
	t, _ := s.Get(id).(*model.Tile)
	return t
}

// GetColony returns the colony with the given identifier, or nil.
func (s *Store) GetColony(id string) *model.Colony {
	c, _ := s.Get(id).(*model.Colony)
	return c
}

// GetRegion returns the region with the given identifier, or nil.
func (s *Store) GetRegion(id string) *model.Region {
	r, _ := s.Get(id).(*model.Region)
	return r
}

// Insert adds or replaces an object.
func (s *Store) Insert(o model.Object) {
	s.objects[o.ID()] = o
}

// Dispose drops the object with the given identifier. Disposing an
// unknown identifier is a no-op.
func (s *Store) Dispose(id string) {
	delete(s.objects, id)
}

// Len returns the number of objects in the store.
func (s *Store) Len() int {
	return len(s.objects)
}

// IDs returns all object identifiers in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
