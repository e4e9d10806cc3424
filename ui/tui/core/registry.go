package core

// Key is the stable identity of a logical component instance. It is supplied
// by the caller at construction and must be unique per declaration site;
// call sites inside loops must append a disambiguating suffix themselves.
type Key string

// Store maps component keys to persisted interaction state. State survives
// redraw cycles of the same logical component, and is dropped when a full
// tree rebuild no longer registers its key. The store is only ever touched
// from the UI goroutine, so it carries no locking.
type Store struct {
	entries map[Key]*storeEntry
}

type storeEntry struct {
	value any
	seen  bool
}

// NewStore returns an empty state store.
func NewStore() *Store {
	return &Store{entries: make(map[Key]*storeEntry)}
}

// BeginCycle clears the registration marks ahead of a tree rebuild. Every
// key looked up between BeginCycle and Sweep counts as re-registered.
func (s *Store) BeginCycle() {
	for _, e := range s.entries {
		e.seen = false
	}
}

// Sweep drops every entry whose key was not looked up since the last
// BeginCycle call.
func (s *Store) Sweep() {
	for k, e := range s.entries {
		if !e.seen {
			delete(s.entries, k)
		}
	}
}

// Len returns the number of persisted state records.
func (s *Store) Len() int { return len(s.entries) }

// State fetches the state record for key, creating it with fresh on first
// lookup. The returned pointer is owned by the component identified by key;
// sibling widgets must not mutate it.
func State[T any](s *Store, key Key, fresh func() *T) *T {
	e, ok := s.entries[key]
	if !ok {
		e = &storeEntry{value: fresh()}
		s.entries[key] = e
	}
	e.seen = true
	return e.value.(*T)
}
