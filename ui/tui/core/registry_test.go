package core

import "testing"

type scrollRecord struct {
	Offset int
	Index  int
}

func TestStateCreatedLazily(t *testing.T) {
	store := NewStore()

	created := 0
	fresh := func() *scrollRecord {
		created++
		return &scrollRecord{Index: 3}
	}

	s := State(store, "proc-table", fresh)
	if s.Index != 3 {
		t.Errorf("Expected fresh state with Index 3, got %d", s.Index)
	}
	if created != 1 {
		t.Errorf("Expected one creation, got %d", created)
	}

	// Second lookup returns the same record without re-creating.
	s.Offset = 9
	again := State(store, "proc-table", fresh)
	if again.Offset != 9 {
		t.Errorf("Expected persisted Offset 9, got %d", again.Offset)
	}
	if created != 1 {
		t.Errorf("Expected no second creation, got %d creations", created)
	}
}

func TestStateKeysAreIndependent(t *testing.T) {
	store := NewStore()
	fresh := func() *scrollRecord { return &scrollRecord{} }

	a := State(store, "disk-table", fresh)
	b := State(store, "temp-table", fresh)
	a.Index = 5
	if b.Index != 0 {
		t.Errorf("Expected sibling state untouched, got Index %d", b.Index)
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", store.Len())
	}
}

func TestSweepDropsUnregisteredKeys(t *testing.T) {
	store := NewStore()
	fresh := func() *scrollRecord { return &scrollRecord{} }

	State(store, "kept", fresh).Index = 7
	State(store, "dropped", fresh)

	// Rebuild cycle that only re-registers "kept".
	store.BeginCycle()
	State(store, "kept", fresh)
	store.Sweep()

	if store.Len() != 1 {
		t.Errorf("Expected 1 record after sweep, got %d", store.Len())
	}
	if got := State(store, "kept", fresh).Index; got != 7 {
		t.Errorf("Expected kept state to survive sweep with Index 7, got %d", got)
	}

	// "dropped" comes back fresh on next lookup.
	if got := State(store, "dropped", fresh).Index; got != 0 {
		t.Errorf("Expected dropped state to be recreated fresh, got Index %d", got)
	}
}
