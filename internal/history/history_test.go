package history

import "testing"

func maskOf(n int, v uint8) []uint8 {
	m := make([]uint8, n)
	for i := range m {
		m[i] = v
	}
	return m
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := NewManager()
	before := maskOf(16, 0)
	owner := make([]uint32, 16)

	m.Snapshot("r1", before, owner)

	after := maskOf(16, 1)
	afterOwner := make([]uint32, 16)
	for i := range afterOwner {
		afterOwner[i] = 1
	}

	entry := m.Undo("r1", after, afterOwner)
	if entry == nil {
		t.Fatal("Undo returned nil with one snapshot on the stack")
	}
	for i, v := range entry.Mask {
		if v != 0 {
			t.Fatalf("undo mask[%d] = %d, want 0", i, v)
		}
	}

	redo := m.Redo("r1", entry.Mask, entry.Owner)
	if redo == nil {
		t.Fatal("Redo returned nil after an undo")
	}
	for i, v := range redo.Mask {
		if v != 1 {
			t.Fatalf("redo mask[%d] = %d, want 1", i, v)
		}
	}
}

func TestSnapshotClearsRedo(t *testing.T) {
	m := NewManager()
	cur := maskOf(4, 0)
	owner := make([]uint32, 4)

	m.Snapshot("r1", cur, owner)
	m.Undo("r1", cur, owner)
	if m.RedoDepth("r1") != 1 {
		t.Fatalf("redo depth = %d, want 1", m.RedoDepth("r1"))
	}

	m.Snapshot("r1", cur, owner)
	if m.RedoDepth("r1") != 0 {
		t.Error("new snapshot did not clear the redo stack")
	}
}

func TestUndoStackCapped(t *testing.T) {
	m := NewManager()
	owner := make([]uint32, 4)
	for i := 0; i < MaxEntries+1; i++ {
		m.Snapshot("r1", maskOf(4, uint8(i%2)), owner)
	}
	if got := m.UndoDepth("r1"); got != MaxEntries {
		t.Errorf("undo depth after %d snapshots = %d, want %d",
			MaxEntries+1, got, MaxEntries)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	m := NewManager()
	cur := maskOf(4, 1)
	owner := []uint32{1, 1, 1, 1}
	m.Snapshot("r1", cur, owner)

	cur[0] = 0
	owner[0] = 0

	entry := m.Undo("r1", cur, owner)
	if entry.Mask[0] != 1 || entry.Owner[0] != 1 {
		t.Error("snapshot aliased the caller's buffers")
	}
}

func TestNilOwnerSnapshot(t *testing.T) {
	m := NewManager()
	m.Snapshot("r1", maskOf(4, 1), nil)
	entry := m.Undo("r1", maskOf(4, 1), nil)
	if entry == nil {
		t.Fatal("Undo returned nil")
	}
	if entry.Owner != nil {
		t.Error("nil owner snapshot should stay nil, signaling a rebuild")
	}
}

func TestUndoEmptyStack(t *testing.T) {
	m := NewManager()
	if m.Undo("ghost", maskOf(4, 0), nil) != nil {
		t.Error("Undo on an unknown room should return nil")
	}
	if m.Redo("ghost", maskOf(4, 0), nil) != nil {
		t.Error("Redo on an unknown room should return nil")
	}
}

func TestDropDestroysHistory(t *testing.T) {
	m := NewManager()
	m.Snapshot("r1", maskOf(4, 0), nil)
	m.Drop("r1")
	if m.UndoDepth("r1") != 0 {
		t.Error("Drop left undo entries behind")
	}
}

func TestHistoriesAreIndependentPerRoom(t *testing.T) {
	m := NewManager()
	m.Snapshot("r1", maskOf(4, 0), nil)
	m.Snapshot("r2", maskOf(4, 1), nil)
	m.Drop("r1")
	if m.UndoDepth("r2") != 1 {
		t.Error("dropping one room affected another room's history")
	}
}
