// Package history provides bounded per-room undo/redo stacks of full
// mask and owner-array snapshots.
package history

// MaxEntries caps each room's undo and redo stacks; the oldest entry is
// evicted when a push exceeds it.
const MaxEntries = 30

// Entry is an immutable snapshot pair captured before a discrete edit:
// the room's mask and the shared owner array. Owner may be nil, in which
// case restoring the entry requires a full owner rebuild.
type Entry struct {
	Mask  []uint8
	Owner []uint32
}

type stacks struct {
	undo []*Entry
	redo []*Entry
}

// Manager keeps the undo/redo stacks for every room, keyed by room ID.
type Manager struct {
	rooms map[string]*stacks
}

// NewManager creates an empty history manager.
func NewManager() *Manager {
	return &Manager{rooms: make(map[string]*stacks)}
}

func (m *Manager) stacksFor(roomID string) *stacks {
	st, ok := m.rooms[roomID]
	if !ok {
		st = &stacks{}
		m.rooms[roomID] = st
	}
	return st
}

func push(stack []*Entry, e *Entry) []*Entry {
	stack = append(stack, e)
	if len(stack) > MaxEntries {
		stack = stack[1:]
	}
	return stack
}

func snapshot(mask []uint8, owner []uint32) *Entry {
	e := &Entry{Mask: make([]uint8, len(mask))}
	copy(e.Mask, mask)
	if owner != nil {
		e.Owner = make([]uint32, len(owner))
		copy(e.Owner, owner)
	}
	return e
}

// Snapshot pushes the current state onto the room's undo stack and clears
// the redo stack (linear undo/redo, no branching). Taken once per discrete
// user gesture, not per pixel mutation.
func (m *Manager) Snapshot(roomID string, mask []uint8, owner []uint32) {
	st := m.stacksFor(roomID)
	st.undo = push(st.undo, snapshot(mask, owner))
	st.redo = nil
}

// Undo pops the room's undo stack, pushing the supplied current state onto
// the redo stack. Returns the snapshot to restore, or nil when there is
// nothing to undo.
func (m *Manager) Undo(roomID string, curMask []uint8, curOwner []uint32) *Entry {
	st := m.stacksFor(roomID)
	if len(st.undo) == 0 {
		return nil
	}
	e := st.undo[len(st.undo)-1]
	st.undo = st.undo[:len(st.undo)-1]
	st.redo = push(st.redo, snapshot(curMask, curOwner))
	return e
}

// Redo pops the room's redo stack, pushing the supplied current state onto
// the undo stack. Returns the snapshot to restore, or nil when there is
// nothing to redo.
func (m *Manager) Redo(roomID string, curMask []uint8, curOwner []uint32) *Entry {
	st := m.stacksFor(roomID)
	if len(st.redo) == 0 {
		return nil
	}
	e := st.redo[len(st.redo)-1]
	st.redo = st.redo[:len(st.redo)-1]
	st.undo = push(st.undo, snapshot(curMask, curOwner))
	return e
}

// UndoDepth returns how many undo steps are available for the room.
func (m *Manager) UndoDepth(roomID string) int {
	return len(m.stacksFor(roomID).undo)
}

// RedoDepth returns how many redo steps are available for the room.
func (m *Manager) RedoDepth(roomID string) int {
	return len(m.stacksFor(roomID).redo)
}

// Drop destroys the room's history; a room and its history die together.
func (m *Manager) Drop(roomID string) {
	delete(m.rooms, roomID)
}

// Clear destroys all history, used when a new image is loaded.
func (m *Manager) Clear() {
	m.rooms = make(map[string]*stacks)
}
