package editor

import (
	"room-masker/internal/mask"
	"room-masker/pkg/geometry"
)

// undoTarget is the room history operations apply to: the session room
// while a session is active, the selected room otherwise.
func (e *Engine) undoTarget() *mask.Room {
	if e.session.Active() {
		return e.session.Room
	}
	return e.selected
}

// Undo reverts the target room's last gesture. A no-op when no target room
// exists or its undo stack is empty.
func (e *Engine) Undo() {
	room := e.undoTarget()
	if room == nil {
		return
	}
	entry := e.hist.Undo(room.ID, room.Mask, e.store.OwnerSnapshot())
	if entry == nil {
		return
	}
	e.applySnapshot(room, entry.Mask, entry.Owner)
	e.log.Debug("undo", "id", room.ID, "depth", e.hist.UndoDepth(room.ID))
}

// Redo re-applies the target room's last undone gesture. A no-op when no
// target room exists or its redo stack is empty.
func (e *Engine) Redo() {
	room := e.undoTarget()
	if room == nil {
		return
	}
	entry := e.hist.Redo(room.ID, room.Mask, e.store.OwnerSnapshot())
	if entry == nil {
		return
	}
	e.applySnapshot(room, entry.Mask, entry.Owner)
	e.log.Debug("redo", "id", room.ID, "depth", e.hist.RedoDepth(room.ID))
}

// CanUndo reports whether the target room has undoable gestures.
func (e *Engine) CanUndo() bool {
	room := e.undoTarget()
	return room != nil && e.hist.UndoDepth(room.ID) > 0
}

// CanRedo reports whether the target room has redoable gestures.
func (e *Engine) CanRedo() bool {
	room := e.undoTarget()
	return room != nil && e.hist.RedoDepth(room.ID) > 0
}

func (e *Engine) applySnapshot(room *mask.Room, snapMask []uint8, snapOwner []uint32) {
	copy(room.Mask, snapMask)
	e.store.RestoreOwners(snapOwner)
	e.markDirty(geometry.FullImage(e.ctx.Width, e.ctx.Height))
	e.Emit(EventModified, nil)
}
