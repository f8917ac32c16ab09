package editor

import (
	"fmt"

	"room-masker/internal/mask"
	"room-masker/internal/tools"
	"room-masker/pkg/geometry"
)

// CreateRoom starts a new empty room and opens a Creating session in
// restricted mode. Only one room may be in Creating/Editing at a time.
func (e *Engine) CreateRoom() (*mask.Room, error) {
	if e.ctx == nil {
		return nil, fmt.Errorf("no image loaded")
	}
	if e.session.Active() {
		return nil, fmt.Errorf("an editing session is already active for room %q", e.session.Room.ID)
	}

	e.roomSeq++
	id := fmt.Sprintf("room-%d", e.roomSeq)
	name := fmt.Sprintf("Room %d", e.roomSeq)
	c := e.palette[(e.roomSeq-1)%len(e.palette)]

	room := mask.NewRoom(id, name, c)
	if err := e.store.AddRoom(room); err != nil {
		return nil, err
	}

	e.store.SetRestricted(room)
	e.session = tools.Creating(room)
	e.selected = room

	e.log.Debug("room created", "id", id)
	e.Emit(EventRoomsChanged, nil)
	e.Emit(EventSessionChanged, e.session)
	return room, nil
}

// EditRoom re-opens an existing room for editing. The pre-edit mask is
// snapshotted so CancelRoom can roll the room back completely.
func (e *Engine) EditRoom(id string) error {
	if e.ctx == nil {
		return fmt.Errorf("no image loaded")
	}
	if e.session.Active() {
		return fmt.Errorf("an editing session is already active for room %q", e.session.Room.ID)
	}
	room := e.store.RoomByID(id)
	if room == nil {
		return fmt.Errorf("unknown room %q", id)
	}

	room.Confirmed = false
	e.store.SetRestricted(room)
	e.session = tools.Editing(room)
	e.selected = room

	e.log.Debug("room opened for editing", "id", id)
	e.Emit(EventSessionChanged, e.session)
	return nil
}

// ConfirmRoom accepts the active room's boundary, lifting the restriction.
// A no-op when no session is active.
func (e *Engine) ConfirmRoom() {
	if !e.session.Active() {
		return
	}
	room := e.session.Room
	room.Confirmed = true
	e.store.SetRestricted(nil)
	e.session = tools.Idle()
	e.finishGesture()

	e.log.Debug("room confirmed", "id", room.ID)
	e.Emit(EventSessionChanged, e.session)
	e.Emit(EventRoomsChanged, nil)
	e.Emit(EventModified, nil)
}

// CancelRoom discards the active session: a Creating room is removed
// entirely (with its history), an Editing room is restored to its pre-edit
// mask. A no-op when no session is active.
func (e *Engine) CancelRoom() {
	if !e.session.Active() {
		return
	}
	room := e.session.Room

	switch e.session.State {
	case tools.StateCreating:
		e.store.DeleteRoom(room.ID)
		e.hist.Drop(room.ID)
		if e.selected == room {
			e.selected = nil
		}
	case tools.StateEditing:
		copy(room.Mask, e.session.Original)
		room.Confirmed = true
		e.hist.Drop(room.ID)
		e.store.RebuildOwners()
	}

	e.store.SetRestricted(nil)
	e.session = tools.Idle()
	e.finishGesture()
	e.markDirty(geometry.FullImage(e.ctx.Width, e.ctx.Height))

	e.log.Debug("session cancelled", "id", room.ID)
	e.Emit(EventSessionChanged, e.session)
	e.Emit(EventRoomsChanged, nil)
}

// DeleteRoom destroys a room together with its history and forces a full
// owner-array rebuild. Deleting the session room ends the session.
func (e *Engine) DeleteRoom(id string) {
	if e.store == nil {
		return
	}
	room := e.store.DeleteRoom(id)
	if room == nil {
		return
	}
	e.hist.Drop(id)
	if e.selected == room {
		e.selected = nil
	}
	if e.session.Active() && e.session.Room == room {
		e.session = tools.Idle()
		e.finishGesture()
		e.Emit(EventSessionChanged, e.session)
	}
	e.markDirty(geometry.FullImage(e.ctx.Width, e.ctx.Height))

	e.log.Debug("room deleted", "id", id)
	e.Emit(EventRoomsChanged, nil)
	e.Emit(EventModified, nil)
}

// finishGesture clears any in-progress pointer capture.
func (e *Engine) finishGesture() {
	e.pointerDown = false
	e.lasso.Reset()
	e.magnetic.Reset()
}

func (e *Engine) markDirty(rect geometry.PixelRect) {
	if e.comp == nil || rect.Empty() {
		return
	}
	e.comp.MarkDirty(rect)
}
