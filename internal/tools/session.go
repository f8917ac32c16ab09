package tools

import (
	"room-masker/internal/mask"
)

// SessionState is the lifecycle state of the editing session.
type SessionState int

const (
	// StateIdle means no room is being drawn; mutating tools are no-ops.
	StateIdle SessionState = iota
	// StateCreating means a brand-new unconfirmed room is being drawn in
	// restricted mode.
	StateCreating
	// StateEditing means an existing confirmed room was re-opened; the
	// pre-edit mask is snapshotted for full rollback on cancel.
	StateEditing
)

func (s SessionState) String() string {
	switch s {
	case StateCreating:
		return "Creating"
	case StateEditing:
		return "Editing"
	default:
		return "Idle"
	}
}

// Session is the explicit editing-session value passed through the tool
// engines. Only one room may be in Creating/Editing at a time.
type Session struct {
	State SessionState
	Room  *mask.Room

	// Original holds the pre-edit mask snapshot while State is Editing,
	// restored verbatim when the session is cancelled.
	Original []uint8
}

// Idle returns the inactive session.
func Idle() Session {
	return Session{State: StateIdle}
}

// Creating returns a session for a newly created room.
func Creating(r *mask.Room) Session {
	return Session{State: StateCreating, Room: r}
}

// Editing returns a session for re-opening an existing room, capturing the
// rollback snapshot.
func Editing(r *mask.Room) Session {
	return Session{State: StateEditing, Room: r, Original: r.CloneMask()}
}

// Active reports whether a room is currently being drawn.
func (s Session) Active() bool {
	return s.State != StateIdle && s.Room != nil
}
