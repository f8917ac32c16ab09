package mask

import (
	"fmt"

	"room-masker/pkg/geometry"
)

// Store holds every room of the current image together with the shared
// owner index array: one uint32 per pixel, 0 meaning unowned, otherwise the
// dense index assigned to a room on first use (index 0 is reserved).
//
// Invariant: if owner[i] = k != 0 then the room with index k had mask[i] = 1
// at the last consistent rebuild. The owner array is a cache; the per-room
// masks are ground truth and the array is rebuildable from them at any time.
type Store struct {
	width  int
	height int

	rooms   []*Room
	owner   []uint32
	index   map[string]uint32 // room ID -> owner index
	byIndex map[uint32]*Room
	nextIdx uint32

	// restricted is the room currently being created or edited; while set,
	// that room may not claim pixels owned by another room.
	restricted *Room
}

// NewStore creates an empty store for a w x h image.
func NewStore(w, h int) *Store {
	return &Store{
		width:   w,
		height:  h,
		owner:   make([]uint32, w*h),
		index:   make(map[string]uint32),
		byIndex: make(map[uint32]*Room),
		nextIdx: 1,
	}
}

// Width returns the image width in pixels.
func (s *Store) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *Store) Height() int { return s.height }

// Rooms returns the rooms in insertion order.
func (s *Store) Rooms() []*Room { return s.rooms }

// RoomByID returns the room with the given ID, or nil.
func (s *Store) RoomByID(id string) *Room {
	for _, r := range s.rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// AddRoom registers a room, allocating its zeroed mask buffer.
func (s *Store) AddRoom(r *Room) error {
	if s.RoomByID(r.ID) != nil {
		return fmt.Errorf("duplicate room id %q", r.ID)
	}
	r.Mask = make([]uint8, s.width*s.height)
	s.rooms = append(s.rooms, r)
	return nil
}

// DeleteRoom removes a room. The owner array is fully rebuilt afterwards
// since the deleted room's index may be cached anywhere in it.
func (s *Store) DeleteRoom(id string) *Room {
	for i, r := range s.rooms {
		if r.ID != id {
			continue
		}
		s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
		if idx, ok := s.index[id]; ok {
			delete(s.index, id)
			delete(s.byIndex, idx)
		}
		if s.restricted == r {
			s.restricted = nil
		}
		s.RebuildOwners()
		return r
	}
	return nil
}

// SetRestricted marks the room currently being created/edited. Pass nil to
// lift the restriction.
func (s *Store) SetRestricted(r *Room) { s.restricted = r }

// Restricted returns the room in restricted mode, or nil.
func (s *Store) Restricted() *Room { return s.restricted }

// ownerIndexFor returns the room's dense owner index, assigning one on
// first use.
func (s *Store) ownerIndexFor(r *Room) uint32 {
	if idx, ok := s.index[r.ID]; ok {
		return idx
	}
	idx := s.nextIdx
	s.nextIdx++
	s.index[r.ID] = idx
	s.byIndex[idx] = r
	return idx
}

// CanAssign reports whether the room may set pixel idx to 1. In restricted
// mode the assignment is allowed only when no other room owns the pixel;
// the owner array is consulted first and a mask scan decides when the
// cached entry is stale. Outside restricted mode assignment is always
// allowed.
func (s *Store) CanAssign(r *Room, idx int) bool {
	if s.restricted != r {
		return true
	}
	k := s.owner[idx]
	if k != 0 {
		other := s.byIndex[k]
		if other != nil && other != r {
			if other.Mask[idx] == 1 {
				return false
			}
			// Stale cache entry: fall through to the mask scan.
		} else if other == r {
			return true
		}
	}
	for _, o := range s.rooms {
		if o != r && o.Mask[idx] == 1 {
			return false
		}
	}
	return true
}

// Paint writes value (0 or 1) to the given pixel indices of the room's
// mask, keeping the owner array consistent within the same call. Callers
// are expected to have filtered indices through CanAssign when painting 1
// in restricted mode. Returns the dirty rectangle of changed pixels.
func (s *Store) Paint(r *Room, indices []int, value uint8) geometry.PixelRect {
	var dirty geometry.PixelRect
	idxOwner := uint32(0)
	if value == 1 {
		idxOwner = s.ownerIndexFor(r)
	}

	for _, idx := range indices {
		if r.Mask[idx] == value {
			continue
		}
		r.Mask[idx] = value
		if value == 1 {
			s.owner[idx] = idxOwner
		} else if s.owner[idx] == s.index[r.ID] {
			s.owner[idx] = s.deriveOwner(r, idx)
		}
		dirty = dirty.Include(idx%s.width, idx/s.width)
	}

	return dirty.Intersect(s.width, s.height)
}

// deriveOwner re-derives the owner of a pixel just released by room r by
// scanning the other rooms' masks. Later rooms win, matching RebuildOwners.
func (s *Store) deriveOwner(r *Room, idx int) uint32 {
	owner := uint32(0)
	for _, o := range s.rooms {
		if o != r && o.Mask[idx] == 1 {
			owner = s.ownerIndexFor(o)
		}
	}
	return owner
}

// RebuildOwners clears the owner array and reassigns it from the per-room
// masks in insertion order; later rooms win contested pixels. Must be
// called after any code path that can desynchronize the cache: undo/redo
// restoring a snapshot without a stored owner array, and room deletion.
func (s *Store) RebuildOwners() {
	for i := range s.owner {
		s.owner[i] = 0
	}
	for _, r := range s.rooms {
		idx := s.ownerIndexFor(r)
		for i, v := range r.Mask {
			if v == 1 {
				s.owner[i] = idx
			}
		}
	}
}

// RoomAt returns the room under the pixel, testing the owner array first
// and falling back to a mask scan when the cache is empty or stale. The
// scan runs in reverse insertion order so the answer matches the rebuild
// tie-break. Returns nil when no room covers the pixel.
func (s *Store) RoomAt(x, y int) *Room {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return nil
	}
	idx := y*s.width + x
	if k := s.owner[idx]; k != 0 {
		if r := s.byIndex[k]; r != nil && r.Mask[idx] == 1 {
			return r
		}
	}
	for i := len(s.rooms) - 1; i >= 0; i-- {
		if s.rooms[i].Mask[idx] == 1 {
			return s.rooms[i]
		}
	}
	return nil
}

// OwnerSnapshot returns a copy of the owner array, paired with mask
// snapshots in history entries.
func (s *Store) OwnerSnapshot() []uint32 {
	out := make([]uint32, len(s.owner))
	copy(out, s.owner)
	return out
}

// RestoreOwners replaces the owner array with a snapshot. A nil snapshot
// forces a full rebuild instead.
func (s *Store) RestoreOwners(snapshot []uint32) {
	if snapshot == nil {
		s.RebuildOwners()
		return
	}
	copy(s.owner, snapshot)
}

// OwnerIndexAt exposes the raw owner value for one pixel; used by tests and
// diagnostics.
func (s *Store) OwnerIndexAt(idx int) uint32 { return s.owner[idx] }
