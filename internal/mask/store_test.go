package mask

import (
	"image/color"
	"testing"
)

func newTestStore(t *testing.T, w, h int, ids ...string) (*Store, []*Room) {
	t.Helper()
	st := NewStore(w, h)
	rooms := make([]*Room, 0, len(ids))
	for i, id := range ids {
		r := NewRoom(id, id, color.RGBA{R: uint8(40 * (i + 1)), A: 255})
		if err := st.AddRoom(r); err != nil {
			t.Fatalf("AddRoom(%s): %v", id, err)
		}
		rooms = append(rooms, r)
	}
	return st, rooms
}

func TestAddRoomDuplicateID(t *testing.T) {
	st, _ := newTestStore(t, 4, 4, "a")
	if err := st.AddRoom(NewRoom("a", "again", color.RGBA{})); err == nil {
		t.Fatal("duplicate room ID accepted")
	}
}

func TestPaintSetsMaskAndOwner(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	dirty := st.Paint(rooms[0], []int{0, 1, 5}, 1)

	for _, idx := range []int{0, 1, 5} {
		if rooms[0].Mask[idx] != 1 {
			t.Errorf("mask[%d] = %d, want 1", idx, rooms[0].Mask[idx])
		}
		if st.OwnerIndexAt(idx) == 0 {
			t.Errorf("owner[%d] still unowned", idx)
		}
	}
	if dirty.Empty() {
		t.Fatal("paint returned empty dirty rect")
	}
	if !dirty.Contains(0, 0) || !dirty.Contains(1, 1) {
		t.Errorf("dirty rect %+v misses painted pixels", dirty)
	}
}

func TestRestrictedModeBlocksOwnedPixels(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a", "b")
	a, b := rooms[0], rooms[1]

	st.Paint(a, []int{5}, 1)

	st.SetRestricted(b)
	if st.CanAssign(b, 5) {
		t.Error("restricted room may not claim another room's pixel")
	}
	if !st.CanAssign(b, 6) {
		t.Error("restricted room blocked from an unowned pixel")
	}

	st.SetRestricted(nil)
	if !st.CanAssign(b, 5) {
		t.Error("unrestricted assignment should always be allowed")
	}
}

func TestCanAssignOwnPixel(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	a := rooms[0]
	st.Paint(a, []int{3}, 1)
	st.SetRestricted(a)
	if !st.CanAssign(a, 3) {
		t.Error("room blocked from re-painting its own pixel")
	}
}

func TestEraseRederivesOwnership(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a", "b")
	a, b := rooms[0], rooms[1]

	// Both rooms cover pixel 5 (painted unrestricted), then a releases it.
	st.Paint(a, []int{5}, 1)
	st.Paint(b, []int{5}, 1)
	st.Paint(a, []int{5}, 0)

	if a.Mask[5] != 0 {
		t.Fatal("erase did not clear the mask")
	}
	if got := st.RoomAt(1, 1); got != b {
		t.Errorf("pixel 5 owner after release = %v, want room b", got)
	}
}

func TestEraseToUnowned(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	a := rooms[0]
	st.Paint(a, []int{5}, 1)
	st.Paint(a, []int{5}, 0)
	if st.OwnerIndexAt(5) != 0 {
		t.Error("sole owner released the pixel but owner entry remains")
	}
	if st.RoomAt(1, 1) != nil {
		t.Error("RoomAt found a room on a released pixel")
	}
}

func TestRebuildOwnersLaterRoomWins(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a", "b")
	a, b := rooms[0], rooms[1]

	// Contested pixel via direct mask writes, then rebuild.
	a.Mask[7] = 1
	b.Mask[7] = 1
	st.RebuildOwners()

	if got := st.RoomAt(3, 1); got != b {
		t.Errorf("contested pixel resolved to %v, want the later room", got)
	}
}

func TestRoomAtFallbackScan(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	a := rooms[0]

	// Mask set behind the store's back: owner cache knows nothing.
	a.Mask[9] = 1
	if got := st.RoomAt(1, 2); got != a {
		t.Errorf("fallback scan returned %v, want room a", got)
	}
}

func TestRoomAtOutOfBounds(t *testing.T) {
	st, _ := newTestStore(t, 4, 4, "a")
	if st.RoomAt(-1, 0) != nil || st.RoomAt(4, 0) != nil {
		t.Error("out-of-bounds RoomAt should return nil")
	}
}

func TestDeleteRoomRebuilds(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a", "b")
	a, b := rooms[0], rooms[1]

	st.Paint(a, []int{2}, 1)
	st.Paint(b, []int{2}, 1)

	if st.DeleteRoom("b") != b {
		t.Fatal("DeleteRoom returned wrong room")
	}
	if got := st.RoomAt(2, 0); got != a {
		t.Errorf("after deleting b, pixel owner = %v, want a", got)
	}
	if st.RoomByID("b") != nil {
		t.Error("deleted room still resolvable by ID")
	}
}

func TestDeleteRoomClearsRestriction(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	st.SetRestricted(rooms[0])
	st.DeleteRoom("a")
	if st.Restricted() != nil {
		t.Error("restriction survived room deletion")
	}
}

func TestOwnerSnapshotRoundTrip(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	st.Paint(rooms[0], []int{1, 2, 3}, 1)

	snap := st.OwnerSnapshot()
	st.Paint(rooms[0], []int{1, 2, 3}, 0)
	rooms[0].Mask[1] = 1
	rooms[0].Mask[2] = 1
	rooms[0].Mask[3] = 1
	st.RestoreOwners(snap)

	for _, idx := range []int{1, 2, 3} {
		if st.OwnerIndexAt(idx) == 0 {
			t.Errorf("owner[%d] not restored", idx)
		}
	}
}

func TestRestoreOwnersNilRebuilds(t *testing.T) {
	st, rooms := newTestStore(t, 4, 4, "a")
	rooms[0].Mask[6] = 1
	st.RestoreOwners(nil)
	if st.OwnerIndexAt(6) == 0 {
		t.Error("nil snapshot should force a rebuild from masks")
	}
}
