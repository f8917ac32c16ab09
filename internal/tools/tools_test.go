package tools

import (
	"image/color"
	"testing"

	roomimage "room-masker/internal/image"
	"room-masker/internal/mask"
	"room-masker/pkg/geometry"
)

func newTestStore(t *testing.T, w, h int, ids ...string) (*mask.Store, []*mask.Room) {
	t.Helper()
	st := mask.NewStore(w, h)
	rooms := make([]*mask.Room, 0, len(ids))
	for i, id := range ids {
		r := mask.NewRoom(id, id, color.RGBA{R: uint8(50 * (i + 1)), A: 255})
		if err := st.AddRoom(r); err != nil {
			t.Fatalf("AddRoom(%s): %v", id, err)
		}
		rooms = append(rooms, r)
	}
	return st, rooms
}

func grayContext(t *testing.T, w, h int, v uint8) *roomimage.Context {
	t.Helper()
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
		pix[i+3] = 255
	}
	ctx, err := roomimage.NewContext(pix, w, h)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func maskCount(r *mask.Room) int {
	n := 0
	for _, v := range r.Mask {
		if v == 1 {
			n++
		}
	}
	return n
}

func TestClampBrushRadius(t *testing.T) {
	if got := ClampBrushRadius(0); got != BrushRadiusMin {
		t.Errorf("ClampBrushRadius(0) = %d", got)
	}
	if got := ClampBrushRadius(999); got != BrushRadiusMax {
		t.Errorf("ClampBrushRadius(999) = %d", got)
	}
	if got := ClampBrushRadius(7); got != 7 {
		t.Errorf("ClampBrushRadius(7) = %d", got)
	}
}

func TestBrushStampPaintsDisc(t *testing.T) {
	st, rooms := newTestStore(t, 20, 20, "a")
	b := Brush{Radius: 2}
	dirty := b.Stamp(st, rooms[0], geometry.PointInt{X: 10, Y: 10})

	if rooms[0].Mask[10*20+10] != 1 {
		t.Fatal("center pixel not painted")
	}
	if maskCount(rooms[0]) != 13 {
		t.Errorf("radius-2 disc painted %d pixels, want 13", maskCount(rooms[0]))
	}
	if !dirty.Contains(10, 10) {
		t.Errorf("dirty rect %+v misses the stamp", dirty)
	}
}

func TestBrushStrokeInterpolates(t *testing.T) {
	st, rooms := newTestStore(t, 40, 10, "a")
	b := Brush{Radius: 1}
	b.Stroke(st, rooms[0], geometry.PointInt{X: 2, Y: 5}, geometry.PointInt{X: 30, Y: 5})

	// Every column along the fast stroke must be covered.
	for x := 2; x <= 30; x++ {
		if rooms[0].Mask[5*40+x] != 1 {
			t.Errorf("gap in stroke at x=%d", x)
		}
	}
}

func TestBrushRestrictedLeavesOtherRoomIntact(t *testing.T) {
	st, rooms := newTestStore(t, 20, 20, "a", "b")
	a, b := rooms[0], rooms[1]

	// Room a owns a block.
	Brush{Radius: 3}.Stamp(st, a, geometry.PointInt{X: 5, Y: 5})
	before := maskCount(a)

	// Room b paints over it in restricted mode.
	st.SetRestricted(b)
	Brush{Radius: 3}.Stamp(st, b, geometry.PointInt{X: 6, Y: 5})

	if maskCount(a) != before {
		t.Error("painting room b modified room a's mask")
	}
	for i, v := range b.Mask {
		if v == 1 && a.Mask[i] == 1 {
			t.Fatalf("pixel %d assigned to both rooms in restricted mode", i)
		}
	}
	// The overlapping stamps still gained b some pixels outside a.
	if maskCount(b) == 0 {
		t.Error("room b painted nothing")
	}
}

func TestEraserOnlyClearsOwnRoom(t *testing.T) {
	st, rooms := newTestStore(t, 20, 20, "a", "b")
	a, b := rooms[0], rooms[1]

	Brush{Radius: 2}.Stamp(st, a, geometry.PointInt{X: 5, Y: 5})
	before := maskCount(a)

	Brush{Radius: 4, Erase: true}.Stamp(st, b, geometry.PointInt{X: 5, Y: 5})

	if maskCount(a) != before {
		t.Error("erasing room b cleared pixels of room a")
	}
}

func TestLassoCommitRequiresThreePoints(t *testing.T) {
	st, rooms := newTestStore(t, 10, 10, "a")
	var l Lasso
	l.Start(geometry.Point2D{X: 1, Y: 1})
	l.Extend(geometry.Point2D{X: 5, Y: 5})

	dirty := l.Commit(st, rooms[0])
	if !dirty.Empty() {
		t.Error("2-point lasso committed pixels")
	}
	if maskCount(rooms[0]) != 0 {
		t.Error("2-point lasso painted the mask")
	}
	if l.Active() {
		t.Error("commit did not reset the capture")
	}
}

func TestLassoCommitFillsPolygon(t *testing.T) {
	st, rooms := newTestStore(t, 20, 20, "a")
	var l Lasso
	l.Start(geometry.Point2D{X: 2, Y: 2})
	l.Extend(geometry.Point2D{X: 10, Y: 2})
	l.Extend(geometry.Point2D{X: 10, Y: 10})
	l.Extend(geometry.Point2D{X: 2, Y: 10})

	dirty := l.Commit(st, rooms[0])
	if dirty.Empty() {
		t.Fatal("lasso commit painted nothing")
	}
	if rooms[0].Mask[5*20+5] != 1 {
		t.Error("interior pixel not filled")
	}
	if maskCount(rooms[0]) != 64 {
		t.Errorf("square lasso filled %d pixels, want 64", maskCount(rooms[0]))
	}
}

func TestSnapToEdgePullsTowardGradient(t *testing.T) {
	// Step edge between columns 9 and 10 on a 20x20 image.
	w, h := 20, 20
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(40)
			if x >= 10 {
				v = 220
			}
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	ctx, err := roomimage.NewContext(pix, w, h)
	if err != nil {
		t.Fatal(err)
	}

	snapped := SnapToEdge(ctx, geometry.Point2D{X: 6, Y: 10}, DefaultSnapRadius)
	if snapped.X != 9 && snapped.X != 10 {
		t.Errorf("snapped to x=%d, want the edge at 9 or 10", snapped.X)
	}
}

func TestSnapToEdgeFlatImageStaysPut(t *testing.T) {
	ctx := grayContext(t, 20, 20, 128)
	snapped := SnapToEdge(ctx, geometry.Point2D{X: 7, Y: 7}, DefaultSnapRadius)
	if snapped != (geometry.PointInt{X: 7, Y: 7}) {
		t.Errorf("flat image snapped (7,7) to %+v", snapped)
	}
}

func TestWandFillsFlatRegion(t *testing.T) {
	st, rooms := newTestStore(t, 8, 8, "a")
	ctx := grayContext(t, 8, 8, 100)

	dirty := Wand{Tolerance: 10}.Fill(st, rooms[0], ctx, 3, 3)
	if maskCount(rooms[0]) != 64 {
		t.Errorf("wand filled %d pixels, want 64", maskCount(rooms[0]))
	}
	if dirty.Width() != 8 || dirty.Height() != 8 {
		t.Errorf("dirty rect = %+v, want full image", dirty)
	}
}

func TestWandRespectsRestriction(t *testing.T) {
	st, rooms := newTestStore(t, 8, 8, "a", "b")
	a, b := rooms[0], rooms[1]
	ctx := grayContext(t, 8, 8, 100)

	// Room a owns a vertical wall at x=4; the restricted wand seeded on the
	// left must not cross it.
	wall := make([]int, 0, 8)
	for y := 0; y < 8; y++ {
		wall = append(wall, y*8+4)
	}
	st.Paint(a, wall, 1)

	st.SetRestricted(b)
	Wand{Tolerance: 10}.Fill(st, b, ctx, 1, 1)

	for i, v := range b.Mask {
		if v == 1 && i%8 >= 4 {
			t.Fatalf("wand crossed the owned wall at index %d", i)
		}
	}
	if maskCount(b) != 32 {
		t.Errorf("restricted wand filled %d pixels, want 32", maskCount(b))
	}
}

func TestAutoToleranceFlooredOnFlatRegion(t *testing.T) {
	ctx := grayContext(t, 16, 16, 100)
	if got := AutoTolerance(ctx, 8, 8); got != DefaultWandTolerance {
		t.Errorf("flat-region auto tolerance = %f, want floor %d", got, DefaultWandTolerance)
	}
}

func TestSessionStates(t *testing.T) {
	if Idle().Active() {
		t.Error("idle session reports active")
	}
	r := mask.NewRoom("a", "A", color.RGBA{})
	r.Mask = []uint8{1, 0, 1}

	s := Editing(r)
	if !s.Active() || s.State != StateEditing {
		t.Error("editing session state wrong")
	}
	r.Mask[1] = 1
	if s.Original[1] != 0 {
		t.Error("editing snapshot aliases the live mask")
	}

	if !Creating(r).Active() {
		t.Error("creating session reports inactive")
	}
}

func TestToolMutating(t *testing.T) {
	if ToolMove.Mutating() {
		t.Error("move tool reported as mutating")
	}
	for _, tool := range []Tool{ToolBrush, ToolEraser, ToolLasso, ToolMagneticLasso, ToolWand} {
		if !tool.Mutating() {
			t.Errorf("%s reported as non-mutating", tool)
		}
	}
}
