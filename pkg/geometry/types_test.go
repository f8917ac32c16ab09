package geometry

import "testing"

func TestPixelRectZeroValueIsEmpty(t *testing.T) {
	var r PixelRect
	if !r.Empty() {
		t.Fatal("zero-value PixelRect should be empty")
	}
	if r.Width() != 0 || r.Height() != 0 {
		t.Errorf("empty rect has size %dx%d, want 0x0", r.Width(), r.Height())
	}
	if r.Contains(0, 0) {
		t.Error("empty rect should not contain any pixel")
	}
}

func TestPixelRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b PixelRect
		want PixelRect
	}{
		{
			name: "disjoint takes bounding box",
			a:    NewPixelRect(0, 0, 1, 1),
			b:    NewPixelRect(10, 10, 12, 12),
			want: NewPixelRect(0, 0, 12, 12),
		},
		{
			name: "empty left operand",
			a:    PixelRect{},
			b:    NewPixelRect(3, 4, 5, 6),
			want: NewPixelRect(3, 4, 5, 6),
		},
		{
			name: "empty right operand",
			a:    NewPixelRect(3, 4, 5, 6),
			b:    PixelRect{},
			want: NewPixelRect(3, 4, 5, 6),
		},
		{
			name: "contained rect is absorbed",
			a:    NewPixelRect(0, 0, 10, 10),
			b:    NewPixelRect(2, 2, 4, 4),
			want: NewPixelRect(0, 0, 10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.want {
				t.Errorf("Union = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPixelRectInclusiveSize(t *testing.T) {
	r := NewPixelRect(2, 3, 2, 3)
	if r.Width() != 1 || r.Height() != 1 {
		t.Errorf("single-pixel rect has size %dx%d, want 1x1", r.Width(), r.Height())
	}
}

func TestPixelRectIntersect(t *testing.T) {
	r := PixelRectAround(0, 0, 5).Intersect(100, 100)
	if r.MinX != 0 || r.MinY != 0 || r.MaxX != 5 || r.MaxY != 5 {
		t.Errorf("clipped rect = %+v", r)
	}

	outside := NewPixelRect(200, 200, 210, 210).Intersect(100, 100)
	if !outside.Empty() {
		t.Error("rect fully outside image should clip to empty")
	}
}

func TestPixelRectNormalizesCorners(t *testing.T) {
	r := NewPixelRect(5, 8, 1, 2)
	if r.MinX != 1 || r.MinY != 2 || r.MaxX != 5 || r.MaxY != 8 {
		t.Errorf("swapped corners not normalized: %+v", r)
	}
}

func TestPointIntClamp(t *testing.T) {
	tests := []struct {
		in   PointInt
		want PointInt
	}{
		{PointInt{X: -3, Y: 4}, PointInt{X: 0, Y: 4}},
		{PointInt{X: 12, Y: -1}, PointInt{X: 9, Y: 0}},
		{PointInt{X: 5, Y: 5}, PointInt{X: 5, Y: 5}},
		{PointInt{X: 10, Y: 10}, PointInt{X: 9, Y: 9}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(10, 10); got != tt.want {
			t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestPoint2DRound(t *testing.T) {
	p := Point2D{X: 2.6, Y: 3.4}
	if got := p.Round(); got != (PointInt{X: 3, Y: 3}) {
		t.Errorf("Round = %+v", got)
	}
}
