package dash

import "testing"

func TestMapPointInvertsAxis(t *testing.T) {
	series := []uint8{0, 5, 10, 15, 20, 25, 31}
	const x, y, w, h = 0, 0, 128, 44
	span := 31

	prevY := -1
	for i, v := range series {
		_, cy := mapPoint(i, v, 0, span, x, y, w, h, len(series))
		if prevY >= 0 && cy > prevY {
			t.Errorf("point %d: y=%d above previous %d for increasing series", i, cy, prevY)
		}
		if cy < y || cy >= y+h {
			t.Errorf("point %d: y=%d outside box", i, cy)
		}
		prevY = cy
	}

	// Extremes touch the box edges.
	_, top := mapPoint(len(series)-1, 31, 0, span, x, y, w, h, len(series))
	_, bottom := mapPoint(0, 0, 0, span, x, y, w, h, len(series))
	if top != y {
		t.Errorf("max value mapped to y=%d, want %d", top, y)
	}
	if bottom != y+h-1 {
		t.Errorf("min value mapped to y=%d, want %d", bottom, y+h-1)
	}
}

func TestMapPointConstantSeries(t *testing.T) {
	series := []uint8{7, 7, 7, 7}
	span := 1 // clamped range for a flat series
	first := -1
	for i := range series {
		_, cy := mapPoint(i, 7, 7, span, 0, 0, 64, 20, len(series))
		if first < 0 {
			first = cy
		}
		if cy != first {
			t.Errorf("point %d: y=%d, want %d for constant series", i, cy, first)
		}
	}
}

func TestDrawChartTooFewPoints(t *testing.T) {
	s := newFakeSurface()
	DrawChart(s, 0, 0, 64, 32, nil)
	DrawChart(s, 0, 0, 64, 32, []uint8{9})
	if len(s.pixels) != 0 {
		t.Fatalf("chart drew %d pixels for <2 points", len(s.pixels))
	}
}

func TestDrawChartSpansBox(t *testing.T) {
	s := newFakeSurface()
	const x, y, w, h = 0, 20, 128, 44
	DrawChart(s, x, y, w, h, []uint8{10, 15, 12, 20})

	if len(s.pixels) == 0 {
		t.Fatal("chart drew nothing")
	}
	minY, maxY := 1<<30, -1
	for p := range s.pixels {
		if p[0] < x || p[0] >= x+w || p[1] < y || p[1] >= y+h {
			t.Fatalf("pixel (%d,%d) outside chart box", p[0], p[1])
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	// Values 10 and 20 are the series extremes: the polyline must touch
	// both edges of the box.
	if minY != y {
		t.Errorf("top pixel at y=%d, want %d", minY, y)
	}
	if maxY != y+h-1 {
		t.Errorf("bottom pixel at y=%d, want %d", maxY, y+h-1)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	testCases := []struct{ x0, y0, x1, y1 int }{
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{0, 0, 7, 13},
		{10, 5, 2, 9},
		{3, 3, 3, 3},
	}
	for _, tc := range testCases {
		s := newFakeSurface()
		drawLine(s, tc.x0, tc.y0, tc.x1, tc.y1)
		if !s.pixels[[2]int{tc.x0, tc.y0}] {
			t.Errorf("line (%d,%d)-(%d,%d) missing start pixel", tc.x0, tc.y0, tc.x1, tc.y1)
		}
		if !s.pixels[[2]int{tc.x1, tc.y1}] {
			t.Errorf("line (%d,%d)-(%d,%d) missing end pixel", tc.x0, tc.y0, tc.x1, tc.y1)
		}
	}
}

func TestDrawLineHorizontalIsSolid(t *testing.T) {
	s := newFakeSurface()
	drawLine(s, 2, 4, 12, 4)
	for x := 2; x <= 12; x++ {
		if !s.pixels[[2]int{x, 4}] {
			t.Errorf("missing pixel at x=%d", x)
		}
	}
	if len(s.pixels) != 11 {
		t.Errorf("horizontal line drew %d pixels, want 11", len(s.pixels))
	}
}
