package hal

import (
	"image/color"
	"testing"
)

// fakeDisplay is a bare drivers.Displayer with no fast-clear support.
type fakeDisplay struct {
	w, h     int16
	on       map[[2]int16]bool
	displays int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: 128, h: 64, on: make(map[[2]int16]bool)}
}

func (d *fakeDisplay) Size() (int16, int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		delete(d.on, [2]int16{x, y})
		return
	}
	d.on[[2]int16{x, y}] = true
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return nil
}

func TestTextSurfaceGeometry(t *testing.T) {
	s := NewTextSurface(newFakeDisplay())
	w, h := s.Size()
	if w != 128 || h != 64 {
		t.Fatalf("size = %dx%d, want 128x64", w, h)
	}
	rows, cols := s.Cells()
	if rows <= 0 || cols <= 0 {
		t.Fatalf("cell grid %dx%d not positive", rows, cols)
	}
	cw, ch := s.CellSize()
	if cw <= 0 || ch <= 0 {
		t.Fatalf("cell size %dx%d not positive", cw, ch)
	}
	if rows != h/ch || cols != w/cw {
		t.Errorf("cell grid %dx%d inconsistent with cell size %dx%d", rows, cols, cw, ch)
	}
}

func TestTextSurfacePixelBounds(t *testing.T) {
	d := newFakeDisplay()
	s := NewTextSurface(d)

	s.SetPixel(-1, 0, true)
	s.SetPixel(0, -1, true)
	s.SetPixel(128, 0, true)
	s.SetPixel(0, 64, true)
	if len(d.on) != 0 {
		t.Fatalf("out-of-bounds pixels written: %d", len(d.on))
	}

	s.SetPixel(5, 7, true)
	if !d.on[[2]int16{5, 7}] {
		t.Fatal("in-bounds pixel not written")
	}
	s.SetPixel(5, 7, false)
	if d.on[[2]int16{5, 7}] {
		t.Fatal("pixel not cleared")
	}
}

func TestTextSurfaceClear(t *testing.T) {
	d := newFakeDisplay()
	s := NewTextSurface(d)

	s.SetPixel(3, 3, true)
	s.SetCursor(2, 4)
	s.Clear()

	if len(d.on) != 0 {
		t.Fatalf("%d pixels survived Clear", len(d.on))
	}
	s.WriteText("x")
	if len(d.on) == 0 {
		t.Fatal("no pixels after writing at origin")
	}
	// The cursor must have been reset: the glyph lands in the first cell.
	cw, ch := s.CellSize()
	for p := range d.on {
		if int(p[0]) >= cw || int(p[1]) >= ch {
			t.Fatalf("pixel (%d,%d) outside the first cell after Clear", p[0], p[1])
		}
	}
}

func TestTextSurfaceWriteAdvancesCursor(t *testing.T) {
	d := newFakeDisplay()
	s := NewTextSurface(d)
	cw, _ := s.CellSize()

	s.SetCursor(0, 0)
	s.WriteText("ab")
	first := len(d.on)
	if first == 0 {
		t.Fatal("text drew nothing")
	}
	s.WriteText("cd")
	// The second write must land right of the first: some pixel at or
	// beyond column 2 cells.
	beyond := false
	for p := range d.on {
		if int(p[0]) >= 2*cw {
			beyond = true
			break
		}
	}
	if !beyond {
		t.Error("cursor did not advance between writes")
	}
}

func TestTextSurfaceDrawBitmap(t *testing.T) {
	d := newFakeDisplay()
	s := NewTextSurface(d)

	g := Glyph{Width: 8, Height: 2, Bits: []byte{0x81, 0xFF}}
	s.DrawBitmap(10, 20, g)

	expect := map[[2]int16]bool{
		{10, 20}: true, {17, 20}: true,
	}
	for x := int16(10); x < 18; x++ {
		expect[[2]int16{x, 21}] = true
	}
	if len(d.on) != len(expect) {
		t.Fatalf("drew %d pixels, want %d", len(d.on), len(expect))
	}
	for p := range expect {
		if !d.on[p] {
			t.Errorf("missing pixel (%d,%d)", p[0], p[1])
		}
	}
}

func TestTextSurfaceFlush(t *testing.T) {
	d := newFakeDisplay()
	s := NewTextSurface(d)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if d.displays != 1 {
		t.Fatalf("Display called %d times, want 1", d.displays)
	}
}
