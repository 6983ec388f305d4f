package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorOff = color.RGBA{A: 0xFF}
)

// bufferClearer is implemented by displays with a fast full-buffer clear
// (the ssd1306 driver among them).
type bufferClearer interface {
	ClearBuffer()
}

// TextSurface implements Surface on top of any drivers.Displayer. The
// character grid is derived from the font metrics; WriteText renders
// through tinyfont.
type TextSurface struct {
	d    drivers.Displayer
	font tinyfont.Fonter

	cellW int
	cellH int

	row int
	col int
}

// NewTextSurface wraps a pixel display in a Surface.
func NewTextSurface(d drivers.Displayer) *TextSurface {
	s := &TextSurface{d: d, font: &proggy.TinySZ8pt7b}
	_, adv := tinyfont.LineWidth(s.font, "0")
	s.cellW = int(adv)
	if s.cellW <= 0 {
		s.cellW = 6
	}
	s.cellH = int(s.font.GetYAdvance())
	if s.cellH <= 0 {
		s.cellH = 10
	}
	return s
}

func (s *TextSurface) Size() (w, h int) {
	dw, dh := s.d.Size()
	return int(dw), int(dh)
}

func (s *TextSurface) Cells() (rows, cols int) {
	w, h := s.Size()
	return h / s.cellH, w / s.cellW
}

// CellSize returns the pixel dimensions of one character cell.
func (s *TextSurface) CellSize() (w, h int) { return s.cellW, s.cellH }

func (s *TextSurface) Clear() {
	s.row, s.col = 0, 0
	if bc, ok := s.d.(bufferClearer); ok {
		bc.ClearBuffer()
		return
	}
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.d.SetPixel(int16(x), int16(y), colorOff)
		}
	}
}

func (s *TextSurface) SetCursor(row, col int) {
	rows, cols := s.Cells()
	if row < 0 {
		row = 0
	}
	if row >= rows && rows > 0 {
		row = rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= cols && cols > 0 {
		col = cols - 1
	}
	s.row, s.col = row, col
}

func (s *TextSurface) WriteText(text string) {
	if text == "" {
		return
	}
	x := int16(s.col * s.cellW)
	// tinyfont draws up from the baseline.
	y := int16(s.row*s.cellH + s.cellH - 2)
	tinyfont.WriteLine(s.d, s.font, x, y, text, colorOn)
	s.col += len(text)
}

func (s *TextSurface) WriteGlyph(g Glyph) {
	s.DrawBitmap(s.col*s.cellW, s.row*s.cellH, g)
	s.col += (g.Width + s.cellW - 1) / s.cellW
}

func (s *TextSurface) DrawBitmap(x, y int, g Glyph) {
	if g.Width <= 0 || g.Height <= 0 {
		return
	}
	stride := (g.Width + 7) / 8
	for gy := 0; gy < g.Height; gy++ {
		row := gy * stride
		for gx := 0; gx < g.Width; gx++ {
			off := row + gx/8
			if off >= len(g.Bits) {
				return
			}
			if g.Bits[off]&(0x80>>uint(gx&7)) != 0 {
				s.SetPixel(x+gx, y+gy, true)
			}
		}
	}
}

func (s *TextSurface) SetPixel(x, y int, on bool) {
	w, h := s.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	c := colorOff
	if on {
		c = colorOn
	}
	s.d.SetPixel(int16(x), int16(y), c)
}

func (s *TextSurface) Flush() error {
	return s.d.Display()
}
