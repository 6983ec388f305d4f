package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Panel geometry of the SSD1306 OLED each half carries.
const (
	panelWidth  = 128
	panelHeight = 64
)

// Role identifies which half of the split device this process is.
//
// It is fixed at startup (strap pin on hardware, construction on host) and
// injected into the code paths that differ per half.
type Role uint8

const (
	RoleMaster Role = iota
	RoleSlave
)

func (r Role) String() string {
	switch r {
	case RoleMaster:
		return "master"
	case RoleSlave:
		return "slave"
	default:
		return "unknown"
	}
}

// Glyph is a small monochrome bitmap: row-major, MSB-first within each
// byte, rows padded to whole bytes.
type Glyph struct {
	Width  int
	Height int
	Bits   []byte
}

// Surface is the drawing abstraction over one monochrome panel. Text
// placement works in character cells; glyphs and pixels address the raw
// grid. Nothing is visible until Flush.
type Surface interface {
	// Size returns the pixel dimensions.
	Size() (w, h int)
	// Cells returns the character grid dimensions.
	Cells() (rows, cols int)
	Clear()
	SetCursor(row, col int)
	WriteText(s string)
	// WriteGlyph draws a bitmap at the cursor and advances it.
	WriteGlyph(g Glyph)
	// DrawBitmap draws a bitmap at raw pixel coordinates.
	DrawBitmap(x, y int, g Glyph)
	SetPixel(x, y int, on bool)
	Flush() error
}

// Display provides access to the panel surface.
type Display interface {
	Surface() Surface
}

// KeyCode is a logical dashboard key. Matrix scanning, debouncing and
// keymap lookup happen outside this firmware; only these three actions
// reach it.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyStockPrev
	KeyStockNext
	KeyShowMetro
)

// KeyEvent is one logical key transition.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keys provides logical key events (best-effort on each platform).
type Keys interface {
	Events() <-chan KeyEvent
}

// Link is a fixed-size frame pipe: the host transport on one side, the
// inter-half wire on the other. Recv is non-blocking and returns 0 when no
// frame is pending; Send is fire-and-forget from the caller's point of
// view (a dropped frame self-heals on the next periodic one).
type Link interface {
	Send(p []byte) error
	Recv(p []byte) (int, error)
}

// Clock is a free-running monotonic 32-bit millisecond counter. Elapsed
// time is always computed by subtraction so wraparound stays safe.
type Clock interface {
	Millis() uint32
}

// HAL is the only contact point between the dashboard and the outside
// world.
type HAL interface {
	Logger() Logger
	Role() Role
	Display() Display
	Keys() Keys
	// Host is the frame transport to the host application. Nil on the
	// slave half, which only ever sees frames over the split wire.
	Host() Link
	// Split is the inter-half wire.
	Split() Link
	Clock() Clock
}
