package telemetry

// Kind identifies the record type carried in byte 0 of a frame.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindStock
	KindMetro
	KindMetroMsg1
	KindMetroMsg2
	KindWeather
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindStock:
		return "stock"
	case KindMetro:
		return "metro"
	case KindMetroMsg1:
		return "metro_msg1"
	case KindMetroMsg2:
		return "metro_msg2"
	case KindWeather:
		return "weather"
	default:
		return "unknown"
	}
}

// Condition is the weather condition code transmitted by the host.
type Condition uint8

const (
	CondClear Condition = iota
	CondClouds
	CondRain
	CondStorm
	CondSnow
	CondMist
	condCount
)

func (c Condition) String() string {
	switch c {
	case CondClear:
		return "clear"
	case CondClouds:
		return "clouds"
	case CondRain:
		return "rain"
	case CondStorm:
		return "storm"
	case CondSnow:
		return "snow"
	case CondMist:
		return "mist"
	default:
		return "unknown"
	}
}

const (
	// StockCount is the number of tracked stock indices.
	StockCount = 2

	// HistoryMax bounds the per-stock price history series.
	HistoryMax = 24

	// MetroTextMax bounds the reassembled metro incident message.
	MetroTextMax = 87

	// metroChunk is the text payload carried by one metro frame.
	metroChunk = 29

	// MetroWindowMillis is the incident freshness window.
	MetroWindowMillis = 600_000
)

// stockSymbols maps a stock index to its display code. Symbols are not
// transmitted on the wire.
var stockSymbols = [StockCount]string{"SPX ", "NDX "}

// Stock is the latest decoded snapshot for one stock index.
type Stock struct {
	Open       bool
	PriceCents uint32 // price x 100
	ChangeBP   int32  // percent x 100, signed
	History    [HistoryMax]uint8
	HistoryLen uint8
}

// Series returns the valid portion of the history buffer.
func (s *Stock) Series() []uint8 {
	n := int(s.HistoryLen)
	if n > HistoryMax {
		n = HistoryMax
	}
	return s.History[:n]
}

// TextBuf is a fixed-capacity text buffer with explicit length tracking.
// Chunks may land at fixed offsets; the length covers the furthest write.
type TextBuf struct {
	buf [MetroTextMax]byte
	n   uint8
}

// SetChunk copies p into the buffer at off, extending the tracked length.
// Writes beyond capacity are truncated.
func (t *TextBuf) SetChunk(off int, p []byte) {
	if off < 0 || off >= len(t.buf) {
		return
	}
	n := copy(t.buf[off:], p)
	if end := off + n; end > int(t.n) {
		t.n = uint8(end)
	}
}

// Reset clears the tracked length. The backing bytes are zeroed so stale
// tail chunks from a previous message cannot leak into the next one.
func (t *TextBuf) Reset() {
	t.buf = [MetroTextMax]byte{}
	t.n = 0
}

// Len returns the tracked length.
func (t *TextBuf) Len() int { return int(t.n) }

// String returns the buffered text with trailing NULs trimmed.
func (t *TextBuf) String() string {
	end := int(t.n)
	for end > 0 && t.buf[end-1] == 0 {
		end--
	}
	return string(t.buf[:end])
}

// Metro is the latest decoded transit incident.
type Metro struct {
	Line       byte
	Message    TextBuf
	LastUpdate uint32
	seen       bool
}

// Active reports whether the incident is inside its freshness window.
// The comparison is wraparound-safe on the 32-bit millisecond counter.
func (m *Metro) Active(now uint32) bool {
	if !m.seen {
		return false
	}
	return now-m.LastUpdate < MetroWindowMillis
}

// Weather is the latest decoded weather snapshot.
type Weather struct {
	Cond     Condition
	TempC    int16
	FeelsC   int16
	Humidity uint8
	Pressure uint16
	Wind     uint8
	Sunrise  [5]byte // "HH:MM"
	Sunset   [5]byte // "HH:MM"
	Valid    bool
}

// SunriseString returns the sunrise time as text.
func (w *Weather) SunriseString() string { return string(w.Sunrise[:]) }

// SunsetString returns the sunset time as text.
func (w *Weather) SunsetString() string { return string(w.Sunset[:]) }
