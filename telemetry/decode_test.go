package telemetry

import (
	"strings"
	"testing"
)

func TestStockRoundTrip(t *testing.T) {
	history := []uint8{10, 15, 12, 20}
	frame := EncodeStock(0, true, 1234500, -150, history)

	var st Store
	Decode(&st, frame, 0)

	s := &st.Stocks[0]
	if !s.Open {
		t.Error("expected market open")
	}
	if s.PriceCents != 1234500 {
		t.Errorf("price = %d, want 1234500", s.PriceCents)
	}
	if s.ChangeBP != -150 {
		t.Errorf("change = %d, want -150", s.ChangeBP)
	}
	got := s.Series()
	if len(got) != len(history) {
		t.Fatalf("history length = %d, want %d", len(got), len(history))
	}
	for i, v := range history {
		if got[i] != v {
			t.Errorf("history[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestStockFullHistoryRoundTrip(t *testing.T) {
	history := make([]uint8, HistoryMax)
	for i := range history {
		history[i] = uint8((i * 7) % 32)
	}
	frame := EncodeStock(1, false, 99, 12345, history)

	var st Store
	Decode(&st, frame, 0)

	s := &st.Stocks[1]
	if s.Open {
		t.Error("expected market closed")
	}
	for i, v := range history {
		if s.History[i] != v {
			t.Errorf("history[%d] = %d, want %d", i, s.History[i], v)
		}
	}
	if s.HistoryLen != HistoryMax {
		t.Errorf("history length = %d, want %d", s.HistoryLen, HistoryMax)
	}
}

func TestStockUnknownIndexIgnored(t *testing.T) {
	frame := EncodeStock(StockCount, true, 1, 1, nil)
	var st Store
	Decode(&st, frame, 0)
	for i := range st.Stocks {
		if st.Stocks[i].PriceCents != 0 {
			t.Errorf("stock %d mutated by out-of-range index", i)
		}
	}
}

func TestMetroReassembly(t *testing.T) {
	msg := strings.Repeat("abcdefghijklmnopqrstuvwxyz012", 3) // 87 chars
	frames := EncodeMetro('A', msg)
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames for an 87-char message, got %d", len(frames))
	}

	var st Store
	for _, f := range frames {
		Decode(&st, f, 5000)
	}

	if st.Metro.Line != 'A' {
		t.Errorf("line = %q, want 'A'", st.Metro.Line)
	}
	if got := st.Metro.Message.String(); got != msg {
		t.Errorf("message = %q, want %q", got, msg)
	}
	if st.Metro.LastUpdate != 5000 {
		t.Errorf("last update = %d, want 5000", st.Metro.LastUpdate)
	}
}

func TestMetroContinuationDoesNotRefresh(t *testing.T) {
	var st Store
	Decode(&st, EncodeMetro('B', "short")[0], 1000)

	cont := make([]byte, FrameLen)
	cont[0] = byte(KindMetroMsg1)
	copy(cont[1:], "more text")
	Decode(&st, cont, 999_999)

	if st.Metro.LastUpdate != 1000 {
		t.Errorf("continuation frame refreshed last update: %d", st.Metro.LastUpdate)
	}
	if st.Metro.Line != 'B' {
		t.Errorf("continuation frame touched line: %q", st.Metro.Line)
	}
}

func TestMetroNewIncidentClearsOldTail(t *testing.T) {
	var st Store
	long := strings.Repeat("x", 60)
	for _, f := range EncodeMetro('C', long) {
		Decode(&st, f, 0)
	}
	for _, f := range EncodeMetro('D', "short") {
		Decode(&st, f, 1)
	}
	if got := st.Metro.Message.String(); got != "short" {
		t.Errorf("stale tail leaked into new message: %q", got)
	}
}

func TestWeatherRoundTrip(t *testing.T) {
	in := Weather{
		Cond:     CondSnow,
		TempC:    -12,
		FeelsC:   -18,
		Humidity: 81,
		Pressure: 1013,
		Wind:     7,
		Sunrise:  [5]byte{'0', '6', ':', '1', '2'},
		Sunset:   [5]byte{'2', '1', ':', '0', '3'},
	}
	var st Store
	if st.Weather.Valid {
		t.Fatal("weather valid before any frame")
	}
	Decode(&st, EncodeWeather(in), 0)

	w := st.Weather
	if !w.Valid {
		t.Fatal("weather not valid after a complete frame")
	}
	if w.Cond != in.Cond || w.TempC != in.TempC || w.FeelsC != in.FeelsC ||
		w.Humidity != in.Humidity || w.Pressure != in.Pressure || w.Wind != in.Wind {
		t.Errorf("decoded %+v, want %+v", w, in)
	}
	if w.SunriseString() != "06:12" || w.SunsetString() != "21:03" {
		t.Errorf("sun times = %q / %q", w.SunriseString(), w.SunsetString())
	}
}

func TestWeatherUnknownConditionDefaultsClear(t *testing.T) {
	frame := EncodeWeather(Weather{})
	frame[5] = 250
	var st Store
	Decode(&st, frame, 0)
	if st.Weather.Cond != CondClear {
		t.Errorf("condition = %v, want clear", st.Weather.Cond)
	}
}

func TestDecodeIgnoresGarbage(t *testing.T) {
	var st Store
	Decode(&st, nil, 0)
	Decode(&st, []byte{}, 0)
	Decode(&st, []byte{0xFF, 1, 2, 3}, 0)
	Decode(&st, []byte{byte(KindInvalid), 9, 9, 9}, 0)
	Decode(&st, []byte{byte(KindStock), 0}, 0) // truncated
	Decode(&st, []byte{byte(KindWeather)}, 0)  // truncated

	if st.Weather.Valid {
		t.Error("truncated weather frame set valid")
	}
	if st.Stocks[0].PriceCents != 0 {
		t.Error("truncated stock frame wrote price")
	}
}

func TestHeartbeatFrame(t *testing.T) {
	f := HeartbeatFrame()
	if len(f) != FrameLen {
		t.Fatalf("heartbeat length = %d, want %d", len(f), FrameLen)
	}
	if !IsHeartbeat(f) {
		t.Fatal("heartbeat frame not recognized")
	}
	if IsHeartbeat([]byte{1, 1}) || IsHeartbeat(nil) {
		t.Fatal("false positive heartbeat")
	}
}
