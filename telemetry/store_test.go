package telemetry

import "testing"

func TestSelectCursorCyclic(t *testing.T) {
	var st Store
	for i := 0; i < StockCount; i++ {
		st.SelectNext()
	}
	if st.Selected != 0 {
		t.Errorf("advancing %d times moved cursor to %d, want 0", StockCount, st.Selected)
	}

	st.SelectPrev()
	if st.Selected != StockCount-1 {
		t.Errorf("retreat from 0 gave %d, want %d", st.Selected, StockCount-1)
	}
	st.SelectNext()
	if st.Selected != 0 {
		t.Errorf("advance wrapped to %d, want 0", st.Selected)
	}
}

func TestMetroFreshnessWindow(t *testing.T) {
	var st Store
	if st.Metro.Active(0) {
		t.Fatal("metro active before any frame")
	}

	Decode(&st, EncodeMetro('M', "delays on line M")[0], 1000)

	testCases := []struct {
		now  uint32
		want bool
	}{
		{1000, true},
		{1000 + MetroWindowMillis - 1, true},
		{1000 + MetroWindowMillis, false},
		{1000 + MetroWindowMillis + 1, false},
	}
	for _, tc := range testCases {
		if got := st.Metro.Active(tc.now); got != tc.want {
			t.Errorf("Active(%d) = %v, want %v", tc.now, got, tc.want)
		}
	}
}

func TestMetroFreshnessWraparound(t *testing.T) {
	var st Store
	// Incident lands just before the 32-bit counter wraps.
	last := uint32(0xFFFFFF00)
	Decode(&st, EncodeMetro('W', "wrap")[0], last)

	if !st.Metro.Active(last + 5000) { // now has wrapped past zero
		t.Error("incident inactive across counter wraparound")
	}
	if st.Metro.Active(last + MetroWindowMillis) {
		t.Error("incident active at window boundary across wraparound")
	}
}

func TestSelectedSymbol(t *testing.T) {
	var st Store
	first := st.SelectedSymbol()
	st.SelectNext()
	second := st.SelectedSymbol()
	if first == second {
		t.Errorf("cursor move did not change symbol: %q", first)
	}
	if len(first) != 4 || len(second) != 4 {
		t.Errorf("symbols must be 4 chars: %q, %q", first, second)
	}
	if Symbol(StockCount) != "????" {
		t.Errorf("out-of-range symbol = %q", Symbol(StockCount))
	}
}
