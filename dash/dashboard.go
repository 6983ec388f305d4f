package dash

import (
	"fmt"

	"splitdash/hal"
	"splitdash/telemetry"
)

// The two layouts below are selected by device role at startup. Rendering
// never fails: anything missing or stale degrades to a placeholder.

// blinkMillis is the length of one blink interval; the accent glyph is
// visible for three intervals out of four.
const blinkMillis = 512

func blinkOn(now uint32) bool {
	return (now/blinkMillis)%4 != 3
}

// RenderMaster draws the stock panel: logo, symbol, price and day change
// in the header, then the history chart while the market is open.
func RenderMaster(s hal.Surface, st *telemetry.Store, now uint32) {
	_ = now
	s.Clear()

	stock := st.SelectedStock()

	s.SetCursor(0, 0)
	s.WriteGlyph(stockLogo(st.Selected))
	s.WriteText(st.SelectedSymbol())
	s.WriteText(PriceText(stock.PriceCents))

	s.SetCursor(1, 0)
	s.WriteText(ChangeText(stock.ChangeBP))

	_, cellH := cellSize(s)
	chartTop := 2 * cellH
	w, h := s.Size()

	if !stock.Open {
		s.SetCursor(3, 2)
		s.WriteText("MARKET CLOSED")
		return
	}
	DrawChart(s, 0, chartTop, w, h-chartTop, stock.Series())
}

// RenderSlave draws the weather panel, or the metro incident view while
// one is active and the display toggle is asserted.
func RenderSlave(s hal.Surface, st *telemetry.Store, showMetro bool, now uint32) {
	s.Clear()

	if showMetro && st.Metro.Active(now) {
		renderMetro(s, &st.Metro, now)
		return
	}
	renderWeather(s, &st.Weather)
}

func renderWeather(s hal.Surface, w *telemetry.Weather) {
	if !w.Valid {
		s.SetCursor(1, 2)
		s.WriteText("awaiting data")
		return
	}

	s.DrawBitmap(0, 0, weatherIcon(w.Cond))

	s.SetCursor(0, 4)
	s.WriteText(TempText(w.TempC))
	s.WriteText(" feels ")
	s.WriteText(TempText(w.FeelsC))

	s.SetCursor(1, 4)
	s.WriteText(humidityPressureText(w.Humidity, w.Pressure))

	s.SetCursor(2, 0)
	s.WriteText(windText(w.Wind))

	s.SetCursor(3, 0)
	s.WriteText("^" + w.SunriseString() + " v" + w.SunsetString())
}

func renderMetro(s hal.Surface, m *telemetry.Metro, now uint32) {
	s.SetCursor(0, 0)
	if blinkOn(now) {
		s.WriteGlyph(metroAccent)
	} else {
		s.SetCursor(0, 2)
	}
	s.WriteText(" " + string(m.Line))

	// Free text wraps across the remaining rows.
	rows, cols := s.Cells()
	if cols <= 0 {
		return
	}
	msg := m.Message.String()
	row := 1
	for len(msg) > 0 && row < rows {
		n := len(msg)
		if n > cols {
			n = cols
		}
		s.SetCursor(row, 0)
		s.WriteText(msg[:n])
		msg = msg[n:]
		row++
	}
}

func humidityPressureText(hum uint8, press uint16) string {
	return fmt.Sprintf("H%d%% P%d", hum, press)
}

func windText(wind uint8) string {
	return fmt.Sprintf("wind %d", wind)
}

// cellSize recovers the character cell geometry from the surface.
func cellSize(s hal.Surface) (w, h int) {
	if ts, ok := s.(interface{ CellSize() (int, int) }); ok {
		return ts.CellSize()
	}
	pw, ph := s.Size()
	rows, cols := s.Cells()
	if rows <= 0 || cols <= 0 {
		return 6, 10
	}
	return pw / cols, ph / rows
}
