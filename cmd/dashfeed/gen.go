//go:build !tinygo

package main

import (
	"fmt"
	"math/rand"

	"splitdash/telemetry"
)

// generator produces plausible-looking telemetry: random-walk stock
// prices with a rolling intraday history, a slowly drifting weather
// report and the occasional metro incident.
type generator struct {
	rng    *rand.Rand
	rounds int

	stocks  [telemetry.StockCount]stockState
	weather telemetry.Weather
	metro   int
}

type stockState struct {
	priceCents uint32
	openCents  uint32
	history    []uint8
}

func newGenerator(seed int64) *generator {
	g := &generator{rng: rand.New(rand.NewSource(seed))}
	for i := range g.stocks {
		cents := uint32(400_000 + g.rng.Intn(1_600_000))
		g.stocks[i] = stockState{priceCents: cents, openCents: cents}
	}
	g.weather = telemetry.Weather{
		TempC:    18,
		FeelsC:   17,
		Cond:     telemetry.CondClear,
		Humidity: 55,
		Pressure: 1013,
		Wind:     3,
	}
	copy(g.weather.Sunrise[:], "06:42")
	copy(g.weather.Sunset[:], "20:15")
	return g
}

// round advances the simulation one step and returns the frames to send.
func (g *generator) round() [][]byte {
	g.rounds++

	var frames [][]byte
	for i := range g.stocks {
		frames = append(frames, g.stepStock(uint8(i)))
	}
	if g.rounds%5 == 1 {
		frames = append(frames, g.stepWeather())
	}
	if g.rounds%15 == 3 {
		frames = append(frames, g.stepMetro()...)
	}
	return frames
}

func (g *generator) stepStock(index uint8) []byte {
	s := &g.stocks[index]

	// Random walk, roughly +-0.25% per step.
	delta := int32(g.rng.Intn(int(s.priceCents)/200+1)) - int32(s.priceCents)/400
	s.priceCents = uint32(int32(s.priceCents) + delta)

	// History is the walk scaled into the 0..24 chart band.
	sample := uint8(12)
	if s.openCents > 0 {
		off := int(s.priceCents) - int(s.openCents)
		pos := 12 + off*1200/int(s.openCents)
		if pos < 0 {
			pos = 0
		}
		if pos > int(telemetry.HistoryMax) {
			pos = int(telemetry.HistoryMax)
		}
		sample = uint8(pos)
	}
	s.history = append(s.history, sample)
	if len(s.history) > telemetry.HistoryMax {
		s.history = s.history[1:]
	}

	changeBP := int32(0)
	if s.openCents > 0 {
		changeBP = (int32(s.priceCents) - int32(s.openCents)) * 10_000 / int32(s.openCents)
	}
	return telemetry.EncodeStock(index, true, s.priceCents, changeBP, s.history)
}

func (g *generator) stepWeather() []byte {
	w := &g.weather
	w.TempC += int16(g.rng.Intn(3)) - 1
	w.FeelsC = w.TempC - int16(g.rng.Intn(3))
	w.Humidity = uint8(40 + g.rng.Intn(50))
	w.Pressure = uint16(995 + g.rng.Intn(40))
	w.Wind = uint8(g.rng.Intn(12))
	w.Cond = telemetry.Condition(g.rng.Intn(6))
	return telemetry.EncodeWeather(*w)
}

var metroLines = []byte{'A', 'B', 'C', 'D'}

var metroMessages = []string{
	"signal failure at central, expect delays of up to 15 minutes on the full line",
	"minor delays",
	"service suspended between harbor and airport due to planned engineering works all weekend",
}

func (g *generator) stepMetro() [][]byte {
	line := metroLines[g.metro%len(metroLines)]
	msg := metroMessages[g.metro%len(metroMessages)]
	g.metro++
	return telemetry.EncodeMetro(line, fmt.Sprintf("%s: %s", string(line), msg))
}
