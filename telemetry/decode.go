package telemetry

import "encoding/binary"

// FrameLen is the fixed size of every host frame.
const FrameLen = 32

// Stock frame layout (big-endian multi-byte fields):
//
//	[0]     tag
//	[1]     stock index
//	[2]     market open flag
//	[3:7]   price, u32, cents
//	[7:11]  day change, i32, basis points
//	[11]    history count
//	[12:]   5-bit packed history
const (
	stockFixedLen = 12
	stockHistOff  = 12
)

// Weather frame layout (big-endian multi-byte fields):
//
//	[1:3]    temperature, i16, degrees C
//	[3:5]    feels-like, i16, degrees C
//	[5]      condition code
//	[6]      humidity, percent
//	[7:9]    pressure, u16, hPa
//	[9]      wind speed
//	[10:15]  sunrise "HH:MM"
//	[15:20]  sunset "HH:MM"
const weatherLen = 20

// Decode applies one frame to the store. Unknown tags and truncated frames
// are handled by best-effort partial writes; there is no error channel back
// to the host, so none is surfaced here either.
func Decode(st *Store, frame []byte, now uint32) {
	if st == nil || len(frame) == 0 {
		return
	}
	switch Kind(frame[0]) {
	case KindStock:
		decodeStock(st, frame)
	case KindMetro:
		decodeMetro(st, frame, now)
	case KindMetroMsg1:
		decodeMetroChunk(st, frame, metroChunk)
	case KindMetroMsg2:
		decodeMetroChunk(st, frame, 2*metroChunk)
	case KindWeather:
		decodeWeather(st, frame)
	}
}

func decodeStock(st *Store, frame []byte) {
	if len(frame) < stockFixedLen {
		return
	}
	index := frame[1]
	if index >= StockCount {
		return
	}
	s := &st.Stocks[index]
	s.Open = frame[2] != 0
	s.PriceCents = binary.BigEndian.Uint32(frame[3:7])
	s.ChangeBP = int32(binary.BigEndian.Uint32(frame[7:11]))

	count := int(frame[11])
	if count > HistoryMax {
		count = HistoryMax
	}
	s.HistoryLen = uint8(Unpack5(s.History[:], frame[stockHistOff:], count))
}

func decodeMetro(st *Store, frame []byte, now uint32) {
	if len(frame) < 2 {
		return
	}
	m := &st.Metro
	m.Line = frame[1]
	m.Message.Reset()
	m.Message.SetChunk(0, chunkAt(frame, 2))
	m.LastUpdate = now
	m.seen = true
}

// decodeMetroChunk handles continuation frames. They carry only text and do
// not touch the line or the freshness timestamp.
func decodeMetroChunk(st *Store, frame []byte, off int) {
	if len(frame) < 2 {
		return
	}
	st.Metro.Message.SetChunk(off, chunkAt(frame, 1))
}

func chunkAt(frame []byte, start int) []byte {
	end := start + metroChunk
	if end > len(frame) {
		end = len(frame)
	}
	return frame[start:end]
}

func decodeWeather(st *Store, frame []byte) {
	if len(frame) < weatherLen {
		return
	}
	w := &st.Weather
	w.TempC = int16(binary.BigEndian.Uint16(frame[1:3]))
	w.FeelsC = int16(binary.BigEndian.Uint16(frame[3:5]))
	cond := Condition(frame[5])
	if cond >= condCount {
		cond = CondClear
	}
	w.Cond = cond
	w.Humidity = frame[6]
	w.Pressure = binary.BigEndian.Uint16(frame[7:9])
	w.Wind = frame[9]
	copy(w.Sunrise[:], frame[10:15])
	copy(w.Sunset[:], frame[15:20])
	w.Valid = true
}
