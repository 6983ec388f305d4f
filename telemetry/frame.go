package telemetry

import "encoding/binary"

// Frame encoders, the inverse of Decode. The device never encodes telemetry
// itself; these exist for the host-side feeder and for round-trip tests.

// EncodeStock builds a STOCK frame. History beyond HistoryMax is dropped.
func EncodeStock(index uint8, open bool, priceCents uint32, changeBP int32, history []uint8) []byte {
	frame := make([]byte, FrameLen)
	frame[0] = byte(KindStock)
	frame[1] = index
	if open {
		frame[2] = 1
	}
	binary.BigEndian.PutUint32(frame[3:7], priceCents)
	binary.BigEndian.PutUint32(frame[7:11], uint32(changeBP))
	if len(history) > HistoryMax {
		history = history[:HistoryMax]
	}
	frame[11] = uint8(len(history))
	Pack5(frame[stockHistOff:], history)
	return frame
}

// EncodeMetro builds the frame sequence for one incident: a METRO frame and
// up to two continuation frames, depending on message length. Text beyond
// MetroTextMax is dropped.
func EncodeMetro(line byte, message string) [][]byte {
	if len(message) > MetroTextMax {
		message = message[:MetroTextMax]
	}

	first := make([]byte, FrameLen)
	first[0] = byte(KindMetro)
	first[1] = line
	copy(first[2:2+metroChunk], message)
	frames := [][]byte{first}

	for i, kind := range []Kind{KindMetroMsg1, KindMetroMsg2} {
		off := (i + 1) * metroChunk
		if len(message) <= off {
			break
		}
		cont := make([]byte, FrameLen)
		cont[0] = byte(kind)
		copy(cont[1:1+metroChunk], message[off:])
		frames = append(frames, cont)
	}
	return frames
}

// EncodeWeather builds a WEATHER frame. Sunrise and sunset must be "HH:MM";
// shorter strings are zero-padded.
func EncodeWeather(w Weather) []byte {
	frame := make([]byte, FrameLen)
	frame[0] = byte(KindWeather)
	binary.BigEndian.PutUint16(frame[1:3], uint16(w.TempC))
	binary.BigEndian.PutUint16(frame[3:5], uint16(w.FeelsC))
	frame[5] = byte(w.Cond)
	frame[6] = w.Humidity
	binary.BigEndian.PutUint16(frame[7:9], w.Pressure)
	frame[9] = w.Wind
	copy(frame[10:15], w.Sunrise[:])
	copy(frame[15:20], w.Sunset[:])
	return frame
}

// HeartbeatFrame builds the outbound liveness frame: byte 0 reserved,
// byte 1 set, rest zero.
func HeartbeatFrame() []byte {
	frame := make([]byte, FrameLen)
	frame[1] = 1
	return frame
}

// IsHeartbeat reports whether p is a device liveness frame.
func IsHeartbeat(p []byte) bool {
	return len(p) >= 2 && p[0] == 0 && p[1] == 1
}
