package split

// Byte-stream framing for serial links: one sync byte, one length byte,
// then the payload. Frames are fixed-size and short, so there is no CRC;
// a corrupted length self-heals at the next sync byte.

// WireSync marks the start of a framed payload.
const WireSync = 0x7E

// AppendWire appends one framed payload to dst. Payloads longer than
// MaxFrameBytes are dropped.
func AppendWire(dst []byte, p []byte) []byte {
	if len(p) > MaxFrameBytes {
		return dst
	}
	dst = append(dst, WireSync, byte(len(p)))
	return append(dst, p...)
}

type scanState uint8

const (
	scanSync scanState = iota
	scanLen
	scanBody
)

// WireScanner incrementally reassembles framed payloads from a byte
// stream. Feed it one byte at a time; it hands back a complete payload
// when one closes. The returned slice is only valid until the next Feed.
type WireScanner struct {
	state scanState
	need  uint8
	n     uint8
	buf   [MaxFrameBytes]byte
}

// Feed consumes one stream byte. ok is true when b completed a payload.
func (s *WireScanner) Feed(b byte) (frame []byte, ok bool) {
	switch s.state {
	case scanSync:
		if b == WireSync {
			s.state = scanLen
		}
	case scanLen:
		if b == 0 || int(b) > MaxFrameBytes {
			s.state = scanSync
			break
		}
		s.need = b
		s.n = 0
		s.state = scanBody
	case scanBody:
		s.buf[s.n] = b
		s.n++
		if s.n == s.need {
			s.state = scanSync
			return s.buf[:s.n], true
		}
	}
	return nil, false
}
