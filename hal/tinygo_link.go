//go:build tinygo && baremetal

package hal

import (
	"time"

	"splitdash/split"
)

func nowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// byteStream is the common surface of machine.UART and the USB CDC
// serial port.
type byteStream interface {
	WriteByte(b byte) error
	ReadByte() (byte, error)
	Buffered() int
}

// byteLink frames fixed-size telemetry frames over a raw byte stream.
type byteLink struct {
	s  byteStream
	sc split.WireScanner
}

func newByteLink(s byteStream) *byteLink {
	return &byteLink{s: s}
}

func (l *byteLink) Send(p []byte) error {
	var buf [split.MaxFrameBytes + 2]byte
	for _, b := range split.AppendWire(buf[:0], p) {
		if err := l.s.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Recv drains buffered bytes through the scanner and returns at most one
// frame. Never blocks.
func (l *byteLink) Recv(p []byte) (int, error) {
	for l.s.Buffered() > 0 {
		b, err := l.s.ReadByte()
		if err != nil {
			return 0, err
		}
		if frame, ok := l.sc.Feed(b); ok {
			return copy(p, frame), nil
		}
	}
	return 0, nil
}
