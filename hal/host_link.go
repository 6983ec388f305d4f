//go:build !tinygo

package hal

import (
	"net"
	"sync"

	"splitdash/split"
)

// hostTCPLink stands in for the host transport on the simulator: the
// feeder tool connects over TCP and streams wire-framed frames. One
// client at a time; a new connection replaces the old one.
type hostTCPLink struct {
	mu   sync.Mutex
	conn net.Conn
	in   chan []byte
}

func newHostTCPLink(addr string) (*hostTCPLink, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	l := &hostTCPLink{in: make(chan []byte, 64)}
	go l.acceptLoop(ln)
	return l, nil
}

func (l *hostTCPLink) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		l.mu.Lock()
		if l.conn != nil {
			l.conn.Close()
		}
		l.conn = conn
		l.mu.Unlock()
		go l.readLoop(conn)
	}
}

func (l *hostTCPLink) readLoop(conn net.Conn) {
	var sc split.WireScanner
	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			if frame, ok := sc.Feed(b); ok {
				cp := append([]byte(nil), frame...)
				select {
				case l.in <- cp:
				default: // drop on overflow; the stream is periodic
				}
			}
		}
	}
}

func (l *hostTCPLink) Send(p []byte) error {
	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()
	if conn == nil {
		return nil // fire-and-forget: nobody listening is not an error
	}
	_, err := conn.Write(split.AppendWire(nil, p))
	return err
}

func (l *hostTCPLink) Recv(p []byte) (int, error) {
	select {
	case frame := <-l.in:
		return copy(p, frame), nil
	default:
		return 0, nil
	}
}

// queueLink is one direction of the in-process inter-half wire.
type queueLink struct {
	tx *split.Queue
	rx *split.Queue
}

// newSplitWire builds the two ends of the inter-half wire.
func newSplitWire() (master, slave *queueLink) {
	var down, up split.Queue // down: master->slave, up: slave->master
	m := &queueLink{tx: &down, rx: &up}
	s := &queueLink{tx: &up, rx: &down}
	return m, s
}

func (l *queueLink) Send(p []byte) error {
	// Lossy by design: a full queue drops the frame.
	l.tx.TrySend(p)
	return nil
}

func (l *queueLink) Recv(p []byte) (int, error) {
	n, ok := l.rx.TryRecv(p)
	if !ok {
		return 0, nil
	}
	return n, nil
}
