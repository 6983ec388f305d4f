package split

import "sync/atomic"

const (
	queueSlots = 8

	// MaxFrameBytes bounds one queued frame.
	MaxFrameBytes = 64
)

type slot struct {
	n    uint8
	data [MaxFrameBytes]byte
}

// Queue is a fixed-size frame queue for the in-process inter-half wire.
// It is designed for bare-metal use: no allocations, lossy on overflow
// (a full queue drops the frame, which the bridge tolerates by design of
// the protocol's periodic refresh).
type Queue struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [queueSlots]slot
}

// TrySend attempts to enqueue a frame, returning false if the queue is
// full or the frame does not fit a slot.
func (q *Queue) TrySend(p []byte) bool {
	if len(p) > MaxFrameBytes {
		return false
	}
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= queueSlots {
		return false
	}

	// Reserve a slot.
	if !q.head.CompareAndSwap(head, head+1) {
		return false
	}

	s := &q.slots[head%queueSlots]
	s.n = uint8(copy(s.data[:], p))
	return true
}

// TryRecv attempts to dequeue one frame into p, returning false if empty.
func (q *Queue) TryRecv(p []byte) (int, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return 0, false
	}

	s := &q.slots[tail%queueSlots]
	n := copy(p, s.data[:s.n])
	q.tail.Store(tail + 1)
	return n, true
}
