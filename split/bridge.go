package split

import "splitdash/telemetry"

// Sender pushes one raw frame down a link. Delivery is best effort.
type Sender interface {
	Send(p []byte) error
}

// HeartbeatMillis is the minimum spacing between device liveness frames.
const HeartbeatMillis = 300_000

// Bridge runs on the master half. It forwards every inbound host frame
// verbatim over the inter-half wire so the slave converges to the same
// store contents, and it emits the throttled liveness heartbeat back to
// the host. Both paths are fire-and-forget: no acknowledgment, no retry.
type Bridge struct {
	wire Sender
	host Sender

	lastBeat uint32
	beatSent bool
}

// New builds a bridge. Either sender may be nil, which disables that path.
func New(wire, host Sender) *Bridge {
	return &Bridge{wire: wire, host: host}
}

// Forward pushes one raw frame to the slave half. A failed or dropped
// send is not an error: the next periodic host frame re-synchronizes.
func (b *Bridge) Forward(p []byte) {
	if b.wire == nil {
		return
	}
	_ = b.wire.Send(p)
}

// Heartbeat sends the liveness frame if the throttle window has elapsed,
// reporting whether a frame was emitted. Callers invoke it
// opportunistically (on key events); the window is measured from the last
// emission with wraparound-safe arithmetic.
func (b *Bridge) Heartbeat(now uint32) bool {
	if b.host == nil {
		return false
	}
	if b.beatSent && now-b.lastBeat < HeartbeatMillis {
		return false
	}
	b.lastBeat = now
	b.beatSent = true
	_ = b.host.Send(telemetry.HeartbeatFrame())
	return true
}
