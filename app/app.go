// Package app wires a HAL into the dashboard loop: one Device per half,
// fed by the platform's frame links and key events.
package app

import (
	"time"

	"splitdash/device"
	"splitdash/hal"
	"splitdash/split"
	"splitdash/telemetry"
)

// tickInterval paces the hardware loop; the simulator paces itself.
const tickInterval = 33 * time.Millisecond

// New builds the per-half step function. Each step drains pending key
// events and frames, then repaints. The simulator calls it once per
// window tick; Run drives it on hardware.
func New(h hal.HAL) func() error {
	var bridge *split.Bridge
	if h.Role() == hal.RoleMaster {
		bridge = split.New(h.Split(), h.Host())
	}
	d := device.New(h.Role(), h.Display().Surface(), h.Logger(), bridge)

	// The master ingests from the host transport, the slave from the
	// inter-half wire.
	source := h.Host()
	if h.Role() == hal.RoleSlave {
		source = h.Split()
	}
	keys := h.Keys().Events()
	clock := h.Clock()

	h.Logger().WriteLineString("dashboard up, role " + h.Role().String())

	var buf [telemetry.FrameLen]byte
	return func() error {
		now := clock.Millis()

	drain:
		for {
			select {
			case ev := <-keys:
				d.HandleKey(ev, now)
			default:
				break drain
			}
		}

		if source != nil {
			for {
				n, err := source.Recv(buf[:])
				if err != nil || n == 0 {
					break
				}
				d.HandleFrame(buf[:n], now)
			}
		}

		return d.HandleTick(now)
	}
}

// Run drives the step loop forever (hardware entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("step: " + err.Error())
		}
		time.Sleep(tickInterval)
	}
}
