// Package device holds the per-half dashboard state machine: it owns the
// telemetry store, reacts to frames and key events, and repaints the
// panel on each tick.
package device

import (
	"splitdash/dash"
	"splitdash/hal"
	"splitdash/split"
	"splitdash/telemetry"
)

// Device is one half of the dashboard. The master additionally runs the
// bridge: inbound host frames fan out to the slave, and key activity
// triggers the liveness heartbeat.
type Device struct {
	role   hal.Role
	surf   hal.Surface
	log    hal.Logger
	bridge *split.Bridge

	store     telemetry.Store
	showMetro bool
}

// New builds a device for the given role. bridge may be nil on the slave.
func New(role hal.Role, surf hal.Surface, log hal.Logger, bridge *split.Bridge) *Device {
	return &Device{role: role, surf: surf, log: log, bridge: bridge}
}

// HandleFrame ingests one raw telemetry frame. On the master the frame is
// also forwarded verbatim so the slave's store converges to the same
// contents.
func (d *Device) HandleFrame(p []byte, now uint32) {
	telemetry.Decode(&d.store, p, now)
	if d.bridge != nil {
		d.bridge.Forward(p)
	}
}

// HandleKey applies one logical key transition.
func (d *Device) HandleKey(ev hal.KeyEvent, now uint32) {
	if ev.Press {
		switch ev.Code {
		case hal.KeyStockPrev:
			d.store.SelectPrev()
		case hal.KeyStockNext:
			d.store.SelectNext()
		}
	}

	// The metro view is shown only while the toggle key is the most
	// recent press; any other key transition reverts to weather.
	d.showMetro = ev.Press && ev.Code == hal.KeyShowMetro

	if d.bridge != nil && d.bridge.Heartbeat(now) {
		d.log.WriteLineString("heartbeat sent")
	}
}

// HandleTick repaints the panel.
func (d *Device) HandleTick(now uint32) error {
	switch d.role {
	case hal.RoleMaster:
		dash.RenderMaster(d.surf, &d.store, now)
	case hal.RoleSlave:
		dash.RenderSlave(d.surf, &d.store, d.showMetro, now)
	}
	return d.surf.Flush()
}

// Store exposes the telemetry store for tests.
func (d *Device) Store() *telemetry.Store { return &d.store }
