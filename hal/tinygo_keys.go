//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// pollInterval doubles as the debounce window: a contact bounce shorter
// than one poll is never observed.
const pollInterval = 10 * time.Millisecond

// pinKeys reads three active-low buttons and turns pin transitions into
// logical key events.
type pinKeys struct {
	ch chan KeyEvent
}

type buttonPin struct {
	pin  machine.Pin
	code KeyCode
	down bool
}

func newPinKeys() *pinKeys {
	buttons := []buttonPin{
		{pin: machine.GP16, code: KeyStockPrev},
		{pin: machine.GP17, code: KeyStockNext},
		{pin: machine.GP18, code: KeyShowMetro},
	}
	for i := range buttons {
		buttons[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	k := &pinKeys{ch: make(chan KeyEvent, 16)}
	go k.scan(buttons)
	return k
}

func (k *pinKeys) Events() <-chan KeyEvent { return k.ch }

func (k *pinKeys) scan(buttons []buttonPin) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for range ticker.C {
		for i := range buttons {
			b := &buttons[i]
			down := !b.pin.Get()
			if down == b.down {
				continue
			}
			b.down = down
			select {
			case k.ch <- KeyEvent{Code: b.code, Press: down}:
			default:
			}
		}
	}
}
