//go:build !tinygo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeys adapts window keyboard input to the logical dashboard keys.
// The same events go to every subscribed half, mirroring the merged key
// matrix of the real device.
type hostKeys struct {
	ch chan KeyEvent
}

func newHostKeys() *hostKeys {
	return &hostKeys{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeys) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeys) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

// keyBindings maps window keys to logical dashboard keys.
var keyBindings = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowLeft, KeyStockPrev},
	{ebiten.KeyArrowRight, KeyStockNext},
	{ebiten.KeyM, KeyShowMetro},
}

// pollHostKeys fans window key transitions out to all subscribers.
func pollHostKeys(subs []*hostKeys) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			for _, s := range subs {
				s.emit(KeyEvent{Code: b.code, Press: true})
			}
		}
		if inpututil.IsKeyJustReleased(b.key) {
			for _, s := range subs {
				s.emit(KeyEvent{Code: b.code, Press: false})
			}
		}
	}
}
