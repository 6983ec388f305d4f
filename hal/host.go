//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig controls the simulator.
type HostConfig struct {
	// ListenAddr is the TCP address the master half listens on for the
	// host feed. Empty disables the host link.
	ListenAddr string
}

// Pair is the host simulator: both halves of the device in one process,
// joined by an in-process split wire and sharing the keyboard.
type Pair struct {
	master *hostHAL
	slave  *hostHAL
	keys   []*hostKeys
}

// NewPair builds the two simulated halves.
func NewPair(cfg HostConfig) (*Pair, error) {
	clock := newHostClock()
	mWire, sWire := newSplitWire()

	var host Link
	if cfg.ListenAddr != "" {
		l, err := newHostTCPLink(cfg.ListenAddr)
		if err != nil {
			return nil, fmt.Errorf("host link: %w", err)
		}
		host = l
	}

	master := newHostHAL(RoleMaster, clock, mWire, host)
	slave := newHostHAL(RoleSlave, clock, sWire, nil)
	return &Pair{
		master: master,
		slave:  slave,
		keys:   []*hostKeys{master.keys, slave.keys},
	}, nil
}

// Master returns the master half's HAL.
func (p *Pair) Master() HAL { return p.master }

// Slave returns the slave half's HAL.
func (p *Pair) Slave() HAL { return p.slave }

// stepper builds one app instance per half and combines their steps.
func (p *Pair) stepper(newApp func(HAL) func() error) func() error {
	mStep := newApp(p.master)
	sStep := newApp(p.slave)
	return func() error {
		if err := mStep(); err != nil {
			return err
		}
		return sStep()
	}
}

type hostHAL struct {
	logger *hostLogger
	role   Role
	fb     *monoFramebuffer
	surf   *TextSurface
	keys   *hostKeys
	host   Link
	split  Link
	clock  *hostClock
}

func newHostHAL(role Role, clock *hostClock, split, host Link) *hostHAL {
	fb := newMonoFramebuffer(panelWidth, panelHeight)
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout, prefix: role.String() + ": "},
		role:   role,
		fb:     fb,
		surf:   NewTextSurface(fb),
		keys:   newHostKeys(),
		host:   host,
		split:  split,
		clock:  clock,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Role() Role       { return h.role }
func (h *hostHAL) Display() Display { return hostDisplay{surf: h.surf} }
func (h *hostHAL) Keys() Keys       { return h.keys }
func (h *hostHAL) Host() Link       { return h.host }
func (h *hostHAL) Split() Link      { return h.split }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	surf *TextSurface
}

func (d hostDisplay) Surface() Surface { return d.surf }

type hostLogger struct {
	mu     sync.Mutex
	w      *os.File
	prefix string
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, l.prefix+s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.WriteString(l.prefix)
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
