//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs both halves without opening a window. Useful for
// smoke-testing the feed path over the TCP link.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HostConfig, hcfg HeadlessConfig) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	p, err := NewPair(cfg)
	if err != nil {
		return err
	}
	step := p.stepper(newApp)

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return err
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return nil
			}
		}
	}
}
