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
	// Hz and Ticks give the run budget: Ticks/Hz seconds, or until ctx ends
	// when Ticks is 0.
	Hz       int
	Ticks    uint64
	MaxBoots int
}

// RunHeadless boots the device without opening a window and waits. The loop
// task keeps running on its own thread; a restart replaces the process.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := NewHost(HostConfig{MaxBoots: cfg.MaxBoots}).(*hostHAL)
	if step := newApp(h); step != nil {
		if err := step(); err != nil {
			return err
		}
	}

	if cfg.Ticks == 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	budget := time.Duration(cfg.Ticks) * (time.Second / time.Duration(cfg.Hz))
	if budget <= 0 {
		return fmt.Errorf("invalid headless budget: %d ticks at %d hz", cfg.Ticks, cfg.Hz)
	}
	t := time.NewTimer(budget)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return h.logger.Flush()
	}
}
