//go:build !tinygo

package hal

import (
	"context"
	"fmt"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig

	// Frames stops the runner after N frames (0 = run forever).
	Frames uint64
}

// RunHeadless runs the firmware without opening a window.
//
// newApp returns a step function that runs one frame; the step paces itself.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h, err := openHost(cfg.Host)
	if err != nil {
		return err
	}
	defer h.Close()

	step := newApp(h)
	if step == nil {
		return fmt.Errorf("headless: no step function")
	}

	var frames uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return err
		}
		frames++
		if cfg.Frames > 0 && frames >= cfg.Frames {
			return nil
		}
	}
}
