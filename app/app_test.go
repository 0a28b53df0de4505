//go:build !tinygo

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"picoled/frame"
	"picoled/hal"
	"picoled/internal/config"
)

func TestHeadlessRunsFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "link")
	if err := os.WriteFile(path, []byte("cpu:57,mem:12,cpu_temp:48\ngpu_temp:0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := config.Default()
	cfg.FrameBudget = 100 * time.Millisecond

	var s *frame.Scheduler
	frames := 0
	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		s = boot(h, cfg)
		step := stepFunc(s)
		return func() error {
			frames++
			return step()
		}
	}, hal.HeadlessConfig{Enabled: true, Host: hal.HostConfig{SerialPath: path}, Frames: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if frames != 3 {
		t.Fatalf("frames = %d, want 3", frames)
	}

	d := s.Device()
	if got := d.CPU.Latest(); got != 57 {
		t.Fatalf("cpu = %d, want 57", got)
	}
	if got := d.Mem.Latest(); got != 12 {
		t.Fatalf("mem = %d, want 12", got)
	}
	if d.CPUTemp != 48 {
		t.Fatalf("cpu_temp = %d, want 48", d.CPUTemp)
	}
	if d.GPUPresent {
		t.Fatal("GPU marked present after gpu_temp:0")
	}
	// Two lines, then one silent frame.
	if got := s.Starved(); got != 1 {
		t.Fatalf("starved = %d, want 1", got)
	}
}

func TestHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "link")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := hal.RunHeadless(ctx, New, hal.HeadlessConfig{Host: hal.HostConfig{SerialPath: path}})
	if err != context.Canceled {
		t.Fatalf("RunHeadless() err = %v, want context.Canceled", err)
	}
}
