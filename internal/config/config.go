// Package config holds the compile-time firmware configuration.
//
// The constants are not adjustable at runtime. Config carries them as a value
// so the frame loop can be driven with shorter durations under test.
package config

import (
	"time"

	"picoled/display"
)

const (
	// SeriesLength is the number of samples kept per metric (one graph bar each).
	SeriesLength = 40

	// FrameBudget is the wall-clock time allotted to one frame.
	FrameBudget = 500 * time.Millisecond

	// ScreenDwell is how long a screen stays up before rotating.
	ScreenDwell = 10 * time.Second

	// StarveThreshold is the number of consecutive frames without a line after
	// which the panel is blanked.
	StarveThreshold = 10

	// ReadBufferSize is the line buffer capacity; one byte is reserved for the
	// terminator, so lines carry at most 512 bytes.
	ReadBufferSize = 513

	// InitialScreen is shown first after boot.
	InitialScreen = display.ScreenMem
)

// Config is the runtime copy of the compile-time constants.
type Config struct {
	SeriesLength    int
	FrameBudget     time.Duration
	ScreenDwell     time.Duration
	StarveThreshold int
	ReadBufferSize  int
	InitialScreen   display.Screen
}

// Default returns the firmware configuration.
func Default() Config {
	return Config{
		SeriesLength:    SeriesLength,
		FrameBudget:     FrameBudget,
		ScreenDwell:     ScreenDwell,
		StarveThreshold: StarveThreshold,
		ReadBufferSize:  ReadBufferSize,
		InitialScreen:   InitialScreen,
	}
}

// ReadTimeout is how long a frame waits for the first byte of a line.
func (c Config) ReadTimeout() time.Duration {
	return c.FrameBudget / 2
}
