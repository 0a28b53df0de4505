package app

import (
	"picoled/frame"
	"picoled/hal"
	"picoled/internal/buildinfo"
	"picoled/internal/config"
)

// New boots the firmware on h with the default configuration and returns a
// step function that runs one frame.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, config.Default())
}

// NewWithConfig is New with an explicit configuration.
func NewWithConfig(h hal.HAL, cfg config.Config) func() error {
	return stepFunc(boot(h, cfg))
}

func stepFunc(s *frame.Scheduler) func() error {
	return func() error {
		s.Step()
		return nil
	}
}

// Run boots the firmware and runs frames forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	boot(h, config.Default()).Run()
}

func boot(h hal.HAL, cfg config.Config) *frame.Scheduler {
	h.Logger().WriteLineString(buildinfo.Banner())
	s := frame.New(h, cfg)
	s.Boot()
	return s
}
