// Package frame runs the firmware's single control loop.
//
// Each frame renders the active screen, flushes it, waits up to half the frame
// budget for one telemetry line, applies it (or repeats the last samples),
// checks the screen rotation and sleeps out the rest of the budget. No step is
// fatal and nothing else runs concurrently with the loop.
package frame

import (
	"io"
	"time"

	"picoled/display"
	"picoled/hal"
	"picoled/internal/config"
	"picoled/telemetry"
)

// Stats describes one completed frame.
type Stats struct {
	// Read is true if a line (possibly empty) arrived.
	Read bool
	// Updates is the number of telemetry updates applied from the line.
	Updates int
	// Starved is the starvation counter after the frame.
	Starved int
	// Blank is true if the frame was blanked for starvation.
	Blank bool
	// Switched is true if the screen rotated at the end of the frame.
	Switched bool
	// Elapsed is the work time before the pacing sleep.
	Elapsed time.Duration
	// Overrun is true if Elapsed exceeded the budget and the sleep was skipped.
	Overrun bool
}

// Scheduler owns all firmware state. It must only be driven from one goroutine.
type Scheduler struct {
	cfg     config.Config
	clock   hal.Clock
	log     hal.Logger
	led     hal.LED
	echo    io.Writer
	reader  *telemetry.LineReader
	device  *telemetry.Device
	screens *display.ScreenState
	render  *display.Renderer

	starved  int
	flushErr bool
}

// New wires a scheduler to h.
func New(h hal.HAL, cfg config.Config) *Scheduler {
	serial := h.Serial()
	return &Scheduler{
		cfg:     cfg,
		clock:   h.Clock(),
		log:     h.Logger(),
		led:     h.LED(),
		echo:    serial,
		reader:  telemetry.NewLineReader(serial, cfg.ReadBufferSize),
		device:  telemetry.NewDevice(cfg.SeriesLength, h.Identity()),
		screens: display.NewScreenState(cfg.InitialScreen, cfg.ScreenDwell, h.Clock().Now()),
		render:  display.NewRenderer(h.Panel()),
	}
}

// Device exposes the telemetry state for inspection.
func (s *Scheduler) Device() *telemetry.Device { return s.device }

// Screen returns the active screen.
func (s *Scheduler) Screen() display.Screen { return s.screens.Current() }

// Starved returns the number of consecutive frames without a line.
func (s *Scheduler) Starved() int { return s.starved }

// Boot shows the board identity until the first frame replaces it.
func (s *Scheduler) Boot() {
	if s.led != nil {
		s.led.Low()
	}
	s.render.Text(s.device.Identity(), false)
	s.flush()
	hal.Logf(s.log, "frame: identity %s, first screen %s", s.device.Identity(), s.screens.Current())
}

// Run steps frames until power is lost.
func (s *Scheduler) Run() {
	for {
		s.Step()
	}
}

// Step runs one frame.
func (s *Scheduler) Step() Stats {
	start := s.clock.Now()
	var st Stats

	if s.starved >= s.cfg.StarveThreshold {
		s.render.Clear()
		st.Blank = true
	} else {
		s.render.Draw(s.screens.Current(), s.device)
	}
	s.flush()

	line, err := s.reader.ReadLine(s.cfg.ReadTimeout())
	if err == nil {
		st.Read = true
		st.Updates = s.device.ApplyLine(line, s.echo)
		if s.starved >= s.cfg.StarveThreshold {
			hal.Logf(s.log, "frame: link restored after %d frames", s.starved)
		}
		s.starved = 0
		s.setLED(true)
	} else {
		s.device.Starve()
		s.starved++
		if s.starved == s.cfg.StarveThreshold {
			hal.Logf(s.log, "frame: no telemetry for %d frames, blanking", s.starved)
			s.setLED(false)
		}
	}
	st.Starved = s.starved

	if s.screens.Advance(s.clock.Now()) {
		st.Switched = true
		hal.Logf(s.log, "frame: screen %s", s.screens.Current())
	}

	st.Elapsed = s.clock.Now().Sub(start)
	if rest := s.cfg.FrameBudget - st.Elapsed; rest > 0 {
		s.clock.Sleep(rest)
	} else {
		st.Overrun = true
	}
	return st
}

func (s *Scheduler) flush() {
	err := s.render.Flush()
	if err != nil && !s.flushErr {
		hal.Logf(s.log, "frame: flush: %v", err)
	}
	s.flushErr = err != nil
}

func (s *Scheduler) setLED(on bool) {
	if s.led == nil {
		return
	}
	if on {
		s.led.High()
	} else {
		s.led.Low()
	}
}
