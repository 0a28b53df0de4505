package display

import "time"

// Screen identifies one of the rotating panel screens.
type Screen uint8

const (
	ScreenCPU Screen = iota
	ScreenMem
	ScreenTemps

	screenCount
)

// Next returns the following screen in the fixed CPU → Mem → Temps → CPU cycle.
func (s Screen) Next() Screen {
	return (s + 1) % screenCount
}

func (s Screen) String() string {
	switch s {
	case ScreenCPU:
		return "cpu"
	case ScreenMem:
		return "mem"
	case ScreenTemps:
		return "temps"
	default:
		return "unknown"
	}
}

// ScreenState tracks the active screen and when it was entered.
type ScreenState struct {
	current Screen
	entered time.Time
	dwell   time.Duration
}

// NewScreenState starts on initial at now. An out-of-range initial falls back to ScreenCPU.
func NewScreenState(initial Screen, dwell time.Duration, now time.Time) *ScreenState {
	if initial >= screenCount {
		initial = ScreenCPU
	}
	return &ScreenState{current: initial, entered: now, dwell: dwell}
}

// Current returns the active screen.
func (s *ScreenState) Current() Screen { return s.current }

// Advance moves to the next screen if more than the dwell time has passed
// since the last transition. It moves at most one step per call.
func (s *ScreenState) Advance(now time.Time) bool {
	if now.Sub(s.entered) <= s.dwell {
		return false
	}
	s.current = s.current.Next()
	s.entered = now
	return true
}
