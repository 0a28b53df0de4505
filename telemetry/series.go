package telemetry

// Series is a fixed-length rolling history of one metric. Index 0 is the most
// recent sample; higher indices are older.
//
// The backing slice has len == cap == Len() for the Series' lifetime, so no
// operation can reach past the last sample.
type Series struct {
	values []uint8
}

// NewSeries returns a series of n zero samples. n < 1 is treated as 1.
func NewSeries(n int) *Series {
	if n < 1 {
		n = 1
	}
	return &Series{values: make([]uint8, n, n)}
}

// Len returns the fixed number of samples.
func (s *Series) Len() int { return len(s.values) }

// Push shifts every sample one slot older, drops the oldest and stores v at index 0.
func (s *Series) Push(v uint8) {
	n := len(s.values)
	copy(s.values[1:n], s.values[:n-1])
	s.values[0] = v
}

// At returns the sample i steps back from the most recent one.
func (s *Series) At(i int) (uint8, bool) {
	if i < 0 || i >= len(s.values) {
		return 0, false
	}
	return s.values[i], true
}

// Value is At without the bounds report; out-of-range reads return 0.
func (s *Series) Value(i int) uint8 {
	v, _ := s.At(i)
	return v
}

// Latest returns the most recent sample.
func (s *Series) Latest() uint8 { return s.values[0] }

// Repeat pushes the latest sample again. Used for frames with no telemetry.
func (s *Series) Repeat() { s.Push(s.values[0]) }
