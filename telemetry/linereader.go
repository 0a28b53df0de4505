package telemetry

import (
	"errors"
	"time"
)

// InterByteTimeout bounds the wait for each byte after the first one, so a lost
// terminator cannot hold a frame for the full read timeout again.
const InterByteTimeout = 10 * time.Millisecond

// ErrNoData reports that no byte arrived before the read timeout.
var ErrNoData = errors.New("telemetry: no data")

// ByteReader is a byte source with a bounded wait, such as hal.Serial.
type ByteReader interface {
	ReadByteTimeout(d time.Duration) (byte, error)
}

// LineReader assembles newline-terminated lines from a ByteReader.
type LineReader struct {
	src ByteReader
	buf []byte

	// discard is set after a truncated line; its tail is dropped before the
	// next line is read.
	discard bool
}

// NewLineReader returns a reader with a buffer of the given capacity. One byte
// is reserved for the terminating zero, so lines hold at most capacity-1 bytes.
func NewLineReader(src ByteReader, capacity int) *LineReader {
	if capacity < 2 {
		capacity = 2
	}
	return &LineReader{src: src, buf: make([]byte, capacity)}
}

// ReadLine waits up to timeout for the first byte, then reads until '\n', a
// full buffer, or InterByteTimeout of silence. The terminator and a preceding
// '\r' are not part of the result.
//
// Longer lines are truncated: the rest of the line, up to its '\n' or the next
// silence, is skipped at the start of the following call and never returned.
// A call skips at most capacity-1 bytes; if the tail is still running it
// reports ErrNoData and keeps skipping next time.
//
// The returned slice aliases the reader's buffer and is valid until the next
// call. ErrNoData is the only error; an empty line is a successful read.
func (r *LineReader) ReadLine(timeout time.Duration) ([]byte, error) {
	limit := len(r.buf) - 1
	r.buf[0] = 0
	if r.discard && !r.skipTail(limit) {
		return nil, ErrNoData
	}

	n := 0
	wait := timeout
	for n < limit {
		b, err := r.src.ReadByteTimeout(wait)
		if err != nil {
			if n == 0 {
				return nil, ErrNoData
			}
			break
		}
		wait = InterByteTimeout
		if b == '\n' {
			if n > 0 && r.buf[n-1] == '\r' {
				n--
			}
			break
		}
		r.buf[n] = b
		n++
	}
	if n == limit {
		r.truncate()
	}
	r.buf[n] = 0
	return r.buf[:n], nil
}

// truncate runs after the buffer fills. A line of exactly capacity-1 bytes
// still has its terminator pending; anything else marks the tail for skipping.
func (r *LineReader) truncate() {
	b, err := r.src.ReadByteTimeout(InterByteTimeout)
	if err != nil || b == '\n' {
		return
	}
	r.discard = true
}

// skipTail drops bytes of a truncated line. It reports whether the tail ended
// within max bytes.
func (r *LineReader) skipTail(max int) bool {
	for i := 0; i < max; i++ {
		b, err := r.src.ReadByteTimeout(InterByteTimeout)
		if err != nil || b == '\n' {
			r.discard = false
			return true
		}
	}
	return false
}
