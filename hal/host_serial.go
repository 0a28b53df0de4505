//go:build !tinygo

package hal

import (
	"io"
	"sync"
	"time"
)

const hostRxBuffer = 4096

// hostSerial turns a blocking reader into a byte stream with per-byte timeouts.
type hostSerial struct {
	mu   sync.Mutex
	w    io.Writer
	rx   chan byte
	done chan struct{}
	once sync.Once
}

func newHostSerial(r io.Reader, w io.Writer) *hostSerial {
	s := &hostSerial{w: w, rx: make(chan byte, hostRxBuffer), done: make(chan struct{})}
	if r != nil {
		go s.readLoop(r)
	}
	return s
}

// readLoop exits on the first read error or on close; the link then looks
// silent and every later read times out.
func (s *hostSerial) readLoop(r io.Reader) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.rx <- b:
			case <-s.done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// close stops the reader goroutine once it is back from its current Read.
func (s *hostSerial) close() {
	s.once.Do(func() { close(s.done) })
}

func (s *hostSerial) ReadByteTimeout(d time.Duration) (byte, error) {
	select {
	case b := <-s.rx:
		return b, nil
	default:
	}
	if d <= 0 {
		return 0, ErrTimeout
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case b := <-s.rx:
		return b, nil
	case <-t.C:
		return 0, ErrTimeout
	}
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
