//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// HostConfig selects where the host build reads telemetry from.
type HostConfig struct {
	// SerialPath is a tty or file carrying the protocol. Empty means stdin/stdout.
	SerialPath string
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	panel  *hostPanel
	serial *hostSerial
	clock  hostClock
	ident  string
	closer io.Closer
}

// openHost binds a host HAL to cfg. Close releases the serial device.
func openHost(cfg HostConfig) (*hostHAL, error) {
	if cfg.SerialPath == "" {
		return newHostHAL(os.Stdin, os.Stdout, nil), nil
	}
	f, err := os.OpenFile(cfg.SerialPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open serial %q: %w", cfg.SerialPath, err)
	}
	return newHostHAL(f, f, f), nil
}

func newHostHAL(r io.Reader, w io.Writer, closer io.Closer) *hostHAL {
	logger := &hostLogger{w: os.Stderr}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		panel:  newHostPanel(128, 32),
		serial: newHostSerial(r, w),
		ident:  hostIdentity(),
		closer: closer,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Panel() Panel     { return h.panel }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Identity() string { return h.ident }

func (h *hostHAL) Close() error {
	h.serial.close()
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

type hostClock struct{}

func (hostClock) Now() time.Time        { return time.Now() }
func (hostClock) Sleep(d time.Duration) { time.Sleep(d) }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
