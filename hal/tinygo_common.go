//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// usbPollInterval bounds how long a timed read sleeps between buffer checks.
const usbPollInterval = 100 * time.Microsecond

type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time        { return time.Now() }
func (tinyGoClock) Sleep(d time.Duration) { time.Sleep(d) }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type usbSerial struct {
	port machine.Serialer
}

func (s *usbSerial) ReadByteTimeout(d time.Duration) (byte, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	deadline := time.Now().Add(d)
	for {
		if s.port.Buffered() > 0 {
			return s.port.ReadByte()
		}
		if !time.Now().Before(deadline) {
			return 0, ErrTimeout
		}
		time.Sleep(usbPollInterval)
	}
}

func (s *usbSerial) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	return s.port.Write(p)
}
