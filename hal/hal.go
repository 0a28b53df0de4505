package hal

import (
	"errors"
	"fmt"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Logf formats a line and writes it to l. A nil logger discards the line.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrTimeout        = errors.New("timeout")
)

// Panel is a monochrome pixel sink: set-pixel, clear and flush.
//
// Any color with a non-zero channel lights the pixel.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
}

// Serial is the telemetry link to the host.
type Serial interface {
	// ReadByteTimeout waits up to d for one byte. It returns ErrTimeout if
	// nothing arrived in time.
	ReadByteTimeout(d time.Duration) (byte, error)
	Write(p []byte) (int, error)
}

// Clock provides wall time and blocking sleeps for frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Panel() Panel
	Serial() Serial
	Clock() Clock

	// Identity is the board identity string, fixed for the process lifetime.
	Identity() string
}
