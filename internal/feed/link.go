//go:build !tinygo

package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"
	"time"
)

// identPrefix starts the device's reply to "ident".
const identPrefix = "picoled:"

// ErrNoReply means the device did not answer "ident" in time.
var ErrNoReply = errors.New("no ident reply")

// OpenPort opens a serial device for reading and writing.
func OpenPort(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("open port %q: %w", path, err)
	}
	return f, nil
}

// Stream samples every interval and writes one protocol line per sample until
// ctx is done. A failed sample is logged and skipped; the device repeats its
// last value for that frame.
func Stream(ctx context.Context, w io.Writer, sample func() (Sample, error), interval time.Duration, logger *log.Logger) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := sample()
		if err != nil {
			logger.Printf("WARN: sample: %v", err)
		} else if _, err := io.WriteString(w, s.Line()); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Identify sends "ident" and waits up to timeout for the identity reply.
// Lines that are not replies (such as stray debug text) are skipped.
func Identify(rw io.ReadWriter, timeout time.Duration) (string, error) {
	if _, err := io.WriteString(rw, "ident\n"); err != nil {
		return "", fmt.Errorf("write ident: %w", err)
	}

	type result struct {
		id  string
		err error
	}
	done := make(chan result, 1)
	go func() {
		scanner := bufio.NewScanner(rw)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if id, ok := strings.CutPrefix(line, identPrefix); ok {
				done <- result{id: id}
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		done <- result{err: fmt.Errorf("read ident reply: %w", err)}
	}()

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case r := <-done:
		return r.id, r.err
	case <-t.C:
		return "", ErrNoReply
	}
}
