//go:build !tinygo

package feed

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	io.Reader
	written bytes.Buffer
}

func (p *fakePort) Write(b []byte) (int, error) { return p.written.Write(b) }

func TestIdentify(t *testing.T) {
	port := &fakePort{Reader: strings.NewReader("debug noise\r\npicoled:e6614103e7a3b82b\r\n")}

	id, err := Identify(port, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "e6614103e7a3b82b", id)
	assert.Equal(t, "ident\n", port.written.String())
}

func TestIdentifyEOF(t *testing.T) {
	port := &fakePort{Reader: strings.NewReader("nothing here\n")}
	_, err := Identify(port, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestIdentifyTimeout(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	port := &fakePort{Reader: r}

	_, err := Identify(port, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrNoReply)
}

func TestStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	var logs bytes.Buffer

	calls := 0
	sample := func() (Sample, error) {
		calls++
		switch calls {
		case 2:
			return Sample{}, errors.New("boom")
		case 3:
			cancel()
		}
		return Sample{CPU: uint8(calls)}, nil
	}

	err := Stream(ctx, &out, sample, time.Millisecond, log.New(&logs, "", 0))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "cpu:1,mem:0,cpu_temp:0,gpu_temp:0\ncpu:3,mem:0,cpu_temp:0,gpu_temp:0\n", out.String())
	assert.Contains(t, logs.String(), "boom")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStreamWriteError(t *testing.T) {
	sample := func() (Sample, error) { return Sample{}, nil }
	err := Stream(context.Background(), failWriter{}, sample, time.Millisecond, log.New(io.Discard, "", 0))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
