//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostPanel is a 1bpp panel. Drawing goes to the back buffer; Display copies
// it to the front buffer that the window reads.
type hostPanel struct {
	mu     sync.Mutex
	width  int
	height int
	back   []bool
	front  []bool
	frames uint64
}

func newHostPanel(width, height int) *hostPanel {
	return &hostPanel{
		width:  width,
		height: height,
		back:   make([]bool, width*height),
		front:  make([]bool, width*height),
	}
}

func (p *hostPanel) Size() (x, y int16) { return int16(p.width), int16(p.height) }

func (p *hostPanel) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= p.width || iy < 0 || iy >= p.height {
		return
	}
	p.back[iy*p.width+ix] = lit(c)
}

func (p *hostPanel) ClearBuffer() {
	clear(p.back)
}

func (p *hostPanel) Display() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.front, p.back)
	p.frames++
	return nil
}

// snapshot copies the last flushed frame into dst and returns the flush count.
func (p *hostPanel) snapshot(dst []bool) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.front)
	return p.frames
}
