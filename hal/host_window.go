//go:build !tinygo && cgo

package hal

import (
	"image"

	"picoled/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowScale = 6

// RunWindow opens a desktop window that mirrors the panel. The frame loop runs
// on its own goroutine; the window only reads flushed frames. It blocks until
// the window closes or a step fails.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h, err := openHost(cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	step := newApp(h)
	errc := make(chan error, 1)
	if step != nil {
		go func() {
			for {
				if err := step(); err != nil {
					errc <- err
					return
				}
			}
		}()
	}

	g := &hostGame{h: h, errc: errc}
	ebiten.SetWindowTitle("picoled (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.panel.width*windowScale, h.panel.height*windowScale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h      *hostHAL
	errc   chan error
	img    *image.RGBA
	fbImg  *ebiten.Image
	pixels []bool
	seen   uint64
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.errc:
		return err
	default:
		return nil
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
		g.pixels = make([]bool, p.width*p.height)
		g.fbImg = ebiten.NewImage(p.width, p.height)
	}

	if frames := p.snapshot(g.pixels); frames != g.seen {
		g.seen = frames
		dst := g.img.Pix
		for i, on := range g.pixels {
			var v uint8
			if on {
				v = 0xFF
			}
			j := i * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.width, g.h.panel.height
}
