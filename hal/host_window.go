//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"splitdash/internal/buildinfo"
)

// panelGap is the blank strip between the two simulated panels.
const panelGap = 8

// RunWindow starts a desktop window showing both halves' panels side by
// side and forwards keyboard input to them. It blocks until the window
// closes.
func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	p, err := NewPair(cfg)
	if err != nil {
		return err
	}
	step := p.stepper(newApp)

	g := &hostGame{p: p, step: step}
	w := p.master.fb.width + panelGap + p.slave.fb.width
	h := p.master.fb.height
	ebiten.SetWindowTitle("splitdash (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*4, h*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	p       *Pair
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	pollHostKeys(g.p.keys)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w := g.p.master.fb.width + panelGap + g.p.slave.fb.width
	h := g.p.master.fb.height
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	for i := 0; i < len(g.img.Pix); i += 4 {
		g.img.Pix[i+0] = 0
		g.img.Pix[i+1] = 0
		g.img.Pix[i+2] = 0
		g.img.Pix[i+3] = 0xFF
	}
	g.blit(g.p.master.fb, 0)
	g.blit(g.p.slave.fb, g.p.master.fb.width+panelGap)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

// blit paints one mono panel into the window image at column xoff.
func (g *hostGame) blit(fb *monoFramebuffer, xoff int) {
	if len(g.scratch) < len(fb.buf) {
		g.scratch = make([]byte, len(fb.buf))
	}
	fb.snapshot(g.scratch)

	stride := g.img.Stride
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if !fb.pixelAt(g.scratch, x, y) {
				continue
			}
			j := y*stride + (xoff+x)*4
			g.img.Pix[j+0] = 0xFF
			g.img.Pix[j+1] = 0xFF
			g.img.Pix[j+2] = 0xFF
		}
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.p.master.fb.width + panelGap + g.p.slave.fb.width, g.p.master.fb.height
}
