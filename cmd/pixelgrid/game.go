package main

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// game adapts ui.Controller to ebiten.Game. The window is painted with
// gg and uploaded to an ebiten image only when the content changes.
type game struct {
	ctrl   *ui.Controller
	width  int
	height int

	dc     *gg.Context
	pixels *image.RGBA
	frame  *ebiten.Image

	cursor image.Point
	keys   []ebiten.Key
}

func newGame(ctrl *ui.Controller) *game {
	w, h := ctrl.Layout().Size()
	return &game{
		ctrl:   ctrl,
		width:  w,
		height: h,
		dc:     gg.NewContext(w, h),
		pixels: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

func (g *game) close() {
	if err := g.dc.Close(); err != nil {
		slog.Warn("closing drawing context", "err", err)
	}
	if g.frame != nil {
		g.frame.Deallocate()
	}
}

// keyOf maps ebiten keys to controller bindings.
func keyOf(k ebiten.Key) ui.Key {
	switch k {
	case ebiten.KeyC:
		return ui.KeyToggleCorners
	case ebiten.KeyP:
		return ui.KeyTogglePrime
	default:
		return ui.KeyOther
	}
}

func (g *game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		g.ctrl.KeyPress(keyOf(k))
	}

	x, y := ebiten.CursorPosition()
	p := pixelgrid.Pt(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Press(p)
	}
	if c := image.Pt(x, y); c != g.cursor {
		g.cursor = c
		g.ctrl.Move(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctrl.Release()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	if g.ctrl.NeedsRedraw() {
		if err := g.ctrl.Draw(g.dc); err != nil {
			slog.Error("drawing window", "err", err)
			return
		}
		g.upload(g.dc.Image())
	}
	screen.DrawImage(g.frame, nil)
}

// upload copies img into the ebiten frame.
func (g *game) upload(img image.Image) {
	src, ok := img.(*image.RGBA)
	if !ok || src.Stride != 4*g.width {
		draw.Draw(g.pixels, g.pixels.Bounds(), img, img.Bounds().Min, draw.Src)
		src = g.pixels
	}
	g.frame.WritePixels(src.Pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
