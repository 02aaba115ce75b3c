package ui

import (
	"image/color"
	"math/rand/v2"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-celebration/internal/config"
)

// sparkleLayout places each object at a fixed fraction of the container
// size, so the decoration scales with the window.
type sparkleLayout struct {
	points []fyne.Position // X and Y in [0, 1]
}

func (l *sparkleLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for i, o := range objects {
		if i >= len(l.points) {
			o.Hide()
			continue
		}
		p := l.points[i]
		o.Resize(fyne.NewSize(config.SparkleSize, config.SparkleSize))
		o.Move(fyne.NewPos(p.X*size.Width, p.Y*size.Height))
	}
}

func (l *sparkleLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// newSparkleLayer scatters n small translucent dots over the background.
func newSparkleLayer(accent color.Color, n int, seed uint64) *fyne.Container {
	rng := rand.New(rand.NewPCG(seed, seed))
	l := &sparkleLayout{points: make([]fyne.Position, n)}
	objects := make([]fyne.CanvasObject, n)

	for i := range n {
		l.points[i] = fyne.NewPos(rng.Float32(), rng.Float32())
		dot := canvas.NewCircle(withAlpha(accent, 0.3+0.5*rng.Float64()))
		objects[i] = dot
	}
	return container.New(l, objects...)
}
