package ui

import (
	"image/color"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/particle"
)

// ConfettiLayer draws a particle system on top of the page. It never
// handles input so taps reach the widgets underneath.
// All methods must be called on the UI goroutine.
type ConfettiLayer struct {
	widget.BaseWidget

	colors []color.Color
	system *particle.System
	anim   *fyne.Animation
}

// NewConfettiLayer creates an idle layer. seed feeds the particle RNG.
func NewConfettiLayer(colors []color.Color, seed uint64) *ConfettiLayer {
	if len(colors) == 0 {
		colors = []color.Color{color.White}
	}
	l := &ConfettiLayer{colors: colors, system: particle.NewSystem(seed)}
	l.ExtendBaseWidget(l)
	return l
}

// Fire launches every burst and starts the frame loop if it is idle.
func (l *ConfettiLayer) Fire(bursts []particle.Burst) {
	size := l.Size()
	for _, b := range bursts {
		l.system.Emit(b, float64(size.Width), float64(size.Height), len(l.colors))
	}
	slog.Debug(config.MsgEffectFired,
		config.LogKeyComponent, config.CompConfetti,
		config.LogKeyBursts, len(bursts),
		config.LogKeyParticles, l.system.Len())

	if l.anim == nil {
		l.anim = fyne.NewAnimation(config.ConfettiAnimLength, func(float32) { l.Advance(1) })
		l.anim.Curve = fyne.AnimationLinear
		l.anim.RepeatCount = fyne.AnimationRepeatForever
		l.anim.Start()
	}
	l.Refresh()
}

// Advance steps the simulation by n frames and stops the loop once every
// piece has faded.
func (l *ConfettiLayer) Advance(n int) {
	l.system.Step(n)
	if l.system.Len() == 0 && l.anim != nil {
		l.anim.Stop()
		l.anim = nil
	}
	l.Refresh()
}

// Active reports whether pieces are still on screen.
func (l *ConfettiLayer) Active() bool {
	return l.system.Len() > 0
}

// Len is the number of live pieces.
func (l *ConfettiLayer) Len() int {
	return l.system.Len()
}

// Stop halts the frame loop and drops all pieces.
func (l *ConfettiLayer) Stop() {
	if l.anim != nil {
		l.anim.Stop()
		l.anim = nil
	}
	l.system.Clear()
	l.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (l *ConfettiLayer) CreateRenderer() fyne.WidgetRenderer {
	return &confettiRenderer{layer: l}
}

// confettiRenderer keeps a pool of rectangles, one per live piece.
type confettiRenderer struct {
	layer   *ConfettiLayer
	pool    []*canvas.Rectangle
	objects []fyne.CanvasObject
}

func (r *confettiRenderer) Layout(fyne.Size) {}

func (r *confettiRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *confettiRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *confettiRenderer) Destroy() {}

func (r *confettiRenderer) Refresh() {
	pieces := r.layer.system.Pieces()

	for len(r.pool) < len(pieces) {
		rect := canvas.NewRectangle(color.Transparent)
		r.pool = append(r.pool, rect)
		r.objects = append(r.objects, rect)
	}

	for i, rect := range r.pool {
		if i >= len(pieces) {
			rect.Hide()
			continue
		}
		p := pieces[i]
		// A flat rectangle cannot rotate, so the tilt narrows it instead.
		w := float32(config.ConfettiPieceW * math.Max(0.25, math.Abs(math.Cos(p.Tilt))))
		rect.FillColor = withAlpha(r.layer.colors[p.Color%len(r.layer.colors)], p.Opacity())
		rect.Resize(fyne.NewSize(w, config.ConfettiPieceH))
		rect.Move(fyne.NewPos(float32(p.X)-w/2, float32(p.Y)))
		rect.Show()
		rect.Refresh()
	}
}

// withAlpha scales the alpha of c by a in [0, 1].
func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a = math.Max(0, math.Min(1, a))
	n.A = uint8(float64(n.A) * a)
	return n
}
