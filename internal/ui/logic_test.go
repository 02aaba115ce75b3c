package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/particle"
)

func TestWithAlpha(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}

	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"Opaque", 1, 0xff},
		{"Half", 0.5, 0x7f},
		{"Clamped below", -1, 0},
		{"Clamped above", 2, 0xff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withAlpha(red, tt.alpha).(color.NRGBA)
			assert.Equal(t, tt.want, got.A)
			assert.Equal(t, uint8(0xff), got.R, "Colour channels are kept")
		})
	}
}

func TestSparkleLayout(t *testing.T) {
	l := &sparkleLayout{points: []fyne.Position{{X: 0, Y: 0}, {X: 0.5, Y: 0.25}}}
	a := canvas.NewCircle(color.White)
	b := canvas.NewCircle(color.White)
	extra := canvas.NewCircle(color.White)

	l.Layout([]fyne.CanvasObject{a, b, extra}, fyne.NewSize(200, 100))

	assert.Equal(t, fyne.NewPos(0, 0), a.Position())
	assert.Equal(t, fyne.NewPos(100, 25), b.Position())
	assert.Equal(t, fyne.NewSize(config.SparkleSize, config.SparkleSize), b.Size())
	assert.False(t, extra.Visible(), "Objects without a point are hidden")
	assert.Equal(t, fyne.NewSize(0, 0), l.MinSize(nil))
}

func TestSparkleLayer_Deterministic(t *testing.T) {
	first := newSparkleLayer(color.White, 5, 7)
	second := newSparkleLayer(color.White, 5, 7)

	assert.Len(t, first.Objects, 5)
	assert.Equal(t, first.Layout.(*sparkleLayout).points, second.Layout.(*sparkleLayout).points)
}

func TestConfettiLayer(t *testing.T) {
	test.NewApp()
	l := NewConfettiLayer([]color.Color{color.White}, 1)
	l.Resize(fyne.NewSize(400, 300))

	assert.False(t, l.Active())

	l.Fire(particle.Celebration())
	assert.True(t, l.Active())
	assert.Equal(t, 100, l.Len())

	// Every piece expires after its tick budget.
	l.Advance(particle.DefaultTicks)
	assert.False(t, l.Active())
	assert.Nil(t, l.anim, "The frame loop stops once empty")

	l.Fire(particle.AmbientPair())
	assert.Equal(t, 100, l.Len())
	l.Stop()
	assert.Equal(t, 0, l.Len())
}

func TestConfettiLayer_Renderer(t *testing.T) {
	test.NewApp()
	l := NewConfettiLayer(nil, 1)
	l.Resize(fyne.NewSize(400, 300))
	r := test.TempWidgetRenderer(t, l)

	l.Fire(particle.EntryPair())
	r.Refresh()

	visible := 0
	for _, o := range r.Objects() {
		if o.Visible() {
			visible++
		}
	}
	assert.Equal(t, l.Len(), visible)

	l.Stop()
	r.Refresh()
	for _, o := range r.Objects() {
		assert.False(t, o.Visible())
	}
}

func TestPillButton_Tap(t *testing.T) {
	test.NewApp()
	tapped := 0
	b := NewPillButton("Go", color.White, color.Black, func() { tapped++ })

	test.Tap(b)
	test.Tap(b)
	assert.Equal(t, 2, tapped)

	// A nil callback is tolerated.
	b.OnTapped = nil
	assert.NotPanics(t, func() { test.Tap(b) })
}
