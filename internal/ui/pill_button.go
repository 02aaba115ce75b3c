package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-celebration/internal/config"
)

// PillButton is a rounded button painted with theme palette colours
// instead of the toolkit theme.
type PillButton struct {
	widget.BaseWidget

	Label    string
	OnTapped func()

	fill color.Color
	text color.Color
}

// NewPillButton creates a button with the given palette colours.
func NewPillButton(label string, fill, text color.Color, tapped func()) *PillButton {
	b := &PillButton{Label: label, OnTapped: tapped, fill: fill, text: text}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped runs the callback.
func (b *PillButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// Cursor shows a pointer over the button on desktop.
func (b *PillButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget.
func (b *PillButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.fill)
	bg.CornerRadius = config.ButtonTextSize

	label := canvas.NewText(b.Label, b.text)
	label.TextSize = config.ButtonTextSize
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter

	padded := container.New(&paddedLayout{pad: config.ButtonTextSize}, label)
	return widget.NewSimpleRenderer(container.NewStack(bg, padded))
}

// paddedLayout adds the same pad on every side of its single child.
type paddedLayout struct {
	pad float32
}

func (l *paddedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(l.pad, l.pad/2))
		o.Resize(fyne.NewSize(size.Width-2*l.pad, size.Height-l.pad))
	}
}

func (l *paddedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	sz := fyne.NewSize(0, 0)
	for _, o := range objects {
		sz = sz.Max(o.MinSize())
	}
	return sz.Add(fyne.NewSize(2*l.pad, l.pad))
}
