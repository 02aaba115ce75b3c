package ui

import (
	"image/color"
	"slices"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/engine"
)

// stageView is the content shown for one stage.
type stageView interface {
	object() fyne.CanvasObject
	update(engine.State)
	stop()
}

func (app *CelebrationApp) newView(s engine.Stage) stageView {
	switch s {
	case engine.StageCountdown:
		return app.newCountdownView()
	case engine.StageBirthday:
		return app.newBirthdayView()
	default:
		return app.newInitialView()
	}
}

// animations collects the running animations of a view.
type animations []*fyne.Animation

func (a *animations) start(anim *fyne.Animation) {
	*a = append(*a, anim)
	anim.Start()
}

func (a animations) stop() {
	for _, anim := range a {
		anim.Stop()
	}
}

func newText(s string, c color.Color, size float32, bold bool) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	t.Alignment = fyne.TextAlignCenter
	return t
}

// -----------------------------------------------------------------------------
// Initial
// -----------------------------------------------------------------------------

type initialView struct {
	root   fyne.CanvasObject
	title  *canvas.Text
	button *PillButton
	anims  animations
}

func (app *CelebrationApp) newInitialView() *initialView {
	colors := app.Theme.Colors()
	v := &initialView{
		title: newText(app.Theme.Title, colors.Text, config.TitleTextSize, true),
		button: NewPillButton(app.GetMsg(config.TKeyBtnCelebrate), colors.Button, colors.ButtonText, func() {
			app.Controller.BeginCelebration()
		}),
	}
	v.root = container.NewVBox(v.title, layout.NewSpacer(), container.NewCenter(v.button))

	pulse := fyne.NewAnimation(config.PulseDuration/2, func(f float32) {
		v.title.TextSize = config.TitleTextSize * (1 + config.PulseScale*f)
		v.title.Refresh()
	})
	pulse.AutoReverse = true
	pulse.RepeatCount = fyne.AnimationRepeatForever
	v.anims.start(pulse)
	return v
}

func (v *initialView) object() fyne.CanvasObject { return v.root }
func (v *initialView) update(engine.State)       {}
func (v *initialView) stop()                     { v.anims.stop() }

// -----------------------------------------------------------------------------
// Countdown
// -----------------------------------------------------------------------------

type countdownView struct {
	app    *CelebrationApp
	root   fyne.CanvasObject
	number *canvas.Text
	tiles  *fyne.Container
	shown  []int // revealed values with a tile, in reveal order
	count  int
	anims  animations
}

func (app *CelebrationApp) newCountdownView() *countdownView {
	colors := app.Theme.Colors()
	v := &countdownView{
		app:    app,
		number: newText("", colors.Text, config.CountdownTextSize, true),
		tiles:  container.NewGridWithColumns(config.RevealColumns),
		count:  -1,
	}
	v.root = container.NewVBox(v.number, container.NewCenter(v.tiles))
	return v
}

func (v *countdownView) object() fyne.CanvasObject { return v.root }
func (v *countdownView) stop()                     { v.anims.stop() }

func (v *countdownView) update(st engine.State) {
	if st.Count != v.count {
		v.count = st.Count
		v.number.Text = strconv.Itoa(st.Count)
		v.flipIn()
	}

	for _, n := range st.Revealed {
		if slices.Contains(v.shown, n) {
			continue
		}
		v.shown = append(v.shown, n)
		tile, img := v.app.countdownTile(n)
		v.tiles.Add(tile)
		if img != nil {
			v.fadeIn(img)
		}
	}
}

// flipIn grows the number from nothing to full size.
func (v *countdownView) flipIn() {
	base := v.app.Theme.Colors().Text
	anim := fyne.NewAnimation(config.FlipInDuration, func(f float32) {
		v.number.TextSize = config.CountdownTextSize * f
		v.number.Color = withAlpha(base, float64(f))
		v.number.Refresh()
	})
	anim.Curve = fyne.AnimationEaseOut
	v.anims.start(anim)
}

func (v *countdownView) fadeIn(img *canvas.Image) {
	img.Translucency = 1
	v.anims.start(fyne.NewAnimation(config.FlipInDuration, func(f float32) {
		img.Translucency = 1 - float64(f)
		img.Refresh()
	}))
}

// -----------------------------------------------------------------------------
// Birthday
// -----------------------------------------------------------------------------

type birthdayView struct {
	root     fyne.CanvasObject
	headline *canvas.Text
	name     *canvas.Text
	age      *canvas.Text // nil unless the birth year is known
	messages []*canvas.Text
	save     *PillButton // nil unless the honoree has a birthday
	anims    animations
}

func (app *CelebrationApp) newBirthdayView() *birthdayView {
	colors := app.Theme.Colors()
	v := &birthdayView{
		headline: newText(app.GetMsg(config.TKeyHappyBirthday), colors.Accent, config.BirthdayTextSize, true),
		name:     newText(app.honoreeName(), colors.Text, config.HonoreeTextSize, true),
	}

	items := []fyne.CanvasObject{v.headline, v.name}

	if h := app.Honoree; h != nil && h.HasBirthday() && h.YearKnown {
		if _, age := h.NextOccurrence(app.Clock.Now()); age > 0 {
			msg := app.Localize(config.TKeyTurningAge, map[string]interface{}{"Age": age}, age)
			v.age = newText(msg, colors.Text, config.MessageTextSize, false)
			items = append(items, v.age)
		}
	}

	picture, _ := app.assetTile(app.Theme.Assets.Birthday, "🎂", config.BirthdayTileSize)
	items = append(items, container.NewCenter(picture))

	for _, m := range app.Theme.Messages {
		t := newText(m, withAlpha(colors.Text, 0), config.MessageTextSize, false)
		v.messages = append(v.messages, t)
		items = append(items, t)
	}

	if h := app.Honoree; h != nil && h.HasBirthday() {
		v.save = NewPillButton(app.GetMsg(config.TKeyBtnSaveTheDate), colors.Button, colors.ButtonText, app.SaveTheDate)
		items = append(items, container.NewCenter(v.save))
	}

	v.root = container.NewVBox(items...)
	v.revealMessages(colors.Text)
	return v
}

func (v *birthdayView) object() fyne.CanvasObject { return v.root }
func (v *birthdayView) update(engine.State)       {}
func (v *birthdayView) stop()                     { v.anims.stop() }

// revealMessages fades the messages in one after the other using a single
// animation covering the whole stagger.
func (v *birthdayView) revealMessages(base color.Color) {
	n := len(v.messages)
	if n == 0 {
		return
	}
	total := config.MessageFadeIn + config.MessageStagger*(time.Duration(n-1))

	anim := fyne.NewAnimation(total, func(f float32) {
		elapsed := time.Duration(float64(total) * float64(f))
		for i, t := range v.messages {
			p := float64(elapsed-config.MessageStagger*time.Duration(i)) / float64(config.MessageFadeIn)
			t.Color = withAlpha(base, p)
			t.Refresh()
		}
	})
	anim.Curve = fyne.AnimationLinear
	v.anims.start(anim)
}

// -----------------------------------------------------------------------------
// Footer
// -----------------------------------------------------------------------------

func (app *CelebrationApp) buildFooter() fyne.CanvasObject {
	colors := app.Theme.Colors()
	madeBy := newText(
		app.Localize(config.TKeyFooterMadeBy, map[string]interface{}{"Author": app.Theme.Author}, nil),
		colors.Footer, config.FooterTextSize, false)
	tagline := newText(app.GetMsg(config.TKeyFooterTagline), colors.Footer, config.FooterTextSize, false)

	bg := canvas.NewRectangle(withAlpha(colors.Text, 0.8))
	return container.NewStack(bg, container.NewPadded(container.NewVBox(madeBy, tagline)))
}
