package ui

import (
	"context"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/engine"
	"github.com/tartampluch/go-celebration/internal/honoree"
	"github.com/tartampluch/go-celebration/internal/particle"
	"github.com/tartampluch/go-celebration/internal/theme"
)

// CelebrationApp encapsulates the window, preferences and the controller
// that drives the celebration.
type CelebrationApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock      engine.Clock // Injected clock for testability
	Controller *engine.Controller
	Theme      *theme.Theme
	Honoree    *honoree.Honoree // nil when no card is configured

	SupportedLanguages []string

	// Overrides holds command-line values keyed by preference key. They win
	// over stored preferences until the settings window saves new ones.
	Overrides map[string]string

	// dispatch runs UI work on the fyne main goroutine.
	dispatch func(func())

	stage          engine.Stage
	view           stageView
	stageSlot      *fyne.Container
	background     *canvas.LinearGradient
	confetti       *ConfettiLayer
	settingsWindow fyne.Window
	closeOnce      sync.Once
}

// NewCelebrationApp constructs the application and wires the controller.
// sched drives the countdown and ambient timers.
func NewCelebrationApp(a fyne.App, ctx context.Context, sched engine.Scheduler) *CelebrationApp {
	app := &CelebrationApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		Overrides:          map[string]string{},
		dispatch:           fyne.Do,
	}
	app.Controller = engine.NewController(sched, app, app.onStateChange)
	return app
}

// Run loads resources, shows the main window and blocks until it closes.
func (app *CelebrationApp) Run() {
	app.SetupI18n()
	app.LoadTheme()
	app.LoadHonoree()
	app.BuildWindow()

	go func() {
		<-app.Ctx.Done()
		app.Controller.Close()
	}()

	app.Window.ShowAndRun()
	app.Close()
}

// BuildWindow creates the main window and renders the current state.
func (app *CelebrationApp) BuildWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetOnClosed(func() {
		slog.Info(config.MsgWindowClosed, config.LogKeyComponent, config.CompUI)
		app.Close()
	})
	app.Window = w

	app.applyMenu()
	app.rebuildContent()
}

// applyMenu (re)builds the localized main menu.
func (app *CelebrationApp) applyMenu() {
	app.Window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(app.GetMsg(config.TKeyMenuFile),
			fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow),
		),
	))
}

// rebuildContent assembles the layered page and shows the current stage.
// It is also used after the theme or language changed.
func (app *CelebrationApp) rebuildContent() {
	if app.view != nil {
		app.view.stop()
		app.view = nil
	}
	if app.confetti != nil {
		app.confetti.Stop()
	}

	colors := app.Theme.Colors()
	app.background = canvas.NewLinearGradient(colors.BackgroundStart, colors.BackgroundEnd, config.GradientAngle)
	sparkles := newSparkleLayer(colors.Accent, config.SparkleCount, config.SparkleSeed)
	app.stageSlot = container.NewCenter()
	app.confetti = NewConfettiLayer(app.Theme.ConfettiColors(), uint64(app.Clock.Now().UnixNano()))

	page := container.NewBorder(nil, app.buildFooter(), nil, nil, app.stageSlot)
	app.Window.SetContent(container.NewStack(app.background, sparkles, page, app.confetti))

	app.render(app.Controller.Snapshot())
}

// Close tears the controller down and stops running animations.
func (app *CelebrationApp) Close() {
	app.closeOnce.Do(func() {
		app.Controller.Close()
		if app.view != nil {
			app.view.stop()
		}
		if app.confetti != nil {
			app.confetti.Stop()
		}
	})
}

// onStateChange is the controller observer. It may be called from a timer
// goroutine, so rendering is marshalled to the UI thread.
func (app *CelebrationApp) onStateChange(st engine.State) {
	slog.Debug(config.MsgStageChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyStage, st.Stage,
		config.LogKeyCount, st.Count,
		config.LogKeyRevealed, st.Revealed)

	app.dispatch(func() { app.render(st) })
}

// Fire implements engine.EffectSink.
func (app *CelebrationApp) Fire(e engine.Effect) {
	slog.Debug(config.MsgEffectFired,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyEffect, e.Kind,
		config.LogKeyBursts, len(e.Bursts),
		config.LogKeyParticles, particle.TotalParticles(e.Bursts))

	app.dispatch(func() {
		if app.confetti != nil {
			app.confetti.Fire(e.Bursts)
		}
	})
}

// render swaps the stage view when the stage changes and updates it.
func (app *CelebrationApp) render(st engine.State) {
	if app.stageSlot == nil {
		return
	}
	if app.view == nil || st.Stage != app.stage {
		if app.view != nil {
			app.view.stop()
		}
		app.stage = st.Stage
		app.view = app.newView(st.Stage)
		app.stageSlot.Objects = []fyne.CanvasObject{app.view.object()}
		app.stageSlot.Refresh()
	}
	app.view.update(st)
}

// LoadTheme resolves the theme from preferences.
func (app *CelebrationApp) LoadTheme() {
	app.Theme = theme.LoadOrDefault(
		app.pref(config.PrefTheme, config.DefaultTheme),
		app.pref(config.PrefThemeFile, ""),
	)
}

// pref resolves a string preference, command-line overrides first.
func (app *CelebrationApp) pref(key, fallback string) string {
	if v, ok := app.Overrides[key]; ok && v != "" {
		return v
	}
	return app.Preferences.StringWithFallback(key, fallback)
}

// LoadHonoree reads the optional honoree card. Failures are logged and the
// theme name is used instead.
func (app *CelebrationApp) LoadHonoree() {
	app.Honoree = nil

	path := app.pref(config.PrefHonoreeCard, "")
	if path == "" {
		return
	}

	h, err := honoree.LoadCard(path)
	if err != nil {
		slog.Warn(config.ErrHonoreeLoad,
			config.LogKeyComponent, config.CompHonoree,
			config.LogKeyPath, path,
			config.LogKeyError, err)
		return
	}

	slog.Info(config.MsgHonoreeLoaded,
		config.LogKeyComponent, config.CompHonoree,
		config.LogKeyName, h.Name)
	app.Honoree = &h
}

// honoreeName prefers the card over the theme copy.
func (app *CelebrationApp) honoreeName() string {
	if app.Honoree != nil && app.Honoree.Name != config.FallbackName {
		return app.Honoree.Name
	}
	return app.Theme.Honoree
}
