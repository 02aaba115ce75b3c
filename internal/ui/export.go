package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/tartampluch/go-celebration/internal/config"
)

// SaveTheDate asks where to write a yearly calendar event for the honoree.
func (app *CelebrationApp) SaveTheDate() {
	if app.Honoree == nil || !app.Honoree.HasBirthday() {
		return
	}

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if w == nil {
			return // cancelled
		}
		defer func() { _ = w.Close() }()

		if err := app.writeCalendar(w); err != nil {
			slog.Error(config.ErrExportWrite,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyPath, w.URI().Path(),
				config.LogKeyError, err)
			dialog.ShowError(err, app.Window)
			return
		}

		slog.Info(config.MsgCalendarSaved,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyPath, w.URI().Path())
		app.App.SendNotification(fyne.NewNotification(app.GetMsg(config.TKeyWinTitle), app.GetMsg(config.TKeyNotifSaved)))
	}, app.Window)

	d.SetFileName(calendarFileName(app.honoreeName()))
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// writeCalendar encodes the honoree's next birthday with a localized title.
func (app *CelebrationApp) writeCalendar(w io.Writer) error {
	summary := app.Localize(config.TKeyEventSummary, map[string]interface{}{"Name": app.honoreeName()}, nil)
	if summary == config.TKeyEventSummary {
		summary = fmt.Sprintf(config.FallbackSummary, app.honoreeName())
	}

	if err := app.Honoree.WriteCalendar(w, app.Clock.Now(), summary); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}
	return nil
}

// calendarFileName turns a display name into a safe file name.
func calendarFileName(name string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = strings.ToLower(config.FallbackName)
	}
	return fmt.Sprintf(config.ICSFileFmt, slug)
}
