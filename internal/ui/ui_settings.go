package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	fynetheme "fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-celebration/internal/config"
	"github.com/tartampluch/go-celebration/internal/theme"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	themeSelect *widget.Select
	themeFile   *widget.Entry
	assetDir    *widget.Entry
	cardPath    *widget.Entry
}

// ShowSettingsWindow displays the configuration dialog.
func (app *CelebrationApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	// --- General ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemTheme := widget.NewFormItem(app.GetMsg(config.TKeyLblTheme), container.NewVBox(
		sw.themeSelect,
		app.browseRow(w, sw.themeFile, []string{config.ExtYAML}),
	))
	itemAssets := widget.NewFormItem(app.GetMsg(config.TKeyLblAssetDir), app.folderRow(w, sw.assetDir))
	itemCard := widget.NewFormItem(app.GetMsg(config.TKeyLblHonoree), app.browseRow(w, sw.cardPath, []string{config.ExtVCF, config.ExtVCard}))
	itemCard.HintText = app.GetMsg(config.TKeyHelpHonoree)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "",
		widget.NewForm(itemLang, itemTheme, itemAssets, itemCard))

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), fynetheme.DocumentSaveIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), fynetheme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets fills the form from the effective preferences.
func (app *CelebrationApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{
		langSelect:  widget.NewSelect(app.SupportedLanguages, nil),
		themeSelect: widget.NewSelect(theme.Available(), nil),
		themeFile:   widget.NewEntry(),
		assetDir:    widget.NewEntry(),
		cardPath:    widget.NewEntry(),
	}
	sw.langSelect.SetSelected(app.pref(config.PrefLanguage, config.DefaultLanguage))
	sw.themeSelect.SetSelected(app.pref(config.PrefTheme, config.DefaultTheme))
	sw.themeFile.SetText(app.pref(config.PrefThemeFile, ""))
	sw.assetDir.SetText(app.assetDir())
	sw.cardPath.SetText(app.pref(config.PrefHonoreeCard, ""))
	return sw
}

// browseRow is an entry with a file picker restricted to exts.
func (app *CelebrationApp) browseRow(w fyne.Window, entry *widget.Entry, exts []string) fyne.CanvasObject {
	browseBtn := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				entry.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		d.SetFilter(storage.NewExtensionFileFilter(exts))
		d.Show()
	})
	return container.NewBorder(nil, nil, nil, browseBtn, entry)
}

// folderRow is an entry with a folder picker.
func (app *CelebrationApp) folderRow(w fyne.Window, entry *widget.Entry) fyne.CanvasObject {
	browseBtn := widget.NewButton(app.GetMsg(config.TKeyBtnBrowse), func() {
		dialog.ShowFolderOpen(func(u fyne.ListableURI, err error) {
			if err == nil && u != nil {
				entry.SetText(u.Path())
			}
		}, w)
	})
	return container.NewBorder(nil, nil, nil, browseBtn, entry)
}

// saveSettings persists the form and reloads everything that depends on it.
// Saved values replace the command-line overrides for this session.
func (app *CelebrationApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	values := map[string]string{
		config.PrefLanguage:    sw.langSelect.Selected,
		config.PrefTheme:       sw.themeSelect.Selected,
		config.PrefThemeFile:   sw.themeFile.Text,
		config.PrefAssetDir:    sw.assetDir.Text,
		config.PrefHonoreeCard: sw.cardPath.Text,
	}
	for key, v := range values {
		app.Preferences.SetString(key, v)
		delete(app.Overrides, key)
	}

	app.applySettings()
	w.Close()
}

// applySettings reloads the translations, theme and honoree, then redraws
// the main window. The celebration state is kept.
func (app *CelebrationApp) applySettings() {
	app.UpdateLocalizer()
	app.LoadTheme()
	app.LoadHonoree()

	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
		app.applyMenu()
		app.rebuildContent()
	}
}
