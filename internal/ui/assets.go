package ui

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-celebration/internal/config"
)

// assetDir is the folder holding the countdown and birthday pictures.
func (app *CelebrationApp) assetDir() string {
	return app.pref(config.PrefAssetDir, config.DefaultAssetDir)
}

// assetTile returns a square tile showing the named image. A missing file
// yields a coloured placeholder with label, and a nil image.
func (app *CelebrationApp) assetTile(name, label string, side float32) (fyne.CanvasObject, *canvas.Image) {
	size := fyne.NewSize(side, side)
	path := filepath.Join(app.assetDir(), name)

	if _, err := os.Stat(path); err != nil {
		slog.Warn(config.ErrAssetMissing,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyPath, path,
			config.LogKeyError, err)

		colors := app.Theme.Colors()
		bg := canvas.NewRectangle(withAlpha(colors.Accent, 0.6))
		bg.CornerRadius = side / 10
		bg.SetMinSize(size)

		txt := canvas.NewText(label, colors.Text)
		txt.TextSize = side / 3
		txt.TextStyle = fyne.TextStyle{Bold: true}
		return container.NewStack(bg, container.NewCenter(txt)), nil
	}

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(size)
	return img, img
}

// countdownTile is the reveal tile for countdown value n.
func (app *CelebrationApp) countdownTile(n int) (fyne.CanvasObject, *canvas.Image) {
	return app.assetTile(app.Theme.CountdownAsset(n), strconv.Itoa(n), config.RevealTileSize)
}
