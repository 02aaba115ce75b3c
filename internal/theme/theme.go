// Package theme loads the copy, colours and asset names of the celebration
// page from YAML files. The state machine is identical for every theme.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	gcolor "github.com/gookit/color"
	"github.com/tartampluch/go-celebration/internal/config"
	"gopkg.in/yaml.v3"
)

//go:embed themes/*.yaml
var themeFS embed.FS

const themeDir = "themes"

// Theme is the visual configuration of one page variant.
type Theme struct {
	ID       string   `yaml:"id"`       // Identifier, e.g. "ocean"
	Title    string   `yaml:"title"`    // Question shown above the start button
	Honoree  string   `yaml:"honoree"`  // Name shown under "Happy Birthday!"
	Author   string   `yaml:"author"`   // Footer signature
	Messages []string `yaml:"messages"` // Staggered celebratory lines
	Palette  Palette  `yaml:"palette"`
	Confetti []string `yaml:"confetti"` // Hex colours for confetti pieces
	Assets   Assets   `yaml:"assets"`

	colors   Colors
	confetti []color.Color
}

// Palette holds hex colour strings such as "#2563eb".
type Palette struct {
	BackgroundStart string `yaml:"background_start"`
	BackgroundEnd   string `yaml:"background_end"`
	Text            string `yaml:"text"`
	Accent          string `yaml:"accent"`
	Button          string `yaml:"button"`
	ButtonText      string `yaml:"button_text"`
	Footer          string `yaml:"footer"`
}

// Colors is the parsed form of Palette.
type Colors struct {
	BackgroundStart color.Color
	BackgroundEnd   color.Color
	Text            color.Color
	Accent          color.Color
	Button          color.Color
	ButtonText      color.Color
	Footer          color.Color
}

// Assets names the image files looked up in the asset directory.
type Assets struct {
	// Countdown is a pattern with one %d verb for the countdown value.
	Countdown string `yaml:"countdown"`
	Birthday  string `yaml:"birthday"`
}

// Colors returns the parsed palette.
func (t *Theme) Colors() Colors {
	return t.colors
}

// ConfettiColors returns the parsed confetti palette.
func (t *Theme) ConfettiColors() []color.Color {
	return t.confetti
}

// CountdownAsset returns the file name of the illustration for value n.
func (t *Theme) CountdownAsset(n int) string {
	return fmt.Sprintf(t.Assets.Countdown, n)
}

// Available lists the embedded theme IDs in alphabetical order.
func Available() []string {
	entries, err := themeFS.ReadDir(themeDir)
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, config.ExtYAML) {
			ids = append(ids, strings.TrimSuffix(name, config.ExtYAML))
		}
	}
	sort.Strings(ids)
	return ids
}

// Load returns an embedded theme by ID.
func Load(id string) (*Theme, error) {
	data, err := themeFS.ReadFile(path.Join(themeDir, id+config.ExtYAML))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %q", config.ErrThemeUnknown, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", config.ErrThemeRead, id, err)
	}
	return Parse(data)
}

// LoadFile reads a theme from disk.
func LoadFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", config.ErrThemeRead, filePath, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return t, nil
}

// Parse decodes and validates YAML theme data. Missing asset names take the
// default file names.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrThemeParse, err)
	}

	applyDefaults(&t)

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrThemeInvalid, err)
	}
	return &t, nil
}

// LoadOrDefault resolves a theme from a file path or an embedded ID and
// falls back to the default embedded theme when that fails.
func LoadOrDefault(id, filePath string) *Theme {
	log := slog.With(config.LogKeyComponent, config.CompTheme)

	var (
		t   *Theme
		err error
	)
	if filePath != "" {
		t, err = LoadFile(filePath)
	} else {
		t, err = Load(id)
	}

	if err != nil {
		log.Error(config.ErrThemeFallback,
			config.LogKeyTheme, id,
			config.LogKeyPath, filePath,
			config.LogKeyError, err)
		// The default theme is embedded and covered by tests.
		t, _ = Load(config.DefaultTheme)
	}

	log.Info(config.MsgThemeLoaded, config.LogKeyTheme, t.ID)
	return t
}

func applyDefaults(t *Theme) {
	if t.Assets.Countdown == "" {
		t.Assets.Countdown = config.DefaultCountdownImage
	}
	if t.Assets.Birthday == "" {
		t.Assets.Birthday = config.DefaultBirthdayImage
	}
}

func (t *Theme) validate() error {
	if t.ID == "" {
		return errors.New(config.ErrThemeNoID)
	}
	if t.Title == "" {
		return errors.New(config.ErrThemeNoTitle)
	}
	if len(t.Messages) == 0 {
		return errors.New(config.ErrThemeNoMessages)
	}
	if len(t.Confetti) == 0 {
		return errors.New(config.ErrThemeNoConfetti)
	}
	if !validCountdownPattern(t.Assets.Countdown) {
		return fmt.Errorf("%s, got %q", config.ErrThemeCountdown, t.Assets.Countdown)
	}

	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background_start", t.Palette.BackgroundStart, &t.colors.BackgroundStart},
		{"background_end", t.Palette.BackgroundEnd, &t.colors.BackgroundEnd},
		{"text", t.Palette.Text, &t.colors.Text},
		{"accent", t.Palette.Accent, &t.colors.Accent},
		{"button", t.Palette.Button, &t.colors.Button},
		{"button_text", t.Palette.ButtonText, &t.colors.ButtonText},
		{"footer", t.Palette.Footer, &t.colors.Footer},
	}
	for _, f := range fields {
		c, err := ParseHex(f.hex)
		if err != nil {
			return fmt.Errorf("palette.%s: %w", f.name, err)
		}
		*f.dst = c
	}

	t.confetti = make([]color.Color, 0, len(t.Confetti))
	for i, hex := range t.Confetti {
		c, err := ParseHex(hex)
		if err != nil {
			return fmt.Errorf("confetti[%d]: %w", i, err)
		}
		t.confetti = append(t.confetti, c)
	}
	return nil
}

// validCountdownPattern accepts a pattern with exactly one %d and no other
// formatting verb.
func validCountdownPattern(pattern string) bool {
	if strings.Count(pattern, "%d") != 1 {
		return false
	}
	return !strings.Contains(fmt.Sprintf(pattern, 1), "%!")
}

// ParseHex converts "#rrggbb" or "#rgb" to an opaque colour.
func ParseHex(hex string) (color.NRGBA, error) {
	rgb := gcolor.HexToRgb(strings.TrimPrefix(strings.TrimSpace(hex), "#"))
	if len(rgb) != 3 {
		return color.NRGBA{}, fmt.Errorf("%s: %q", config.ErrThemeColor, hex)
	}
	return color.NRGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xff}, nil
}
