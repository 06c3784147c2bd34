package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ffnt/fbtext"
)

// Theme is the file form of fbtext.Theme.
//
//	[colors]
//	text = "#ffffff"
//	background = "#2d2d2d"
//
//	[icons]
//	a = "icons/a.png"
//	plus = "icons/plus.abgr"
//
// Colors left out keep the default theme's value. Icon paths are relative
// to the theme file.
type Theme struct {
	Colors Colors            `mapstructure:"colors"`
	Icons  map[string]string `mapstructure:"icons"`
}

// Colors holds the theme colors. Nil entries are not set in the file.
type Colors struct {
	Text       *fbtext.Color `mapstructure:"text"`
	Background *fbtext.Color `mapstructure:"background"`
	Separator  *fbtext.Color `mapstructure:"separator"`
	Selected   *fbtext.Color `mapstructure:"selected"`
	Tooltip    *fbtext.Color `mapstructure:"tooltip"`
}

// ParseTheme decodes theme TOML text.
func ParseTheme(text string) (*Theme, error) {
	var t Theme
	if err := decode(text, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTheme reads a theme file and builds the fbtext theme it describes,
// loading its icons.
func LoadTheme(path string) (*fbtext.Theme, error) {
	var t Theme
	if err := decodeFile(path, &t); err != nil {
		return nil, err
	}
	return t.Build(filepath.Dir(path))
}

// Build returns the fbtext theme, resolving icon paths against dir.
func (t *Theme) Build(dir string) (*fbtext.Theme, error) {
	th := fbtext.DefaultTheme()
	for _, c := range []struct {
		src *fbtext.Color
		dst *fbtext.Color
	}{
		{t.Colors.Text, &th.TextColor},
		{t.Colors.Background, &th.BackgroundColor},
		{t.Colors.Separator, &th.SeparatorColor},
		{t.Colors.Selected, &th.SelectedColor},
		{t.Colors.Tooltip, &th.TooltipColor},
	} {
		if c.src != nil {
			*c.dst = *c.src
		}
	}

	for name, path := range t.Icons {
		icon, ok := iconByName(name)
		if !ok {
			return nil, errors.Errorf("config: unknown icon %q", name)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		pix, err := LoadIcon(path)
		if err != nil {
			return nil, err
		}
		th.Icons[icon] = pix
	}
	return th, nil
}

func iconByName(name string) (fbtext.Icon, bool) {
	for i := range fbtext.IconCount {
		if strings.EqualFold(i.String(), name) {
			return i, true
		}
	}
	return 0, false
}
