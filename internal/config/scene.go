package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/internal/image"
)

// Item kinds.
const (
	KindText      = "text"
	KindRect      = "rect"
	KindBlended   = "blended"
	KindShadow    = "shadow"
	KindImage     = "image"
	KindHighlight = "highlight"
)

// ErrScene is returned for scenes with invalid items.
var ErrScene = errors.New("config: invalid scene")

// Scene describes a screen for fbrender to draw.
//
//	font = "ui.ffnt"
//	theme = "dark.toml"
//	frames = 10
//
//	[[item]]
//	kind = "text"
//	x = 40
//	y = 40
//	text = "\u0001 Confirm"
//	color = "#ffffff"
//
// Items are drawn in file order. Paths are relative to the scene file.
type Scene struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Font   string `mapstructure:"font"`
	// FontSize compiles the built-in font at this size when Font is empty.
	FontSize float64 `mapstructure:"font_size"`
	Theme    string  `mapstructure:"theme"`
	Frames   int     `mapstructure:"frames"`
	Items    []Item  `mapstructure:"item"`
}

// Item is one drawing operation of a scene.
type Item struct {
	Kind  string        `mapstructure:"kind"`
	X     int           `mapstructure:"x"`
	Y     int           `mapstructure:"y"`
	W     int           `mapstructure:"w"`
	H     int           `mapstructure:"h"`
	Color *fbtext.Color `mapstructure:"color"`

	// Text items.
	Text     string       `mapstructure:"text"`
	TextFile string       `mapstructure:"text_file"`
	Align    fbtext.Align `mapstructure:"align"`
	MaxWidth int          `mapstructure:"max_width"`

	// Image items. Format names the layout of raw files and defaults to
	// RGB24. A size different from the file's is drawn scaled.
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
	Shadow bool   `mapstructure:"shadow"`
}

// ParseScene decodes scene TOML text. Relative paths are kept as they are.
func ParseScene(text string) (*Scene, error) {
	var s Scene
	if err := decode(text, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScene reads a scene file and resolves its relative paths.
func LoadScene(path string) (*Scene, error) {
	var s Scene
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	s.resolve(filepath.Dir(path))
	return &s, nil
}

func (s *Scene) validate() error {
	if s.Width == 0 && s.Height == 0 {
		s.Width, s.Height = fbtext.Width, fbtext.Height
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Wrapf(ErrScene, "size %dx%d", s.Width, s.Height)
	}
	if s.Frames <= 0 {
		s.Frames = 1
	}
	if s.FontSize <= 0 {
		s.FontSize = 20
	}

	for i := range s.Items {
		it := &s.Items[i]
		switch it.Kind {
		case KindText:
			if it.Text == "" && it.TextFile == "" {
				return errors.Wrapf(ErrScene, "item %d: text item without text", i)
			}
		case KindRect, KindBlended, KindShadow, KindHighlight:
			if it.W <= 0 || it.H <= 0 {
				return errors.Wrapf(ErrScene, "item %d: %s needs a size", i, it.Kind)
			}
		case KindImage:
			if it.Path == "" {
				return errors.Wrapf(ErrScene, "item %d: image without path", i)
			}
			if it.Format == "" {
				it.Format = "RGB24"
			}
			if _, ok := it.ImageFormat(); !ok {
				return errors.Wrapf(ErrScene, "item %d: unknown format %q", i, it.Format)
			}
		default:
			return errors.Wrapf(ErrScene, "item %d: unknown kind %q", i, it.Kind)
		}
	}
	return nil
}

func (s *Scene) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	s.Font = abs(s.Font)
	s.Theme = abs(s.Theme)
	for i := range s.Items {
		s.Items[i].Path = abs(s.Items[i].Path)
		s.Items[i].TextFile = abs(s.Items[i].TextFile)
	}
}

// ImageFormat returns the parsed Format of an image item.
func (it *Item) ImageFormat() (fbtext.ImageFormat, bool) {
	return image.ParseFormat(strings.ToUpper(it.Format))
}
