package fbtext

import (
	"context"
	"log/slog"

	"github.com/ffnt/fbtext/ffnt"
)

// Font is a parsed fFNT bitmap font. It is immutable and may be shared by
// any number of contexts.
type Font = ffnt.Font

// LoadFont reads and parses an fFNT file.
func LoadFont(path string) (*Font, error) {
	f, err := ffnt.Load(path)
	if err != nil {
		return nil, err
	}
	logFont(path, f)
	return f, nil
}

// ParseFont parses an fFNT blob held in memory. The slice is retained.
func ParseFont(data []byte) (*Font, error) {
	f, err := ffnt.Parse(data)
	if err != nil {
		return nil, err
	}
	logFont("", f)
	return f, nil
}

func logFont(path string, f *Font) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	present := 0
	for id := range f.PageCount() {
		if _, ok := f.Page(id); ok {
			present++
		}
	}
	l.Debug("font loaded",
		"path", path,
		"size", len(f.Bytes()),
		"pages", f.PageCount(),
		"present", present,
		"lineHeight", f.LineHeight(),
		"baseline", f.Baseline())
}
