// Command ffntc compiles a TrueType or OpenType font into an fFNT bitmap
// font.
//
// Usage:
//
//	ffntc [-in font.ttf] [-size 20] [-chars default] [-hinting] -o out.ffnt
//
// Without -in the Go Regular font is compiled.
package main

import (
	"flag"
	"log/slog"
	"os"

	"golang.org/x/image/font"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/internal/fontc"
)

func main() {
	var (
		in      = flag.String("in", "", "input TrueType/OpenType font (default: Go Regular)")
		out     = flag.String("o", "font.ffnt", "output fFNT file")
		size    = flag.Float64("size", 20, "pixel size")
		chars   = flag.String("chars", "default", "charsets and hex ranges, e.g. ascii,00A0-00FF")
		hinting = flag.Bool("hinting", false, "hint outlines to the pixel grid")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fbtext.SetLogger(logger)

	if err := run(*in, *out, *size, *chars, *hinting, logger); err != nil {
		logger.Error("compile failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out string, size float64, chars string, hinting bool, logger *slog.Logger) error {
	data := fontc.DefaultFont
	if in != "" {
		var err error
		if data, err = os.ReadFile(in); err != nil {
			return err
		}
	}

	charset, err := fontc.ParseRanges(chars)
	if err != nil {
		return err
	}
	opts := fontc.Options{Size: size, Charset: charset}
	if hinting {
		opts.Hinting = font.HintingFull
	}

	blob, st, err := fontc.Compile(data, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, blob, 0o644); err != nil { //nolint:gosec // font files are not secret
		return err
	}

	logger.Info("font written",
		"path", out,
		"bytes", len(blob),
		"glyphs", st.Glyphs,
		"skipped", st.Skipped,
		"lineHeight", st.LineHeight,
		"baseline", st.Baseline)
	return nil
}
