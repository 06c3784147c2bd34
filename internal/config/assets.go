package config

import (
	"bytes"
	stdimage "image"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
	"github.com/saintfish/chardet"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ffnt/fbtext"
	"github.com/ffnt/fbtext/internal/image"
)

// ErrAsset is returned for asset files that have the wrong size or type.
var ErrAsset = errors.New("config: unusable asset")

// LoadIcon reads a button icon. PNG and JPEG files are scaled to the icon
// size; any other file must be a raw 25x25 ABGR32 image.
func LoadIcon(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: icon")
	}
	if !filetype.IsImage(data) {
		if len(data) != fbtext.IconBytes {
			return nil, errors.Wrapf(ErrAsset, "icon %s has %d bytes, want %d", path, len(data), fbtext.IconBytes)
		}
		return data, nil
	}

	src, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config: icon %s", path)
	}
	var scaled stdimage.Image = src
	if b := src.Bounds(); b.Dx() != fbtext.IconSize || b.Dy() != fbtext.IconSize {
		dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, fbtext.IconSize, fbtext.IconSize))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		scaled = dst
	}
	img, err := image.FromStdImage(scaled, fbtext.IconFormat)
	if err != nil {
		return nil, err
	}
	return img.Pix, nil
}

// LoadImage reads an image for drawing. PNG and JPEG files are decoded and
// converted to format f. Other files are taken as raw pixels in format f
// and need width and height.
func LoadImage(path string, width, height int, f fbtext.ImageFormat) (fbtext.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fbtext.Image{}, errors.Wrap(err, "config: image")
	}
	if kind, _ := filetype.Image(data); kind != filetype.Unknown {
		img, err := image.Decode(bytes.NewReader(data), f)
		return img, errors.Wrapf(err, "config: %s image %s", kind.Extension, path)
	}
	if width <= 0 || height <= 0 {
		return fbtext.Image{}, errors.Wrapf(ErrAsset, "raw image %s needs a width and height", path)
	}
	return fbtext.NewImage(data, width, height, f)
}

// ReadText reads a text file and returns it as UTF-8. Files that are not
// valid UTF-8 have their charset detected and are transcoded.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "config: text")
	}
	return DecodeText(data)
}

// DecodeText returns data as UTF-8, detecting its charset if it is not
// UTF-8 already.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	guess, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", errors.Wrap(err, "config: detect charset")
	}
	enc, err := htmlindex.Get(guess.Charset)
	if err != nil {
		return "", errors.Wrapf(err, "config: charset %s", guess.Charset)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, "config: transcode %s", guess.Charset)
	}
	return string(out), nil
}
