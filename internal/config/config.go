// Package config loads the files the command line tools work from: themes,
// scenes, text and image assets.
//
// Theme and scene files are TOML. They are decoded into a generic map
// first and then into typed structs, with decode hooks turning strings
// like "#2d2d2dff" into colors and "center" into an alignment.
package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"github.com/ffnt/fbtext"
)

// Errors returned while decoding configuration.
var (
	ErrColor = errors.New("config: invalid color")
	ErrAlign = errors.New("config: invalid alignment")
)

var (
	colorType = reflect.TypeFor[fbtext.Color]()
	alignType = reflect.TypeFor[fbtext.Align]()
)

// colorHook decodes hex strings into colors.
func colorHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != colorType {
		return data, nil
	}
	c, ok := fbtext.ParseHex(data.(string))
	if !ok {
		return nil, errors.Wrapf(ErrColor, "%q", data)
	}
	return c, nil
}

// alignHook decodes "left", "center" and "right".
func alignHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != alignType {
		return data, nil
	}
	switch strings.ToLower(data.(string)) {
	case "", "left":
		return fbtext.AlignLeft, nil
	case "center":
		return fbtext.AlignCenter, nil
	case "right":
		return fbtext.AlignRight, nil
	}
	return nil, errors.Wrapf(ErrAlign, "%q", data)
}

// decode parses TOML text into out.
func decode(text string, out any) error {
	var raw map[string]any
	if _, err := toml.Decode(text, &raw); err != nil {
		return errors.Wrap(err, "config: toml")
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			colorHook,
			alignHook,
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.Wrap(err, "config: decoder")
	}
	return errors.Wrap(dec.Decode(raw), "config: decode")
}

// decodeFile reads and decodes a TOML file.
func decodeFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "config: read")
	}
	return errors.Wrapf(decode(string(b), out), "config: %s", path)
}
