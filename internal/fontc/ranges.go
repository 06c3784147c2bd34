package fontc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/rangetable"
)

// ErrRange is returned by ParseRanges for malformed range lists.
var ErrRange = errors.New("fontc: malformed codepoint range")

// namedCharsets are the charsets ParseRanges accepts by name.
var namedCharsets = map[string]*unicode.RangeTable{
	"default":  DefaultCharset,
	"ascii":    rangetable.New(asciiRunes()...),
	"latin":    unicode.Latin,
	"greek":    unicode.Greek,
	"cyrillic": unicode.Cyrillic,
	"hiragana": unicode.Hiragana,
	"katakana": unicode.Katakana,
	"han":      unicode.Han,
	"hangul":   unicode.Hangul,
}

func asciiRunes() []rune {
	rs := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		rs = append(rs, r)
	}
	return rs
}

// ParseRanges parses a comma separated list of charset names and hex
// codepoint ranges, such as "ascii,00A0-00FF,20AC", into a range table.
func ParseRanges(s string) (*unicode.RangeTable, error) {
	var tables []*unicode.RangeTable
	var single []rune
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if t, ok := namedCharsets[strings.ToLower(part)]; ok {
			tables = append(tables, t)
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		first, err := parseCodepoint(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = parseCodepoint(hi); err != nil {
				return nil, err
			}
		}
		if last < first {
			return nil, errors.Wrapf(ErrRange, "%q is reversed", part)
		}
		for r := first; r <= last; r++ {
			single = append(single, r)
		}
	}
	if len(single) > 0 {
		tables = append(tables, rangetable.New(single...))
	}
	if len(tables) == 0 {
		return nil, errors.Wrapf(ErrRange, "%q selects nothing", s)
	}
	return rangetable.Merge(tables...), nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "U+"), "u+")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, errors.Wrapf(ErrRange, "codepoint %q", s)
	}
	return rune(v), nil
}
