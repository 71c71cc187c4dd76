package config

import (
	"encoding/hex"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// ParseHex parses an opaque RRGGBB color, with or without a leading '#'.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, errors.Errorf("invalid color %q: want RRGGBB", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
}
