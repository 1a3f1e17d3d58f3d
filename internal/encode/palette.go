package encode

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// ErrBadColor is returned for a color name outside the fixed palette.
var ErrBadColor = errors.New("unknown color")

// palette is the fixed set of named module colors.
var palette = map[string]color.RGBA{
	"black":     {0, 0, 0, 255},
	"white":     {255, 255, 255, 255},
	"red":       {255, 0, 0, 255},
	"green":     {0, 255, 0, 255},
	"blue":      {0, 0, 255, 255},
	"yellow":    {255, 255, 0, 255},
	"purple":    {128, 0, 128, 255},
	"orange":    {255, 165, 0, 255},
	"pink":      {255, 192, 203, 255},
	"cyan":      {0, 255, 255, 255},
	"navy":      {0, 0, 128, 255},
	"darkgreen": {0, 100, 0, 255},
}

// ParseColor resolves a palette color by name, case-insensitively.
func ParseColor(name string) (color.RGBA, error) {
	c, ok := palette[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q (available: %s)", ErrBadColor, name, strings.Join(ColorNames(), ", "))
	}
	return c, nil
}

// ColorNames lists the palette names in stable order, for usage text.
func ColorNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
