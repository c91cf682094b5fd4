// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a 24-bit colour, 0xRRGGBB.
type RGB uint32

// RGBA expands the colour with the given alpha.
func (c RGB) RGBA(a uint8) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: a}
}

// String formats the colour as #RRGGBB.
func (c RGB) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// UnmarshalJSON accepts "#RRGGBB", "0xRRGGBB" or a plain number.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var n uint32
	if err := json.Unmarshal(data, &n); err == nil {
		*c = RGB(n & 0xFFFFFF)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a string or number: %w", err)
	}
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return fmt.Errorf("invalid color %q", s)
	}
	*c = RGB(v)
	return nil
}

// Style is a named visual preset of the particle field.
type Style struct {
	Name          string  `json:"name"`
	PointCount    int     `json:"count"`
	PointSize     float64 `json:"size"`
	Color         RGB     `json:"color"`
	Spread        float64 `json:"spread"`         // edge length of the cube points are placed in
	RotationSpeed float64 `json:"rotation_speed"` // radians per frame
}

// UnknownStyleError is returned when a style name is not registered.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q", e.Name)
}
