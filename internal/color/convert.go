package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for anything other than six hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB is a 24-bit color split into channels. Channels are expected in [0,255]
// but are not clamped.
type RGB struct {
	R int
	G int
	B int
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex strictly parses a six digit hex color with or without a leading "#".
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w %q: expected 6 hex digits", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q", ErrInvalidHex, hex)
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// IsHex reports whether hex is a valid six digit color.
func IsHex(hex string) bool {
	_, err := ParseHex(hex)
	return err == nil
}

// HexToRGBA converts a hex color into a CSS rgba() value. The first "#" is
// stripped. Each channel is read from its two-character slot; a slot without a
// leading hex digit (for example because the input is too short) renders NaN.
func HexToRGBA(hex string, opacity float64) string {
	r, g, b := laxChannels(hex)
	return fmt.Sprintf("rgba(%s,%s,%s,%s)", FormatNumber(r), FormatNumber(g), FormatNumber(b), FormatNumber(opacity))
}

// RGBToHex returns the lowercase #rrggbb form of the channels. Out of range
// channels are not clamped and yield a malformed string.
func RGBToHex(r, g, b int) string {
	v := int64(1)<<24 + int64(r)<<16 + int64(g)<<8 + int64(b)
	s := strconv.FormatInt(v, 16)
	if len(s) == 0 {
		return "#"
	}
	return "#" + s[1:]
}

// laxChannels reads three channels the forgiving way the editor preview does:
// unparsable slots become NaN instead of failing the whole color.
func laxChannels(hex string) (float64, float64, float64) {
	digits := strings.Replace(hex, "#", "", 1)
	return laxPair(digits, 0), laxPair(digits, 2), laxPair(digits, 4)
}

func laxPair(s string, start int) float64 {
	if start >= len(s) {
		return math.NaN()
	}
	end := min(start+2, len(s))
	pair := s[start:end]

	n := 0
	for n < len(pair) && isHexDigit(pair[n]) {
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	v, err := strconv.ParseUint(pair[:n], 16, 8)
	if err != nil {
		return math.NaN()
	}
	return float64(v)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
