package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// colorComponents is the number of channels in the hub's colour string.
const colorComponents = 4

// colorChannelMax is the maximum per-channel value.
const colorChannelMax = 255

// HSV is a hue/saturation/value triple: H in degrees [0,360), S and V in
// percent [0,100].
type HSV struct {
	H float64
	S float64
	V float64
}

// ParseRGBW parses the hub's comma-separated "R,G,B,W" colour string.
//
// Returns:
//   - r, g, b, w: Channel values as reported (0-255)
//   - error: ErrBadColor if the string does not have four numeric parts
func ParseRGBW(s string) (r, g, b, w float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != colorComponents {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q has %d components", ErrBadColor, s, len(parts))
	}

	vals := make([]float64, colorComponents)
	for i, part := range parts {
		v, parseErr := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if parseErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("%w: %q component %d", ErrBadColor, s, i)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// RGBWToHSV converts an RGBW colour to HSV.
//
// The conversion is the standard RGB→HSV formula with one extension for
// RGBW lights: the white channel can raise V above what R/G/B alone imply
// (V = max(max(R,G,B), W) / 255).
func RGBWToHSV(r, g, b, w float64) HSV {
	maxC := max3(r, g, b)
	minC := min3(r, g, b)
	d := maxC - minC

	var s float64
	if maxC > 0 {
		s = d / maxC
	}

	v := maxC
	if w > v {
		v = w
	}
	v /= colorChannelMax

	var h float64
	if maxC != minC {
		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default: // blue dominant
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSV{
		H: h * 360,
		S: s * 100,
		V: v * 100,
	}
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
