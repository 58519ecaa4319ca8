package lottie

import (
	"image/color"
)

var (
	Transparent = color.RGBA{0, 0, 0, 0}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
)

// Hex parses a CSS hexadecimal color such as #ff0000 or F00 into a color with components in [0,1]. Invalid input returns opaque black.
func Hex(s string) Vec4 {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]float64, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if '0' <= c && c <= '9' {
			h[i] = float64(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = float64(10 + c - 'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = float64(10 + c - 'A')
		} else {
			return Vec4{0.0, 0.0, 0.0, 1.0}
		}
	}
	switch len(s) {
	case 3:
		return Vec4{h[0] * 17.0 / 255.0, h[1] * 17.0 / 255.0, h[2] * 17.0 / 255.0, 1.0}
	case 4:
		return Vec4{h[0] * 17.0 / 255.0, h[1] * 17.0 / 255.0, h[2] * 17.0 / 255.0, h[3] * 17.0 / 255.0}
	case 6:
		return Vec4{(h[0]*16 + h[1]) / 255.0, (h[2]*16 + h[3]) / 255.0, (h[4]*16 + h[5]) / 255.0, 1.0}
	case 8:
		return Vec4{(h[0]*16 + h[1]) / 255.0, (h[2]*16 + h[3]) / 255.0, (h[4]*16 + h[5]) / 255.0, (h[6]*16 + h[7]) / 255.0}
	}
	return Vec4{0.0, 0.0, 0.0, 1.0}
}
