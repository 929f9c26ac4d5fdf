package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := clamp(int(c.R)+dr, 0, 255)
	g := clamp(int(c.G)+dg, 0, 255)
	b := clamp(int(c.B)+db, 0, 255)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// HueRGB converts a hue angle in degrees to a fully saturated colour.
// Water particles recolour every tick from their drift heading, so this is
// on the render hot path; it is a plain HSL(h, 1, 0.5) unrolled.
func HueRGB(hue float64) RGB {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	x := 1 - math.Abs(math.Mod(h/60, 2)-1)
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = 1, x, 0
	case h < 120:
		r, g, b = x, 1, 0
	case h < 180:
		r, g, b = 0, 1, x
	case h < 240:
		r, g, b = 0, x, 1
	case h < 300:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return RGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
