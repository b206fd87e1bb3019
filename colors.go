package shapes2d

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math/rand/v2"

	"golang.org/x/image/colornames"
)

// Transparent disables the stroke or fill it is assigned to.
var Transparent = color.RGBA{}

// Highlight is the default stroke of primitives under the pointer.
var Highlight = colornames.Red

// IsTransparent returns true if c is fully transparent and hence not drawn.
func IsTransparent(c color.RGBA) bool {
	return c.A == 0
}

// RGB returns an opaque color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] (non alpha premultiplied) and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		uint8(a * float64(r)),
		uint8(a * float64(g)),
		uint8(a * float64(b)),
		uint8(a * 255.0),
	}
}

// Darken decreases the luminosity of c by amount ∈ [0,1].
func Darken(c color.RGBA, amount float64) color.RGBA {
	f := 1.0 - amount
	return color.RGBA{
		uint8(float64(c.R)*f + 0.5),
		uint8(float64(c.G)*f + 0.5),
		uint8(float64(c.B)*f + 0.5),
		c.A,
	}
}

// Lighten increases the luminosity of c by amount ∈ [0,1], moving each channel towards the alpha.
func Lighten(c color.RGBA, amount float64) color.RGBA {
	a := float64(c.A)
	return color.RGBA{
		uint8(float64(c.R) + amount*(a-float64(c.R)) + 0.5),
		uint8(float64(c.G) + amount*(a-float64(c.G)) + 0.5),
		uint8(float64(c.B) + amount*(a-float64(c.B)) + 0.5),
		c.A,
	}
}

// ColorFunc returns a new color on every call.
type ColorFunc func() color.RGBA

// Shades returns a ColorFunc that darkens base by a random amount in [darkenMin,darkenMax) and then lightens it by a random amount in [lightenMin,lightenMax). A nil rng uses the global source.
func Shades(rng *rand.Rand, base color.RGBA, darkenMin, darkenMax, lightenMin, lightenMax float64) ColorFunc {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}
	return func() color.RGBA {
		c := Darken(base, darkenMin+float()*(darkenMax-darkenMin))
		return Lighten(c, lightenMin+float()*(lightenMax-lightenMin))
	}
}

// GroundShades is the palette of the grid painter: SaddleBrown darkened by up to 75% and lightened by up to 25%.
func GroundShades(rng *rand.Rand) ColorFunc {
	return Shades(rng, colornames.Saddlebrown, 0.0, 0.75, 0.0, 0.25)
}

// Solid returns a ColorFunc that always returns c.
func Solid(c color.RGBA) ColorFunc {
	return func() color.RGBA {
		return c
	}
}

// CSSColor formats the alpha premultiplied color c as a CSS color.
func CSSColor(c color.RGBA) string {
	if c.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{c.R, c.G, c.B})
		if buf[1] == buf[2] && buf[3] == buf[4] && buf[5] == buf[6] {
			return string([]byte{'#', buf[1], buf[3], buf[5]})
		}
		return string(buf)
	} else if c.A == 0 {
		return "rgba(0,0,0,0)"
	}
	a := float64(c.A) / 255.0
	r := uint8(float64(c.R)/a + 0.5)
	g := uint8(float64(c.G)/a + 0.5)
	b := uint8(float64(c.B)/a + 0.5)
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", r, g, b, ftos(a))
}
