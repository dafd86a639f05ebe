package favicon

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// Palette holds the colors used to paint the glyph and its decorations.
type Palette struct {
	Fill          color.NRGBA // mushroom body
	Outline       color.NRGBA // rim drawn at small sizes, helps on light tab bars
	Eyes          color.NRGBA
	Ring          color.NRGBA // accent ring, slightly translucent
	Card          color.NRGBA // apple-touch-icon background
	CardHighlight color.NRGBA // vignette lift on the card
}

// DefaultPalette is the site's teal-on-night palette.
var DefaultPalette = Palette{
	Fill:          color.NRGBA{R: 233, G: 238, B: 242, A: 255},
	Outline:       color.NRGBA{R: 7, G: 10, B: 19, A: 255},
	Eyes:          color.NRGBA{R: 15, G: 18, B: 24, A: 255},
	Ring:          color.NRGBA{R: 20, G: 255, B: 236, A: 230},
	Card:          color.NRGBA{R: 11, G: 14, B: 18, A: 255},
	CardHighlight: color.NRGBA{R: 16, G: 22, B: 30, A: 255},
}

// toRGBA converts a straight-alpha color to gg's float representation.
func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

// setColor sets the brush without going through color.Color, whose RGBA
// method would premultiply translucent colors.
func setColor(dc *gg.Context, c color.NRGBA) {
	rgba := toRGBA(c)
	dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
}

// hexColor formats c as #rrggbb, ignoring alpha.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
