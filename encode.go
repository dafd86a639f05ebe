package favicon

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// RGBA returns an image sharing pm's pixels. gg pixmaps hold premultiplied
// RGBA, which is exactly the layout of image.RGBA.
func RGBA(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{Pix: pm.Data(), Stride: pm.Width() * 4, Rect: pm.Bounds()}
}

// NRGBA copies pm into a new straight-alpha image.
func NRGBA(pm *gg.Pixmap) *image.NRGBA {
	img := image.NewNRGBA(pm.Bounds())
	src := pm.Data()
	for i := 0; i+3 < len(src); i += 4 {
		c := unpremultiply(src[i], src[i+1], src[i+2], src[i+3])
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// unpremultiply converts one premultiplied pixel to straight alpha,
// rounding to nearest.
func unpremultiply(r, g, b, a uint8) color.NRGBA {
	switch a {
	case 0:
		return color.NRGBA{}
	case 255:
		return color.NRGBA{R: r, G: g, B: b, A: a}
	}
	un := func(v uint8) uint8 {
		x := (uint32(v)*255 + uint32(a)/2) / uint32(a)
		return uint8(min(x, 255))
	}
	return color.NRGBA{R: un(r), G: un(g), B: un(b), A: a}
}

// EncodePNG writes pm to w as a straight-alpha PNG.
func EncodePNG(w io.Writer, pm *gg.Pixmap) error {
	return png.Encode(w, NRGBA(pm))
}

// resample scales src to a size×size image with Catmull-Rom filtering.
// Filtering runs on premultiplied pixels so transparent neighbours do not
// darken soft edges.
func resample(src image.Image, size int) *image.NRGBA {
	r := image.Rect(0, 0, size, size)
	scaled := image.NewRGBA(r)
	draw.CatmullRom.Scale(scaled, r, src, src.Bounds(), draw.Src, nil)

	dst := image.NewNRGBA(r)
	draw.Draw(dst, r, scaled, image.Point{}, draw.Src)
	return dst
}
