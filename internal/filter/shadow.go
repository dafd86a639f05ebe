package filter

import (
	"image"

	"github.com/gogpu/gg"
)

// DropShadowFilter paints a soft shadow of a source silhouette onto a
// destination pixmap. The source's alpha channel is extracted, offset,
// blurred, tinted with Color and composited source-over onto dst.
type DropShadowFilter struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// BlurRadius is the shadow blur radius in pixels.
	BlurRadius float64

	// Color is the straight shadow tint; its alpha scales the shadow opacity.
	Color gg.RGBA
}

// NewDropShadowFilter creates a new drop shadow filter.
func NewDropShadowFilter(offsetX, offsetY, blurRadius float64, color gg.RGBA) *DropShadowFilter {
	return &DropShadowFilter{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlurRadius: blurRadius,
		Color:      color,
	}
}

// Apply composites the shadow of src onto dst within bounds.
// Only dst is modified.
func (f *DropShadowFilter) Apply(src, dst *gg.Pixmap, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}

	r := bounds.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	width := r.Dx()
	height := r.Dy()

	alpha := make([]float32, width*height)
	extractAlpha(src, alpha, r, int(f.OffsetX), int(f.OffsetY))

	if f.BlurRadius > 0 {
		blurAlphaChannel(alpha, width, height, f.BlurRadius)
	}

	data := dst.Data()
	stride := dst.Width() * 4
	base := float32(f.Color.A)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := alpha[y*width+x] * base
			if a <= 0 {
				continue
			}
			sa := float64(a)
			blendOver(data, (r.Min.Y+y)*stride+(r.Min.X+x)*4, f.Color.R*sa, f.Color.G*sa, f.Color.B*sa, sa)
		}
	}
}

// extractAlpha copies the alpha channel of src into alpha (0..1) for region r.
// The shadow is drawn offset from the source, so the offset is subtracted.
func extractAlpha(src *gg.Pixmap, alpha []float32, r image.Rectangle, offsetX, offsetY int) {
	srcWidth := src.Width()
	srcHeight := src.Height()
	data := src.Data()
	width := r.Dx()

	for y := 0; y < r.Dy(); y++ {
		sy := r.Min.Y + y - offsetY
		for x := 0; x < width; x++ {
			sx := r.Min.X + x - offsetX
			if sx < 0 || sx >= srcWidth || sy < 0 || sy >= srcHeight {
				continue
			}
			alpha[y*width+x] = float32(data[(sy*srcWidth+sx)*4+3]) / 255
		}
	}
}

// blurAlphaChannel applies Gaussian blur to a single-channel buffer in place.
func blurAlphaChannel(buf []float32, width, height int, radius float64) {
	kernel := CachedGaussianKernel(radius)
	half := len(kernel) / 2
	temp := make([]float32, len(buf))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				sum += buf[y*width+kx] * weight
			}
			temp[y*width+x] = sum
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				sum += temp[ky*width+x] * weight
			}
			buf[y*width+x] = sum
		}
	}
}
