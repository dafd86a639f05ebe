package filter

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
)

// BlurFilter applies separable Gaussian blur to a pixmap.
// The horizontal and vertical passes run independently, giving
// O(w*h*(rx+ry)) instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal blur radius (sigma) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius (sigma) in pixels.
	RadiusY float64
}

// NewBlurFilter creates a blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// NewBlurFilterXY creates a blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radiusX,
		RadiusY: radiusY,
	}
}

// Apply blurs the bounds region of src and writes it to dst.
// src and dst may be the same pixmap.
//
// Pixmaps hold premultiplied RGBA, so the channels are convolved as stored
// and fully transparent neighbours contribute no color.
func (f *BlurFilter) Apply(src, dst *gg.Pixmap, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}

	r := bounds.Intersect(src.Bounds()).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		if src != dst {
			copyPixmapRegion(src, dst, r)
		}
		return
	}

	width := r.Dx()
	height := r.Dy()

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	loadRegion(src, temp, r)

	if f.RadiusX > 0 {
		blurHorizontal(temp, width, height, CachedGaussianKernel(f.RadiusX))
	}
	if f.RadiusY > 0 {
		blurVertical(temp, width, height, CachedGaussianKernel(f.RadiusY))
	}

	storeRegion(temp, dst, r)
}

// Blur blurs the whole pixmap in place. A non-positive radius is a no-op.
func Blur(pm *gg.Pixmap, radius float64) {
	if radius <= 0 {
		return
	}
	NewBlurFilter(radius).Apply(pm, pm, pm.Bounds())
}

// blurHorizontal convolves each row of buf with kernel, clamping at the edges.
func blurHorizontal(buf []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	line := make([]float32, width*4)

	for y := 0; y < height; y++ {
		row := buf[y*width*4 : (y+1)*width*4]
		copy(line, row)

		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				i := kx * 4
				r += line[i+0] * weight
				g += line[i+1] * weight
				b += line[i+2] * weight
				a += line[i+3] * weight
			}
			i := x * 4
			row[i+0] = r
			row[i+1] = g
			row[i+2] = b
			row[i+3] = a
		}
	}
}

// blurVertical convolves each column of buf with kernel, clamping at the edges.
func blurVertical(buf []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	column := make([]float32, height*4)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			src := (y*width + x) * 4
			copy(column[y*4:y*4+4], buf[src:src+4])
		}

		for y := 0; y < height; y++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				i := ky * 4
				r += column[i+0] * weight
				g += column[i+1] * weight
				b += column[i+2] * weight
				a += column[i+3] * weight
			}
			i := (y*width + x) * 4
			buf[i+0] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = a
		}
	}
}

// loadRegion copies the region r of src into buf as floats.
func loadRegion(src *gg.Pixmap, buf []float32, r image.Rectangle) {
	data := src.Data()
	stride := src.Width() * 4
	width := r.Dx()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := y*stride + x*4
			ti := ((y-r.Min.Y)*width + (x - r.Min.X)) * 4
			buf[ti+0] = float32(data[si+0])
			buf[ti+1] = float32(data[si+1])
			buf[ti+2] = float32(data[si+2])
			buf[ti+3] = float32(data[si+3])
		}
	}
}

// storeRegion writes buf back into the region r of dst. Color channels are
// capped at alpha so the result stays valid premultiplied RGBA.
func storeRegion(buf []float32, dst *gg.Pixmap, r image.Rectangle) {
	data := dst.Data()
	stride := dst.Width() * 4
	width := r.Dx()

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ti := ((y-r.Min.Y)*width + (x - r.Min.X)) * 4
			di := y*stride + x*4

			a := clampUint8(buf[ti+3])
			data[di+0] = min(clampUint8(buf[ti+0]), a)
			data[di+1] = min(clampUint8(buf[ti+1]), a)
			data[di+2] = min(clampUint8(buf[ti+2]), a)
			data[di+3] = a
		}
	}
}

// copyPixmapRegion copies the pixels of r from src to dst.
func copyPixmapRegion(src, dst *gg.Pixmap, r image.Rectangle) {
	sd, dd := src.Data(), dst.Data()
	ss, ds := src.Width()*4, dst.Width()*4

	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(dd[y*ds+r.Min.X*4:y*ds+r.Max.X*4], sd[y*ss+r.Min.X*4:y*ss+r.Max.X*4])
	}
}

// floatBuffer wraps a slice for sync.Pool.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		// 512x512 RGBA covers the largest icon
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer returns a zeroed buffer of width*height*4 floats.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
