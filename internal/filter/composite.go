package filter

import (
	"image"

	"github.com/gogpu/gg"
)

// Over composites src onto dst with src's origin placed at (dx, dy).
// Both pixmaps hold premultiplied RGBA; the result is source-over.
func Over(dst, src *gg.Pixmap, dx, dy int) {
	if src == nil || dst == nil {
		return
	}

	r := src.Bounds().Add(image.Pt(dx, dy)).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}

	sd, dd := src.Data(), dst.Data()
	ss, ds := src.Width()*4, dst.Width()*4

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := (y-dy)*ss + (x-dx)*4
			if sd[si+3] == 0 {
				continue
			}
			blendOver(dd, y*ds+x*4,
				float64(sd[si+0])/255,
				float64(sd[si+1])/255,
				float64(sd[si+2])/255,
				float64(sd[si+3])/255)
		}
	}
}

// Mix moves every pixel of dst toward c, weighted by the alpha of mask at
// the same position. A mask alpha of 255 yields c, 0 leaves dst untouched.
// c is a straight color.
func Mix(dst *gg.Pixmap, c gg.RGBA, mask *gg.Pixmap) {
	if dst == nil || mask == nil {
		return
	}

	r := dst.Bounds().Intersect(mask.Bounds())
	dd, md := dst.Data(), mask.Data()
	ds, ms := dst.Width()*4, mask.Width()*4
	target := [4]float64{c.R * c.A * 255, c.G * c.A * 255, c.B * c.A * 255, c.A * 255}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t := float64(md[y*ms+x*4+3]) / 255
			if t == 0 {
				continue
			}
			i := y*ds + x*4
			for ch := 0; ch < 4; ch++ {
				v := float64(dd[i+ch])
				dd[i+ch] = clampUint8(float32(v + (target[ch]-v)*t))
			}
		}
	}
}

// ReplaceAlpha sets the alpha of dst to the alpha of mask, keeping each
// pixel's straight color. Pixels of dst that are fully transparent stay so.
func ReplaceAlpha(dst, mask *gg.Pixmap) {
	if dst == nil || mask == nil {
		return
	}

	r := dst.Bounds().Intersect(mask.Bounds())
	dd, md := dst.Data(), mask.Data()
	ds, ms := dst.Width()*4, mask.Width()*4

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*ds + x*4
			old, next := float32(dd[i+3]), md[y*ms+x*4+3]
			if old == 0 || next == 0 {
				dd[i+0], dd[i+1], dd[i+2], dd[i+3] = 0, 0, 0, 0
				continue
			}
			scale := float32(next) / old
			dd[i+0] = min(clampUint8(float32(dd[i+0])*scale), next)
			dd[i+1] = min(clampUint8(float32(dd[i+1])*scale), next)
			dd[i+2] = min(clampUint8(float32(dd[i+2])*scale), next)
			dd[i+3] = next
		}
	}
}

// blendOver composites a premultiplied color (components 0..1) onto the
// premultiplied pixel at byte offset i of data.
func blendOver(data []uint8, i int, r, g, b, a float64) {
	inv := 1 - a
	data[i+0] = uint8(clamp255(r*255+float64(data[i+0])*inv) + 0.5)
	data[i+1] = uint8(clamp255(g*255+float64(data[i+1])*inv) + 0.5)
	data[i+2] = uint8(clamp255(b*255+float64(data[i+2])*inv) + 0.5)
	data[i+3] = uint8(clamp255(a*255+float64(data[i+3])*inv) + 0.5)
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
