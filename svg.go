package favicon

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Vector ring and outline, in ReferenceSize units. The vector icon is drawn
// for large displays, so the ring is thinner and wider than the raster one.
const (
	svgRingRadius   = 112
	svgRingWidth    = 14
	svgRingOpacity  = 0.85
	svgOutlineWidth = 3
)

// WriteSVG writes the full-color vector favicon (ring, cap and stem) to w.
func (r *Renderer) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startview(ReferenceSize, ReferenceSize, 0, 0, ReferenceSize, ReferenceSize)

	const c = ReferenceSize / 2
	canvas.Circle(c, c, svgRingRadius, fmt.Sprintf(
		`fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" opacity="%g"`,
		hexColor(r.Palette.Ring), svgRingWidth, svgRingOpacity))

	canvas.Group(fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%d"`,
		hexColor(r.Palette.Fill), hexColor(r.Palette.Outline), svgOutlineWidth))
	r.writeShapes(canvas)
	canvas.Gend()

	canvas.End()
	return bw.Flush()
}

// WritePinnedTabSVG writes the monochrome Safari pinned-tab mask to w.
// Safari only reads the shape, so cap and stem are plain black.
func (r *Renderer) WritePinnedTabSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startview(ReferenceSize, ReferenceSize, 0, 0, ReferenceSize, ReferenceSize)

	canvas.Group(`fill="#000"`)
	r.writeShapes(canvas)
	canvas.Gend()

	canvas.End()
	return bw.Flush()
}

// writeShapes emits cap and stem in reference coordinates.
func (r *Renderer) writeShapes(canvas *svg.SVG) {
	l := r.Glyph.layout(ReferenceSize)
	canvas.Ellipse(round(l.cap.cx), round(l.cap.cy), round(l.cap.rx), round(l.cap.ry))
	canvas.Roundrect(round(l.stem.x), round(l.stem.y), round(l.stem.w), round(l.stem.h),
		round(l.stem.r), round(l.stem.r))
}

func round(v float64) int {
	return int(math.Round(v))
}
