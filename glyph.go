package favicon

import (
	"math"

	"github.com/gogpu/gg"
)

// ReferenceSize is the edge of the frame Glyph coordinates are expressed in.
const ReferenceSize = 256.0

// Glyph describes the mushroom in a 256-unit frame centered on (128, 128).
// Every value is scaled by size/ReferenceSize when drawn.
type Glyph struct {
	CapWidth  float64
	CapHeight float64
	CapLift   float64 // cap center sits this far above the frame center

	StemWidth  float64
	StemHeight float64
	StemDrop   float64 // stem top sits this far above the frame center
	StemRadius float64

	EyeRadius float64
	EyeSpread float64 // horizontal distance of each eye from center
	EyeDrop   float64 // eyes sit this far below the frame center
}

// Mushroom is the site glyph.
var Mushroom = Glyph{
	CapWidth:   184,
	CapHeight:  136,
	CapLift:    38,
	StemWidth:  72,
	StemHeight: 96,
	StemDrop:   6,
	StemRadius: 18,
	EyeRadius:  4,
	EyeSpread:  16,
	EyeDrop:    22,
}

// ellipse is an axis-aligned ellipse given by center and radii.
type ellipse struct{ cx, cy, rx, ry float64 }

// roundRect is a rectangle with uniformly rounded corners.
type roundRect struct{ x, y, w, h, r float64 }

// layout is a Glyph resolved to pixel coordinates for one canvas size.
type layout struct {
	cap  ellipse
	stem roundRect
	eyes [2]ellipse
}

func (g Glyph) layout(size int) layout {
	s := float64(size) / ReferenceSize
	cx := float64(size) / 2
	cy := float64(size) / 2

	var l layout
	l.cap = ellipse{cx: cx, cy: cy - g.CapLift*s, rx: g.CapWidth * s / 2, ry: g.CapHeight * s / 2}
	l.stem = roundRect{
		x: cx - g.StemWidth*s/2,
		y: cy - g.StemDrop*s,
		w: g.StemWidth * s,
		h: g.StemHeight * s,
		// whole pixels keep tiny corners crisp
		r: math.Floor(g.StemRadius * s),
	}
	er := g.EyeRadius * s
	for i, dir := range [2]float64{-1, 1} {
		l.eyes[i] = ellipse{cx: cx + dir*g.EyeSpread*s, cy: cy + g.EyeDrop*s, rx: er, ry: er}
	}
	return l
}

// draw paints the glyph onto dc. With silhouette set, the shapes are filled
// in the fill color only, ignoring outline and eyes.
func (g Glyph) draw(dc *gg.Context, size int, d Detail, p Palette, silhouette bool) error {
	l := g.layout(size)
	if silhouette {
		d = Detail{}
	}

	err := paintShape(dc, d.Outline, p, func() {
		dc.DrawEllipse(l.cap.cx, l.cap.cy, l.cap.rx, l.cap.ry)
	})
	if err != nil {
		return err
	}

	err = paintShape(dc, d.Outline, p, func() {
		dc.DrawRoundedRectangle(l.stem.x, l.stem.y, l.stem.w, l.stem.h, l.stem.r)
	})
	if err != nil {
		return err
	}

	if !d.Eyes {
		return nil
	}
	setColor(dc, p.Eyes)
	for _, e := range l.eyes {
		dc.DrawEllipse(e.cx, e.cy, e.rx, e.ry)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// paintShape builds a path with shape, strokes it in the outline color when
// outline > 0 and fills it. The stroke is centered on the edge and twice
// the outline width, so exactly outline pixels remain visible outside the fill.
func paintShape(dc *gg.Context, outline int, p Palette, shape func()) error {
	shape()
	if outline > 0 {
		setColor(dc, p.Outline)
		dc.SetLineWidth(float64(2 * outline))
		if err := dc.StrokePreserve(); err != nil {
			return err
		}
	}
	setColor(dc, p.Fill)
	return dc.Fill()
}
