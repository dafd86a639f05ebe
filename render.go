package favicon

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/mushroomlab/favicon/internal/filter"
)

// ErrInvalidSize is returned when a canvas size is not positive.
var ErrInvalidSize = errors.New("favicon: size must be positive")

// Ring and shadow proportions, as fractions of the canvas size.
const (
	RingInset    = 0.09
	RingWidth    = 0.08
	RingMinWidth = 2
	ringBlur     = 0.004

	shadowBlur    = 0.03
	ShadowOpacity = 0.22
)

// Renderer draws a Glyph with a Palette. The zero value is not usable;
// use NewRenderer.
type Renderer struct {
	Glyph   Glyph
	Palette Palette
}

// NewRenderer returns a renderer for the site mushroom in the default palette.
func NewRenderer() *Renderer {
	return &Renderer{Glyph: Mushroom, Palette: DefaultPalette}
}

var defaultRenderer = NewRenderer()

// Render draws the site mushroom with the default renderer.
func Render(size int, ring bool) (*gg.Pixmap, error) {
	return defaultRenderer.Render(size, ring)
}

// Render returns a size×size premultiplied pixmap holding the glyph on a
// transparent background, with the decorative ring behind it when ring is
// set. The detail level follows DetailFor(size).
//
// Render is a pure function of its inputs: equal arguments yield
// byte-identical pixmaps.
func (r *Renderer) Render(size int, ring bool) (*gg.Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	pm := gg.NewPixmap(size, size)
	ringRadius := int(float64(size) * ringBlur)
	shadowRadius := max(1, int(float64(size)*shadowBlur))
	Logger().Debug("render", "size", size, "ring", ring,
		"ring_blur", ringRadius, "shadow_blur", shadowRadius)

	if ring {
		if err := r.drawRing(pm); err != nil {
			return nil, fmt.Errorf("draw ring: %w", err)
		}
		filter.Blur(pm, float64(ringRadius))
	}

	if err := r.drawShadow(pm, shadowRadius); err != nil {
		return nil, fmt.Errorf("draw shadow: %w", err)
	}

	dc := gg.NewContext(size, size, gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()

	if err := r.Glyph.draw(dc, size, DetailFor(size), r.Palette, false); err != nil {
		return nil, fmt.Errorf("draw glyph: %w", err)
	}
	return pm, nil
}

// drawRing strokes the accent ring so that it lies entirely inside the box
// inset by RingInset on every side.
func (r *Renderer) drawRing(pm *gg.Pixmap) error {
	size := pm.Width()
	pad := int(float64(size) * RingInset)
	width := max(RingMinWidth, int(float64(size)*RingWidth))

	outer := float64(size-2*pad) / 2
	radius := math.Max(outer-float64(width)/2, 0)

	dc := gg.NewContext(size, size, gg.WithPixmap(pm))
	defer func() { _ = dc.Close() }()

	setColor(dc, r.Palette.Ring)
	dc.SetLineWidth(float64(width))
	dc.DrawCircle(float64(size)/2, float64(size)/2, radius)
	return dc.Stroke()
}

// drawShadow paints a copy of the glyph silhouette onto pm, blurred by
// radius and dimmed.
func (r *Renderer) drawShadow(pm *gg.Pixmap, radius int) error {
	size := pm.Width()
	silhouette := gg.NewPixmap(size, size)

	dc := gg.NewContext(size, size, gg.WithPixmap(silhouette))
	defer func() { _ = dc.Close() }()

	if err := r.Glyph.draw(dc, size, Detail{}, r.Palette, true); err != nil {
		return err
	}

	// Dim every channel, matching a shadow cast by the body color itself.
	fill := toRGBA(r.Palette.Fill)
	tint := gg.RGBA2(fill.R*ShadowOpacity, fill.G*ShadowOpacity, fill.B*ShadowOpacity, ShadowOpacity)
	filter.NewDropShadowFilter(0, 0, float64(radius), tint).Apply(silhouette, pm, pm.Bounds())
	return nil
}
