package favicon

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/mushroomlab/favicon/internal/filter"
)

// Card icon proportions, as fractions of the card size.
const (
	cardGlyphScale  = 0.70
	cardGlyphOffset = 0.15
	cardCorner      = 0.22
	vignetteOverlap = 0.20
	vignetteBlur    = 0.12
)

// RenderCard draws the site mushroom on a rounded card with the default renderer.
func RenderCard(size int) (*gg.Pixmap, error) {
	return defaultRenderer.RenderCard(size)
}

// RenderCard returns the iOS style icon: an opaque card with a soft
// vignette, the ringed glyph at 70% scale in the middle and rounded corners
// cut out of the alpha channel.
func (r *Renderer) RenderCard(size int) (*gg.Pixmap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	fs := float64(size)

	card := gg.NewPixmap(size, size)
	card.Clear(toRGBA(r.Palette.Card))

	vignette, err := fillMask(size, func(dc *gg.Context) {
		lo := -float64(int(fs * vignetteOverlap))
		hi := float64(int(fs * (1 + vignetteOverlap)))
		c := (lo + hi) / 2
		dc.DrawEllipse(c, c, (hi-lo)/2, (hi-lo)/2)
	})
	if err != nil {
		return nil, fmt.Errorf("vignette mask: %w", err)
	}
	filter.Blur(vignette, float64(int(fs*vignetteBlur)))
	filter.Mix(card, toRGBA(r.Palette.CardHighlight), vignette)

	glyph, err := r.Render(int(fs*cardGlyphScale), true)
	if err != nil {
		return nil, fmt.Errorf("card glyph: %w", err)
	}
	offset := int(fs * cardGlyphOffset)
	filter.Over(card, glyph, offset, offset)

	corners, err := fillMask(size, func(dc *gg.Context) {
		dc.DrawRoundedRectangle(0, 0, fs, fs, float64(int(fs*cardCorner)))
	})
	if err != nil {
		return nil, fmt.Errorf("corner mask: %w", err)
	}
	filter.ReplaceAlpha(card, corners)

	return card, nil
}

// fillMask returns a size×size pixmap whose alpha is the coverage of the
// path built by shape.
func fillMask(size int, shape func(dc *gg.Context)) (*gg.Pixmap, error) {
	mask := gg.NewPixmap(size, size)
	dc := gg.NewContext(size, size, gg.WithPixmap(mask))
	defer func() { _ = dc.Close() }()

	dc.SetRGBA(1, 1, 1, 1)
	shape(dc)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return mask, nil
}
