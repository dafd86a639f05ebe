package favicon

import (
	"errors"
	"testing"
)

func TestRenderCard(t *testing.T) {
	pm, err := RenderCard(AppleTouchSize)
	if err != nil {
		t.Fatalf("RenderCard() = %v", err)
	}
	if pm.Width() != AppleTouchSize || pm.Height() != AppleTouchSize {
		t.Fatalf("card is %dx%d, want %d", pm.Width(), pm.Height(), AppleTouchSize)
	}

	last := AppleTouchSize - 1
	for _, p := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
		if c := pixelAt(pm, p[0], p[1]); c.A != 0 {
			t.Errorf("corner (%d,%d) = %v, want transparent", p[0], p[1], c)
		}
	}

	if c := pixelAt(pm, AppleTouchSize/2, 2); c.A != 255 || c.R > 40 {
		t.Errorf("top edge = %v, want opaque card color", c)
	}

	if c := pixelAt(pm, AppleTouchSize/2, AppleTouchSize/2); !isLight(c) {
		t.Errorf("center = %v, want the glyph body", c)
	}
}

func TestRenderCardInvalidSize(t *testing.T) {
	if _, err := RenderCard(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("RenderCard(0) error = %v, want ErrInvalidSize", err)
	}
}
