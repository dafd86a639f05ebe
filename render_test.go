package favicon

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

// pixelAt returns the straight-alpha color of the pixel at (x, y).
func pixelAt(pm *gg.Pixmap, x, y int) color.NRGBA {
	i := (y*pm.Width() + x) * 4
	d := pm.Data()
	return unpremultiply(d[i], d[i+1], d[i+2], d[i+3])
}

// near reports whether every channel of got is within tol of want.
func near(got, want color.NRGBA, tol uint8) bool {
	return absDiff(got.R, want.R) <= tol && absDiff(got.G, want.G) <= tol &&
		absDiff(got.B, want.B) <= tol && absDiff(got.A, want.A) <= tol
}

func isDark(c color.NRGBA) bool {
	return c.A > 200 && c.R < 60 && c.G < 60 && c.B < 60
}

func isLight(c color.NRGBA) bool {
	return c.A > 200 && c.R > 200 && c.G > 200 && c.B > 200
}

func mustRender(t *testing.T, size int, ring bool) *gg.Pixmap {
	t.Helper()
	pm, err := Render(size, ring)
	if err != nil {
		t.Fatalf("Render(%d, %v) = %v", size, ring, err)
	}
	return pm
}

func TestRenderDimensionsAndCenter(t *testing.T) {
	for _, size := range IconSizes {
		pm := mustRender(t, size, size >= RingMinSize)
		if pm.Width() != size || pm.Height() != size {
			t.Errorf("Render(%d) is %dx%d", size, pm.Width(), pm.Height())
			continue
		}
		if c := pixelAt(pm, size/2, size/2); c.A == 0 {
			t.Errorf("Render(%d): center pixel is transparent", size)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -256} {
		if _, err := Render(size, false); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Render(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{16, 32, 64, 192} {
		a := mustRender(t, size, size >= RingMinSize)
		b := mustRender(t, size, size >= RingMinSize)
		if !bytes.Equal(a.Data(), b.Data()) {
			t.Errorf("Render(%d) differs between calls", size)
		}
	}
}

func TestRenderEyes(t *testing.T) {
	// The pixel just up-left of the left eye center, which lies on the stem.
	eyePixel := func(size int) (int, int) {
		s := float64(size) / ReferenceSize
		return int(112*s) - 1, int(150*s) - 1
	}

	tests := []struct {
		size int
		eyes bool
	}{
		{32, false},
		{40, false},
		{128, true},
		{256, true},
		{512, true},
	}

	for _, tt := range tests {
		pm := mustRender(t, tt.size, false)
		x, y := eyePixel(tt.size)
		c := pixelAt(pm, x, y)
		switch {
		case tt.eyes && !isDark(c):
			t.Errorf("size %d: pixel (%d,%d) = %v, want eye color", tt.size, x, y, c)
		case !tt.eyes && !isLight(c):
			t.Errorf("size %d: pixel (%d,%d) = %v, want body color", tt.size, x, y, c)
		}
	}
}

func TestRenderNoEyesBelowThreshold(t *testing.T) {
	eye := DefaultPalette.Eyes
	for size := 16; size < EyesMinSize; size++ {
		pm := mustRender(t, size, false)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				c := pixelAt(pm, x, y)
				if c.A == 255 && c.R == eye.R && c.G == eye.G && c.B == eye.B {
					t.Fatalf("size %d: eye-colored pixel at (%d,%d)", size, x, y)
				}
			}
		}
	}
}

func TestRenderOutline(t *testing.T) {
	// Just outside the left extreme of the cap at 32px lies the 2px rim.
	c := pixelAt(mustRender(t, 32, false), 3, 11)
	if !isDark(c) {
		t.Errorf("size 32: rim pixel = %v, want outline color", c)
	}

	// At 48px the same spot has no rim, only the faint shadow.
	c = pixelAt(mustRender(t, 48, false), 5, 16)
	if c.A > 80 {
		t.Errorf("size 48: pixel left of the cap = %v, want mostly transparent", c)
	}
}

func TestRenderRing(t *testing.T) {
	// (28,128) lies mid-stroke: the 256px ring spans radii 85 to 105.
	ringed := pixelAt(mustRender(t, 256, true), 28, 128)
	if !near(ringed, DefaultPalette.Ring, 2) {
		t.Errorf("ring pixel = %v, want %v", ringed, DefaultPalette.Ring)
	}

	plain := pixelAt(mustRender(t, 256, false), 28, 128)
	if plain.A > 80 {
		t.Errorf("pixel without ring = %v, want mostly transparent", plain)
	}

	if c := pixelAt(mustRender(t, 256, true), 0, 0); c.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", c)
	}
}

func TestRenderEdgesKeepFillColor(t *testing.T) {
	// The shadow alone never exceeds 22% alpha, so pixels between 100 and
	// 230 are partially covered glyph edges. Their straight color must stay
	// close to the fill rather than fade toward black.
	pm := mustRender(t, 128, false)
	found := 0
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			c := pixelAt(pm, x, y)
			if c.A < 100 || c.A > 230 {
				continue
			}
			found++
			if c.R < 180 || c.G < 180 || c.B < 180 {
				t.Fatalf("edge pixel (%d,%d) = %v, want near fill %v", x, y, c, DefaultPalette.Fill)
			}
		}
	}
	if found == 0 {
		t.Fatal("no partially covered edge pixels found")
	}
}

func TestRenderLogsBlurRadii(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	mustRender(t, 256, true)

	for _, want := range []string{"size=256", "ring_blur=1", "shadow_blur=7"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("debug output does not contain %q:\n%s", want, buf.String())
		}
	}
}

func TestRenderCustomPalette(t *testing.T) {
	r := NewRenderer()
	r.Palette.Fill = color.NRGBA{R: 200, G: 40, B: 40, A: 255}

	pm, err := r.Render(256, false)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	c := pixelAt(pm, 128, 128)
	if c.A != 255 || absDiff(c.R, 200) > 2 || absDiff(c.G, 40) > 2 || absDiff(c.B, 40) > 2 {
		t.Errorf("center = %v, want the custom fill", c)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func BenchmarkRender(b *testing.B) {
	for _, size := range []int{16, 64, 512} {
		b.Run(IconName(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Render(size, size >= RingMinSize); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
