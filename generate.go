package favicon

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	ico "github.com/sergeymakinen/go-ico"
)

// Generator writes the complete favicon artifact set into one directory.
type Generator struct {
	cfg      Config
	renderer *Renderer
	log      *slog.Logger

	// icons keeps the renders of this run for the ICO bundle.
	icons map[int]*gg.Pixmap
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer replaces the default mushroom renderer.
func WithRenderer(r *Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithLogger sets the logger for one generator instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// NewGenerator validates cfg and returns a generator for it.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:      cfg,
		renderer: NewRenderer(),
		log:      Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Report lists what a run wrote.
type Report struct {
	Dir   string
	Files []string
}

// Run regenerates every artifact unconditionally. The first error aborts
// the run; since all outputs are derived, a failed run is fixed by
// running again. ctx is checked between files.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(g.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	report := &Report{Dir: g.cfg.OutDir}
	g.icons = make(map[int]*gg.Pixmap, len(IconSizes))

	steps := []func(context.Context, *Report) error{
		g.writeIcons,
		g.writeAliases,
		g.writeICO,
		g.writeCard,
		g.writeVectors,
		g.writeManifest,
	}
	for _, step := range steps {
		if err := step(ctx, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (g *Generator) writeIcons(ctx context.Context, report *Report) error {
	for _, size := range IconSizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		ring := size >= RingMinSize
		g.log.Debug("rendering icon", "size", size, "ring", ring, "detail", DetailFor(size))

		pm, err := g.renderer.Render(size, ring)
		if err != nil {
			return fmt.Errorf("render %d: %w", size, err)
		}
		g.icons[size] = pm

		err = g.writeFile(report, IconName(size), func(w io.Writer) error {
			return EncodePNG(w, pm)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeAliases copies already written icons to their well-known names.
func (g *Generator) writeAliases(ctx context.Context, report *Report) error {
	for _, a := range aliases {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(filepath.Join(g.cfg.OutDir, IconName(a.size)))
		if err != nil {
			return fmt.Errorf("read %s: %w", IconName(a.size), err)
		}
		err = g.writeFile(report, a.name, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeICO(ctx context.Context, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	images, err := g.icoImages()
	if err != nil {
		return err
	}
	return g.writeFile(report, ICOName, func(w io.Writer) error {
		return ico.EncodeAll(w, images)
	})
}

// icoImages returns the favicon.ico images in ICOSizes order.
func (g *Generator) icoImages() ([]image.Image, error) {
	largest := ICOSizes[len(ICOSizes)-1]
	source, ok := g.icons[largest]
	if !ok {
		return nil, fmt.Errorf("ico: icon %d not rendered", largest)
	}

	images := make([]image.Image, 0, len(ICOSizes))
	for _, size := range ICOSizes {
		switch {
		case g.cfg.ICOMode == ICOResample && size != largest:
			images = append(images, resample(RGBA(source), size))
		default:
			pm, ok := g.icons[size]
			if !ok {
				return nil, fmt.Errorf("ico: icon %d not rendered", size)
			}
			images = append(images, NRGBA(pm))
		}
	}
	return images, nil
}

func (g *Generator) writeCard(ctx context.Context, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pm, err := g.renderer.RenderCard(AppleTouchSize)
	if err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	return g.writeFile(report, AppleName, func(w io.Writer) error {
		return EncodePNG(w, pm)
	})
}

func (g *Generator) writeVectors(ctx context.Context, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.writeFile(report, SVGName, g.renderer.WriteSVG); err != nil {
		return err
	}
	return g.writeFile(report, PinnedTabName, g.renderer.WritePinnedTabSVG)
}

func (g *Generator) writeManifest(ctx context.Context, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.writeFile(report, ManifestName, NewManifest(g.cfg).Encode)
}

// writeFile creates name in the output directory and fills it with encode.
func (g *Generator) writeFile(report *Report, name string, encode func(io.Writer) error) (err error) {
	path := filepath.Join(g.cfg.OutDir, name)

	f, err := os.Create(path) //nolint:gosec // output directory is operator-controlled
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	report.Files = append(report.Files, name)
	g.log.Info("wrote file", "file", name)
	return nil
}
