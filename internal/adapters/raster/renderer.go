package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/jsamuelsen/quotecard/internal/domain"
	"github.com/jsamuelsen/quotecard/internal/render"
)

// Renderer draws quotes onto bitmap canvases.
// Implements ports.Rasterizer.
type Renderer struct {
	fonts     *FontProvider
	available bool
	logger    *slog.Logger
}

// RendererConfig contains configuration for the raster renderer.
type RendererConfig struct {
	// Fonts supplies font faces for text drawing.
	Fonts *FontProvider

	// Available is the capability-detection result, probed once at startup
	// with Detect and cached here. When false, Render refuses with
	// domain.ErrUnavailable and performs no work.
	Available bool

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewRenderer creates a raster renderer.
// Panics if Fonts is nil while the capability is available.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Available && cfg.Fonts == nil {
		panic("raster.Renderer: Fonts is required when available")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Renderer{
		fonts:     cfg.Fonts,
		available: cfg.Available,
		logger:    logger,
	}
}

// Available reports the cached capability-detection result.
func (r *Renderer) Available() bool {
	return r.available
}

// Render draws the quote onto a size x size canvas and PNG-encodes it to
// path, overwriting any existing file. Returns domain.ErrUnavailable with
// no side effects when the capability was not loaded.
func (r *Renderer) Render(ctx context.Context, quote domain.Quote, size int, path string) error {
	if !r.available {
		return domain.NewUnavailableError("raster", "imaging capability not loaded")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))

	background := rgb(render.BackgroundRGB)
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// The raster panel is deliberately square; the rounded corners exist
	// only in the vector output.
	panel := image.Rect(render.Margin, render.Margin, size-render.Margin, size-render.Margin)
	draw.Draw(img, panel, image.NewUniform(rgb(render.PanelRGB)), image.Point{}, draw.Src)

	face := r.fonts.Face(render.FontSize)
	lines := render.Wrap(quote.Content, render.MaxLineChars)

	drawTextBlock(img, face, lines, size)

	r.logger.Debug("rendered raster image",
		slog.String("quote_id", quote.ID),
		slog.Int("size", size),
		slog.Int("lines", len(lines)),
	)

	return savePNG(img, path)
}

// linePlacement is the resolved position of one wrapped line.
type linePlacement struct {
	text string
	x, y int // top-left of the line's ink box
	h    int // measured ink height, used to advance y
}

// layoutBlock measures the wrapped lines and centers the block on the
// canvas. The reference line height comes from a sample glyph; the total
// block height is lineH*n + LineSpacing*(n-1) and the first line's top
// starts at (size-total)/2. Each line is centered horizontally on its own
// measured width.
func layoutBlock(face font.Face, lines []string, size int) []linePlacement {
	if len(lines) == 0 {
		return nil
	}

	ref, _ := font.BoundString(face, "A")
	lineH := (ref.Max.Y - ref.Min.Y).Ceil()

	total := render.BlockHeight(lineH, len(lines))
	y := render.BlockTop(size, total)

	placements := make([]linePlacement, 0, len(lines))

	for _, line := range lines {
		b, _ := font.BoundString(face, line)
		w := (b.Max.X - b.Min.X).Ceil()
		h := (b.Max.Y - b.Min.Y).Ceil()

		placements = append(placements, linePlacement{
			text: line,
			x:    (size - w) / 2,
			y:    y,
			h:    h,
		})

		y += h + render.LineSpacing
	}

	return placements
}

// drawTextBlock paints the centered line block in white.
func drawTextBlock(img *image.RGBA, face font.Face, lines []string, size int) {
	src := image.NewUniform(rgb(render.TextRGB))

	for _, p := range layoutBlock(face, lines, size) {
		b, _ := font.BoundString(face, p.text)

		// BoundString is relative to the dot, so shifting the dot by the
		// ink box origin places the box's top-left at (x, y).
		d := &font.Drawer{
			Dst:  img,
			Src:  src,
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I(p.x) - b.Min.X,
				Y: fixed.I(p.y) - b.Min.Y,
			},
		}
		d.DrawString(p.text)
	}
}

// savePNG encodes the canvas to path, overwriting any existing file.
func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating raster file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding raster image: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing raster file: %w", err)
	}

	return nil
}

// rgb builds an opaque color from packed components.
func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
