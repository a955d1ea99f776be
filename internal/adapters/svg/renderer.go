// Package svg implements the vector renderer and writer.
// It produces a self-contained SVG document: a full-bleed background, an
// inset rounded-rect panel, and the word-wrapped quote centered in a
// foreignObject flow block so the text scales with the viewBox.
package svg

import (
	"bytes"
	"fmt"
	"html"
	"log/slog"
	"os"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/jsamuelsen/quotecard/internal/domain"
	"github.com/jsamuelsen/quotecard/internal/render"
)

// fontFamily is the system font stack embedded in the document.
// Rendering is delegated to the viewer, so no font files are needed here.
const fontFamily = "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial"

// Renderer builds SVG quote documents.
type Renderer struct {
	logger *slog.Logger
}

// RendererConfig contains configuration for the renderer.
type RendererConfig struct {
	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewRenderer creates a new vector renderer.
func NewRenderer(cfg RendererConfig) *Renderer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Renderer{logger: logger}
}

// Render builds the document for a size x size canvas.
// Implements ports.VectorRenderer. It always succeeds given a valid size.
func (r *Renderer) Render(quote domain.Quote, size int) []byte {
	lines := render.Wrap(quote.Content, render.MaxLineChars)

	var buf bytes.Buffer
	canvas := svgo.New(&buf)

	canvas.StartviewUnit(size, size, "px", 0, 0, size, size)

	canvas.Rect(0, 0, size, size, fmt.Sprintf(`fill="%s"`, render.BackgroundHex))
	canvas.Roundrect(render.Margin, render.Margin,
		size-2*render.Margin, size-2*render.Margin,
		render.Margin, render.Margin,
		fmt.Sprintf(`fill="%s" opacity="%g"`, render.PanelHex, render.PanelOpacity))

	canvas.Group(
		fmt.Sprintf(`fill="%s"`, render.TextHex),
		fmt.Sprintf(`font-family="%s"`, fontFamily),
		fmt.Sprintf(`font-size="%d"`, render.FontSize),
	)
	r.writeTextBlock(canvas, lines, size)
	canvas.Gend()

	canvas.End()

	r.logger.Debug("rendered vector document",
		slog.String("quote_id", quote.ID),
		slog.Int("size", size),
		slog.Int("lines", len(lines)),
		slog.Int("bytes", buf.Len()),
	)

	return buf.Bytes()
}

// writeTextBlock emits the foreignObject flow container holding the wrapped
// quote. svgo has no foreignObject element, so the XHTML subtree is written
// through the canvas writer directly. Line breaks within the wrapped text
// are explicit <br/> markers, not separate markup elements.
func (r *Renderer) writeTextBlock(canvas *svgo.SVG, lines []string, size int) {
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = html.EscapeString(line)
	}

	fmt.Fprintf(canvas.Writer,
		`<foreignObject x="%d" y="%d" width="%d" height="%d">
<body xmlns="http://www.w3.org/1999/xhtml" style="margin:0;">
<div style="font-size:%dpx; line-height:%g; color:%s; display:flex; align-items:center; justify-content:center; height:100%%; text-align:center;">
<div>%s</div>
</div>
</body>
</foreignObject>
`,
		render.TextMargin, 3*render.Margin,
		size-2*render.TextMargin, size-6*render.Margin,
		render.FontSize, render.LineHeightFactor, render.TextHex,
		strings.Join(escaped, "<br/>"))
}

// Save writes the document as UTF-8 text to path, overwriting any existing
// file. The caller is responsible for the target directory existing.
// Implements ports.VectorWriter.
func (r *Renderer) Save(doc []byte, path string) error {
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("writing vector document: %w", err)
	}

	return nil
}
