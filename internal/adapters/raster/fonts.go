// Package raster implements the bitmap renderer.
// It paints the quote onto an RGBA canvas with the x/image font stack and
// encodes the result as PNG. The imaging capability is probed once at
// startup; when absent the renderer degrades to a reported skip.
package raster

import (
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontDPI is the rendering resolution. 72 keeps point size equal to pixel
// size, matching the vector document's 48px text.
const fontDPI = 72

// FontProvider loads a font face from an ordered candidate list of font
// file paths, falling back to the embedded Go Regular face and finally to
// the built-in bitmap face. The fallback chain always succeeds; individual
// load failures are silently absorbed.
type FontProvider struct {
	candidates []string
	logger     *slog.Logger

	once     sync.Once
	embedded *sfnt.Font
}

// FontProviderConfig contains configuration for the font provider.
type FontProviderConfig struct {
	// Candidates is the ordered list of font file paths to try.
	// Platform-dependent; none may exist on a given system.
	Candidates []string

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewFontProvider creates a font provider.
func NewFontProvider(cfg FontProviderConfig) *FontProvider {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FontProvider{
		candidates: cfg.Candidates,
		logger:     logger,
	}
}

// Face returns a font face at the given point size, using the first
// candidate that loads successfully.
func (p *FontProvider) Face(points float64) font.Face {
	for _, path := range p.candidates {
		face, err := loadFace(path, points)
		if err != nil {
			p.logger.Debug("font candidate skipped",
				slog.String("path", path),
				slog.Any("error", err),
			)
			continue
		}

		p.logger.Debug("loaded font", slog.String("path", path))

		return face
	}

	return p.fallbackFace(points)
}

// fallbackFace returns the embedded Go Regular face at the given size, or
// the fixed-size bitmap face if even that fails to parse.
func (p *FontProvider) fallbackFace(points float64) font.Face {
	p.once.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			p.logger.Warn("embedded font unusable, using bitmap face",
				slog.Any("error", err))
			return
		}
		p.embedded = f
	})

	if p.embedded == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(p.embedded, &opentype.FaceOptions{
		Size:    points,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}

// loadFace parses a font file and builds a face at the given size.
func loadFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
