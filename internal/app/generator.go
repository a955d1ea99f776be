// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/quotecard/internal/domain"
	"github.com/jsamuelsen/quotecard/internal/ports"
)

// timestampLayout is the filename stem timestamp, whole-second granularity.
// Two runs within the same second share a stem and overwrite; this mirrors
// the single-user, run-to-completion model.
const timestampLayout = "20060102-150405"

// Result reports the artifacts of one generation run.
type Result struct {
	// Quote is the selected quote.
	Quote domain.Quote

	// VectorPath is the written SVG file.
	VectorPath string

	// RasterPath is the written PNG file, empty when skipped.
	RasterPath string

	// RasterSkipped reports that the imaging capability was unavailable.
	// This is a normal outcome, not an error.
	RasterSkipped bool
}

// Generator orchestrates the generation pipeline:
// ensure output directory, pick a quote, render and write the vector
// document, then attempt the raster rendering with the same quote and
// timestamp stem. It depends on port interfaces, not concrete
// implementations.
type Generator struct {
	source     ports.QuoteSource
	vector     ports.VectorRenderer
	writer     ports.VectorWriter
	rasterizer ports.Rasterizer
	clock      ports.Clock
	outputDir  string
	size       int
	logger     *slog.Logger
}

// GeneratorConfig contains dependencies and settings for the generator.
type GeneratorConfig struct {
	// Source selects quotes. Required.
	Source ports.QuoteSource

	// Vector renders SVG documents. Required.
	Vector ports.VectorRenderer

	// Writer persists vector documents. Required.
	Writer ports.VectorWriter

	// Rasterizer renders PNG images. Required; use one with
	// Available() == false to model the missing capability.
	Rasterizer ports.Rasterizer

	// Clock supplies filename timestamps. Required.
	Clock ports.Clock

	// OutputDir is the artifact directory, created if absent.
	OutputDir string

	// Size is the square canvas dimension.
	Size int

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewGenerator creates the pipeline orchestrator.
// Panics if a required dependency is missing; wiring bugs should fail at
// startup, not mid-run.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Source == nil {
		panic("Generator: Source is required")
	}
	if cfg.Vector == nil {
		panic("Generator: Vector is required")
	}
	if cfg.Writer == nil {
		panic("Generator: Writer is required")
	}
	if cfg.Rasterizer == nil {
		panic("Generator: Rasterizer is required")
	}
	if cfg.Clock == nil {
		panic("Generator: Clock is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		source:     cfg.Source,
		vector:     cfg.Vector,
		writer:     cfg.Writer,
		rasterizer: cfg.Rasterizer,
		clock:      cfg.Clock,
		outputDir:  cfg.OutputDir,
		size:       cfg.Size,
		logger:     logger.With(slog.String("component", "app.Generator")),
	}
}

// Generate runs the pipeline once. Filesystem failures propagate; a missing
// raster capability is reported through Result.RasterSkipped instead.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", g.outputDir, err)
	}

	quote := g.source.Pick()
	stem := "quote-" + g.clock.Now().Format(timestampLayout)

	g.logger.InfoContext(ctx, "generating quote image",
		slog.String("quote_id", quote.ID),
		slog.String("stem", stem),
		slog.Int("size", g.size),
	)

	vectorPath := filepath.Join(g.outputDir, stem+".svg")

	doc := g.vector.Render(quote, g.size)
	if err := g.writer.Save(doc, vectorPath); err != nil {
		return nil, fmt.Errorf("saving vector document: %w", err)
	}

	g.logger.InfoContext(ctx, "saved vector document",
		slog.String("path", vectorPath))

	result := &Result{
		Quote:      quote,
		VectorPath: vectorPath,
	}

	rasterPath := filepath.Join(g.outputDir, stem+".png")

	err := g.rasterizer.Render(ctx, quote, g.size, rasterPath)
	switch {
	case err == nil:
		result.RasterPath = rasterPath
		g.logger.InfoContext(ctx, "saved raster image",
			slog.String("path", rasterPath))

	case domain.IsUnavailable(err):
		// Normal outcome: report the skip, do not fail the run.
		result.RasterSkipped = true
		g.logger.InfoContext(ctx, "raster rendering skipped",
			slog.Any("reason", err))

	default:
		return nil, fmt.Errorf("rendering raster image: %w", err)
	}

	return result, nil
}
