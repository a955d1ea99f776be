// Package main is the entry point for the quotecard generator.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotecard/internal/adapters/quotes"
	"github.com/jsamuelsen/quotecard/internal/adapters/raster"
	"github.com/jsamuelsen/quotecard/internal/adapters/svg"
	"github.com/jsamuelsen/quotecard/internal/app"
	"github.com/jsamuelsen/quotecard/internal/platform/config"
	"github.com/jsamuelsen/quotecard/internal/platform/logging"
	"github.com/jsamuelsen/quotecard/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	// Version is the semantic version of the generator.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging. Logs go to stderr; stdout carries only the
	// artifact report lines.
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	runID := uuid.NewString()
	logger = logger.With(slog.String("run_id", runID))
	ctx = logging.WithContext(ctx, logger)

	logger.Info("starting generator",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Probe the imaging capability once; the result is cached for the
	// whole run.
	available := raster.Detect(cfg.Raster.Enabled, logger)

	// 5. Wire adapters
	source := quotes.NewStaticSource(quotes.StaticSourceConfig{Logger: logger})

	vectorRenderer := svg.NewRenderer(svg.RendererConfig{Logger: logger})

	var fonts *raster.FontProvider
	if available {
		fonts = raster.NewFontProvider(raster.FontProviderConfig{
			Candidates: cfg.Fonts.Candidates,
			Logger:     logger,
		})
	}

	rasterizer := raster.NewRenderer(raster.RendererConfig{
		Fonts:     fonts,
		Available: available,
		Logger:    logger,
	})

	// 6. Create the pipeline orchestrator
	generator := app.NewGenerator(app.GeneratorConfig{
		Source:     source,
		Vector:     vectorRenderer,
		Writer:     vectorRenderer,
		Rasterizer: rasterizer,
		Clock:      ports.ClockFunc(time.Now),
		OutputDir:  cfg.Output.Dir,
		Size:       cfg.Canvas.Size,
		Logger:     logger,
	})

	// 7. Run once, then report
	result, err := generator.Generate(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Saved SVG to: %s\n", result.VectorPath)

	if result.RasterSkipped {
		fmt.Println("Raster capability not available or disabled. PNG not created.")
	} else {
		fmt.Printf("Saved PNG to: %s\n", result.RasterPath)
	}

	return nil
}
