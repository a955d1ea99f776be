package raster

import (
	"image"
	"log/slog"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Detect probes the imaging capability: canvas allocation plus a usable
// terminal font. It is called once at process start and the result is
// injected into the renderer, so the check is never repeated per call and
// tests can substitute either outcome.
//
// The enabled flag comes from configuration and provides the supported way
// to run without the raster stage.
func Detect(enabled bool, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}

	if !enabled {
		logger.Info("raster capability disabled by configuration")
		return false
	}

	// Exercise the two pieces the raster stage cannot run without: canvas
	// allocation and the terminal fallback font.
	_ = image.NewRGBA(image.Rect(0, 0, 1, 1))

	if _, err := opentype.Parse(goregular.TTF); err != nil {
		logger.Warn("raster capability probe failed",
			slog.Any("error", err))
		return false
	}

	logger.Debug("raster capability available")

	return true
}
