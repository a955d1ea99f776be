// Package ports defines interfaces for the generator's collaborators.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on operations that touch the filesystem
//   - Return domain types, never adapter internals
//   - Error returns use domain error types (ErrUnavailable, etc.)
//   - Non-determinism (randomness, wall clock) lives behind ports so the
//     pipeline is fully testable with deterministic substitutes
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quotecard/internal/domain"
)

// QuoteSource selects quotes from the fixed catalog.
type QuoteSource interface {
	// Pick returns one quote chosen with uniform probability.
	// It has no error conditions; the catalog is non-empty by construction.
	Pick() domain.Quote
}

// Clock supplies the wall-clock time used for output filenames.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// VectorRenderer renders a quote to a self-contained SVG document.
type VectorRenderer interface {
	// Render builds the document for a size x size canvas.
	// It always succeeds given a valid size.
	Render(quote domain.Quote, size int) []byte
}

// VectorWriter persists a rendered vector document.
type VectorWriter interface {
	// Save writes the document as UTF-8 text to path, overwriting any
	// existing file. The target directory must already exist.
	Save(doc []byte, path string) error
}

// Rasterizer renders a quote to a bitmap file. It models the optional
// imaging capability: implementations probe availability once at startup
// and report it through Available.
type Rasterizer interface {
	// Available reports the cached capability-detection result.
	Available() bool

	// Render draws the quote onto a size x size canvas and encodes it to
	// path, overwriting any existing file. It returns an error satisfying
	// domain.IsUnavailable, with no side effects, when the capability was
	// not loaded; font-load failures are absorbed internally and never
	// surfaced.
	Render(ctx context.Context, quote domain.Quote, size int, path string) error
}
