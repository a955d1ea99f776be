// Package quotes provides the static quote source adapter.
// It implements ports.QuoteSource over the in-memory domain catalog,
// with randomness injected so tests can substitute a seeded source.
package quotes

import (
	"log/slog"
	"math/rand"

	"github.com/jsamuelsen/quotecard/internal/domain"
)

// IntN matches the signature of rand.IntN: it returns a uniform random
// int in [0, n). Injecting it keeps selection deterministic in tests.
type IntN func(n int) int

// StaticSource picks quotes uniformly at random from the domain catalog.
type StaticSource struct {
	quotes []domain.Quote
	intn   IntN
	logger *slog.Logger
}

// StaticSourceConfig contains configuration for the static source.
type StaticSourceConfig struct {
	// IntN is the random index function. Defaults to math/rand.Intn.
	IntN IntN

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewStaticSource creates a quote source over the fixed catalog.
func NewStaticSource(cfg StaticSourceConfig) *StaticSource {
	intn := cfg.IntN
	if intn == nil {
		intn = rand.Intn
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StaticSource{
		quotes: domain.Catalog(),
		intn:   intn,
		logger: logger,
	}
}

// Pick returns one quote chosen with uniform probability.
// Implements ports.QuoteSource.
func (s *StaticSource) Pick() domain.Quote {
	q := s.quotes[s.intn(len(s.quotes))]

	s.logger.Debug("picked quote",
		slog.String("quote_id", q.ID),
		slog.Int("length", len(q.Content)),
	)

	return q
}
