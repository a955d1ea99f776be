package quotes

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotecard/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticSource_PickReturnsCatalogMember(t *testing.T) {
	src := NewStaticSource(StaticSourceConfig{Logger: discardLogger()})

	members := make(map[string]bool)
	for _, q := range domain.Catalog() {
		members[q.ID] = true
	}

	for i := 0; i < 100; i++ {
		q := src.Pick()
		assert.True(t, members[q.ID], "picked quote %q not in catalog", q.ID)
		assert.NotEmpty(t, q.Content)
	}
}

func TestStaticSource_DeterministicWithInjectedIndex(t *testing.T) {
	src := NewStaticSource(StaticSourceConfig{
		IntN:   func(int) int { return 4 },
		Logger: discardLogger(),
	})

	q := src.Pick()

	require.Equal(t, domain.Catalog()[4], q)
	assert.Equal(t, "Progress, not perfection.", q.Content)
}

func TestStaticSource_EveryIndexReachable(t *testing.T) {
	n := domain.CatalogSize()

	for i := 0; i < n; i++ {
		src := NewStaticSource(StaticSourceConfig{
			IntN:   func(int) int { return i },
			Logger: discardLogger(),
		})

		assert.Equal(t, domain.Catalog()[i], src.Pick())
	}
}
