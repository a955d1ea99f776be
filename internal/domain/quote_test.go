package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_HasTenEntries(t *testing.T) {
	quotes := Catalog()

	require.Len(t, quotes, 10)
	assert.Equal(t, 10, CatalogSize())
}

func TestCatalog_EntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)

	for _, q := range Catalog() {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Content)
		assert.False(t, seen[q.ID], "duplicate quote ID %q", q.ID)
		seen[q.ID] = true
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Content = "mutated"

	assert.NotEqual(t, "mutated", Catalog()[0].Content)
}
