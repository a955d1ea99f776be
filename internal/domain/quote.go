// Package domain contains core business entities and rules.
package domain

// Quote represents a quotation to be rendered.
// This is a domain entity - it has no knowledge of renderers or files.
type Quote struct {
	// ID is a stable identifier for the quote within the catalog.
	ID string

	// Content is the text of the quote.
	Content string
}

// catalog is the fixed set of quotes the generator chooses from.
// Built once, never mutated.
var catalog = []Quote{
	{ID: "limit-doubts", Content: "The only limit to our realization of tomorrow is our doubts of today."},
	{ID: "future-self", Content: "Do something today that your future self will thank you for."},
	{ID: "small-steps", Content: "Small steps every day lead to big changes over time."},
	{ID: "halfway-there", Content: "Believe you can and you're halfway there."},
	{ID: "progress", Content: "Progress, not perfection."},
	{ID: "start-where-you-are", Content: "Start where you are. Use what you have. Do what you can."},
	{ID: "only-limit", Content: "Your only limit is you."},
	{ID: "dream-big", Content: "Dream big. Start small. Act now."},
	{ID: "consistency", Content: "Consistency compounds into results."},
	{ID: "excuses", Content: "Be stronger than your excuses."},
}

// Catalog returns the fixed quote table.
// The returned slice is a copy; callers cannot mutate the catalog.
func Catalog() []Quote {
	out := make([]Quote, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogSize returns the number of quotes in the catalog.
func CatalogSize() int {
	return len(catalog)
}
