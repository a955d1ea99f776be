package render

import "strings"

// Wrap greedily wraps text at the given character width: as many
// whitespace-separated words as fit are packed onto each line before a new
// line starts. A single word longer than the width occupies its own line
// unbroken. Runs of whitespace collapse to a single space, and empty input
// yields no lines.
//
// Both renderers must call this with MaxLineChars so the vector and raster
// outputs wrap identically.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder

	for _, word := range words {
		if b.Len() == 0 {
			b.WriteString(word)
			continue
		}

		if b.Len()+1+len(word) <= width {
			b.WriteByte(' ')
			b.WriteString(word)
			continue
		}

		lines = append(lines, b.String())
		b.Reset()
		b.WriteString(word)
	}

	lines = append(lines, b.String())

	return lines
}
