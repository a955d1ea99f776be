package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestFontProvider_FallbackAlwaysSucceeds(t *testing.T) {
	p := NewFontProvider(FontProviderConfig{Logger: discardLogger()})

	face := p.Face(48)

	require.NotNil(t, face)
	adv := font.MeasureString(face, "A")
	assert.Positive(t, adv.Ceil())
}

func TestFontProvider_BadCandidatesAreSkippedSilently(t *testing.T) {
	dir := t.TempDir()

	p := NewFontProvider(FontProviderConfig{
		Candidates: []string{
			filepath.Join(dir, "missing.ttf"),
			filepath.Join(dir, "also-missing.otf"),
		},
		Logger: discardLogger(),
	})

	face := p.Face(48)

	require.NotNil(t, face)
}

func TestFontProvider_InvalidFontFileFallsThrough(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.ttf")
	require.NoError(t, os.WriteFile(bogus, []byte("definitely not a font"), 0o644))

	p := NewFontProvider(FontProviderConfig{
		Candidates: []string{bogus},
		Logger:     discardLogger(),
	})

	face := p.Face(48)

	require.NotNil(t, face)
}

func TestFontProvider_FallbackScalesWithSize(t *testing.T) {
	p := NewFontProvider(FontProviderConfig{Logger: discardLogger()})

	small := p.Face(12)
	large := p.Face(48)

	if small == basicfont.Face7x13 || large == basicfont.Face7x13 {
		t.Skip("embedded font unavailable; bitmap face has a fixed size")
	}

	assert.Greater(t,
		font.MeasureString(large, "Hello").Ceil(),
		font.MeasureString(small, "Hello").Ceil())
}
