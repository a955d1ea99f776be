// Package render holds the layout policy shared by the vector and raster
// renderers. Both outputs must represent the same quote image, so the wrap
// width, canvas geometry, and type metrics live here rather than in either
// adapter.
package render

// Canvas geometry shared by both renderers.
const (
	// DefaultSize is the default square canvas dimension in pixels.
	DefaultSize = 1080

	// Margin is the inset of the background panel on all sides.
	Margin = 40

	// TextMargin is the horizontal inset of the text content region.
	TextMargin = 80

	// FontSize is the text size in points/pixels.
	FontSize = 48

	// MaxLineChars is the greedy word-wrap width in characters.
	MaxLineChars = 32

	// LineHeightFactor is the vector line height relative to font size.
	LineHeightFactor = 1.15

	// LineSpacing is the raster inter-line spacing in pixels.
	LineSpacing = 6
)

// Colors shared by both renderers, as hex for the vector output and RGB
// components for the raster output.
const (
	BackgroundHex = "#0f172a"
	PanelHex      = "#0b1220"
	PanelOpacity  = 0.9
	TextHex       = "#ffffff"
)

// Raster color components matching the hex values above. The raster panel
// is painted opaque with the raw panel color; only the vector output
// applies PanelOpacity.
var (
	BackgroundRGB = [3]uint8{15, 23, 42}
	PanelRGB      = [3]uint8{11, 18, 32}
	TextRGB       = [3]uint8{255, 255, 255}
)

// BlockHeight returns the total height of a raster text block of n lines
// with the given reference line height: lineH*n + LineSpacing*(n-1).
func BlockHeight(lineH, n int) int {
	if n <= 0 {
		return 0
	}
	return lineH*n + LineSpacing*(n-1)
}

// BlockTop returns the y coordinate of the first line's top edge such that
// a block of the given total height is vertically centered on the canvas.
// Integer floor division, matching the raster contract.
func BlockTop(size, totalHeight int) int {
	return (size - totalHeight) / 2
}
