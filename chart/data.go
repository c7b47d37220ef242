// Package chart renders the weekly listening-activity chart as an SVG
// string: one mark per weekly bucket, a smooth curve through all marks,
// and a shared hover tooltip.
package chart

// Logical layout constants. The SVG uses a fixed viewBox so physical
// scaling is left to the embedding surface.
const (
	viewBoxWidth  = 820
	viewBoxHeight = 180

	// horizontal distance between adjacent marks
	pointSpacing = 15

	// vertical span of the highest bucket, in logical units
	curveHeight = 100

	// y of the zero-count baseline inside the viewBox
	baselineY = 150

	// left edge of the first mark
	marginLeft = 13

	// tooltip flips to the other side of the cursor past this local x
	tooltipFlipX = 410
)

// Options configures rendering parameters.
type Options struct {
	PointRadius int      // radius of each week mark (logical units)
	Colors      []string // array of 5 CSS colors for levels 0..4
	FontSize    int      // font size for labels (px)
	FontFamily  string   // font family for labels
	Title       string   // widget title, also namespaces element ids
}

// DefaultOptions returns the rendering defaults used when opts is nil.
func DefaultOptions() *Options {
	return &Options{
		PointRadius: 3,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#f4e3e1", "#edb3aa", "#e68173", "#de4e3c", "#d51007"},
	}
}
