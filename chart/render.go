package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/stsysd/senritsu/bucket"
)

// Renderer turns a bucket snapshot into the chart SVG. It keeps the last
// computed (x, y) of every mark in its own state, so the curve path is
// rebuilt from tracked positions rather than read back from rendered
// elements. Every redraw regenerates the full document; there is no
// differential update.
type Renderer struct {
	opts   *Options
	points []point
}

// NewRenderer creates a renderer with the given options (nil for defaults).
func NewRenderer(opts *Options) *Renderer {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(opts.Colors) == 0 {
		opts.Colors = DefaultOptions().Colors
	}
	return &Renderer{opts: opts}
}

// Redraw renders the full chart for the bucket snapshot, in chronological
// bucket order. With no scrobbles yet (max count 0) scaling is skipped:
// all marks sit on the baseline with the lowest color and the curve path
// stays empty.
func (r *Renderer) Redraw(buckets []bucket.Bucket) string {
	opts := r.opts

	maxCount := 0
	for _, b := range buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	// recompute tracked mark positions
	r.points = r.points[:0]
	for i, b := range buckets {
		ratio := 0.0
		if maxCount > 0 {
			ratio = float64(b.Count) / float64(maxCount)
		}
		r.points = append(r.points, point{
			x: float64(i * pointSpacing),
			y: -ratio * curveHeight,
		})
	}

	svgID := containerID(opts.Title)
	lastX := 0
	if len(buckets) > 0 {
		lastX = (len(buckets) - 1) * pointSpacing
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg id="%s" viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid meet" xmlns="http://www.w3.org/2000/svg">`+"\n",
		svgID, viewBoxWidth, viewBoxHeight))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}.baseline{stroke:#ddd;stroke-width:1}.curve{fill:none;stroke:#d51007;stroke-width:1.5}.tooltip{visibility:hidden}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	// render title if provided
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			marginLeft, opts.FontSize+2, opts.Title))
	}

	sb.WriteString(fmt.Sprintf(`  <g transform="translate(%d,%d)">`+"\n", marginLeft, baselineY))

	// static baseline reference mark
	sb.WriteString(fmt.Sprintf(`    <line x1="0" y1="0" x2="%d" y2="0" class="baseline"/>`+"\n", lastX))

	// single connecting curve, fully rebuilt each redraw; empty until the
	// first scrobble arrives
	curve := ""
	if maxCount > 0 {
		curve = monotonePath(r.points)
	}
	sb.WriteString(fmt.Sprintf(`    <path class="curve" d="%s"/>`+"\n", curve))

	// month labels above weeks that start within the first 7 days of a month
	lastMonth := -1
	for i, b := range buckets {
		if b.Start.Day() <= 7 && int(b.Start.Month())-1 != lastMonth {
			sb.WriteString(fmt.Sprintf(`    <text x="%d" y="%d" class="label">%s</text>`+"\n",
				i*pointSpacing, -(curveHeight + 12), b.Start.Format("Jan")))
			lastMonth = int(b.Start.Month()) - 1
		}
	}

	// one mark per bucket, position encodes bucket index, height and color
	// encode the count relative to the running maximum
	for i, b := range buckets {
		ratio := 0.0
		if maxCount > 0 {
			ratio = float64(b.Count) / float64(maxCount)
		}
		level := colorLevel(ratio, len(opts.Colors))
		sb.WriteString(fmt.Sprintf(`    <circle class="mark" cx="%d" cy="%s" r="%d" fill="%s" data-week="%s" data-date="%s" data-scrobbles="%d"/>`+"\n",
			i*pointSpacing, fnum(r.points[i].y), opts.PointRadius, opts.Colors[level],
			b.ID, b.Start.Format("2 Jan 2006"), b.Count))
	}

	sb.WriteString(`  </g>` + "\n")

	sb.WriteString(tooltipOverlay(svgID, opts))
	sb.WriteString(tooltipScript(svgID))

	sb.WriteString(`</svg>`)
	return sb.String()
}

// Points returns the mark positions computed by the last redraw.
func (r *Renderer) Points() []point {
	return r.points
}

// colorLevel maps a [0,1] ratio onto the 5-step color scale:
// ceil(ratio*4) with zero mapping to the lowest step.
func colorLevel(ratio float64, levels int) int {
	level := int(math.Ceil(ratio * 4))
	if level < 0 {
		level = 0
	}
	if level >= levels {
		level = levels - 1
	}
	return level
}

// containerID namespaces the chart's element ids by the widget title.
func containerID(title string) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	if slug == "" {
		return "listening-chart"
	}
	return "listening-chart-" + slug
}
