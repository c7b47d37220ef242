package chart

import (
	"fmt"
	"math"
	"strings"
)

// point is a mark position in the chart's local coordinate space.
type point struct {
	x, y float64
}

// monotonePath builds an SVG path through the points using monotone cubic
// interpolation (Fritsch-Carlson tangents). The curve never overshoots
// between adjacent points, so a run of equal counts renders flat.
func monotonePath(pts []point) string {
	if len(pts) == 0 {
		return ""
	}
	if len(pts) == 1 {
		return fmt.Sprintf("M%s,%s", fnum(pts[0].x), fnum(pts[0].y))
	}

	m := monotoneTangents(pts)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("M%s,%s", fnum(pts[0].x), fnum(pts[0].y)))
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		dx := (p1.x - p0.x) / 3
		sb.WriteString(fmt.Sprintf(" C%s,%s %s,%s %s,%s",
			fnum(p0.x+dx), fnum(p0.y+dx*m[i-1]),
			fnum(p1.x-dx), fnum(p1.y-dx*m[i]),
			fnum(p1.x), fnum(p1.y)))
	}
	return sb.String()
}

// monotoneTangents computes per-point tangent slopes that keep the cubic
// segments monotone between points.
func monotoneTangents(pts []point) []float64 {
	n := len(pts)

	// secant slopes per interval
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := pts[i+1].x - pts[i].x
		if dx == 0 {
			d[i] = 0
			continue
		}
		d[i] = (pts[i+1].y - pts[i].y) / dx
	}

	m := make([]float64, n)
	m[0] = d[0]
	m[n-1] = d[n-2]
	for i := 1; i < n-1; i++ {
		if d[i-1]*d[i] <= 0 {
			// local extremum: flat tangent
			m[i] = 0
		} else {
			m[i] = (d[i-1] + d[i]) / 2
		}
	}

	// clamp tangents so no segment overshoots its endpoints
	for i := 0; i < n-1; i++ {
		if d[i] == 0 {
			m[i] = 0
			m[i+1] = 0
			continue
		}
		a := m[i] / d[i]
		b := m[i+1] / d[i]
		if s := a*a + b*b; s > 9 {
			t := 3 / math.Sqrt(s)
			m[i] = t * a * d[i]
			m[i+1] = t * b * d[i]
		}
	}
	return m
}

// fnum formats a coordinate compactly, trimming a trailing ".0".
func fnum(v float64) string {
	if v == 0 {
		return "0"
	}
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
