// Package diagram renders the two plots the analyst reads values off:
// the azimuth-sweep score curve (to choose the elongation azimuth) and
// the log-log heave/rank curve (to choose the regression window). Both
// come in a terminal form and a PNG export.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DirectionCurve renders the direction-search curve: mean apparent-offset
// ratio per candidate azimuth 0..180°, with the maximum called out.
func DirectionCurve(scores []float64, best int) string {
	var sb strings.Builder
	sb.WriteString("\n  DIRECTION SEARCH — mean |cos(dipDirection − azimuth)|\n")
	sb.WriteString("  ─────────────────────────────────────────────────────\n\n")
	sb.WriteString(asciigraph.Plot(scores,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("candidate azimuth 0..180 deg"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Maximum mean ratio %.4f at azimuth %03d°\n", scores[best], best))
	return sb.String()
}

// RankCurve renders log10(heave) against rank so the analyst can pick the
// contiguous window where the relationship is linear. Heaves must be in
// rank order (descending); non-positive entries terminate the curve,
// since bounding faults contribute no size information.
func RankCurve(heaves []float64) string {
	var logs []float64
	for _, h := range heaves {
		if h <= 0 || math.IsNaN(h) {
			break
		}
		logs = append(logs, math.Log10(h))
	}
	var sb strings.Builder
	sb.WriteString("\n  FREQUENCY-SIZE — log10(heave) by rank\n")
	sb.WriteString("  ──────────────────────────────────────\n\n")
	if len(logs) < 2 {
		sb.WriteString("  (fewer than two positive heaves; nothing to plot)\n")
		return sb.String()
	}
	sb.WriteString(asciigraph.Plot(logs,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("rank 1..%d (descending heave)", len(logs))),
	))
	sb.WriteString("\n\n")
	sb.WriteString("  Pick the rank window over the linear stretch of this curve.\n")
	return sb.String()
}
