package figures

import (
	"gonum.org/v1/plot/vg"

	"sockplot/internal/render"
)

// Average latency (µs per message) per thread count, averaged across
// message sizes.
var (
	latencyTwoCopy  = []float64{14.56, 7.30, 3.95, 2.84}
	latencyOneCopy  = []float64{2.24, 1.11, 0.58, 0.41}
	latencyZeroCopy = []float64{3.43, 1.72, 1.05, 0.78}
)

// Latency is the latency-vs-thread-count chart. Unlike the message-size
// charts its x axis is linear.
func Latency() render.Figure {
	return render.Figure{
		Footnote: perThreadFootnote,
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
		DPI:      200,
		File:     "MT25082_latency.png",
		Panels: []render.Panel{{
			Title:  "Latency vs Thread Count — Network I/O Primitives Comparison",
			YLabel: "Average Latency (µs / message)",
			X: render.Axis{
				Label:  "Thread Count",
				Values: threadCounts,
				Labels: []string{"1", "2", "4", "8"},
				Scale:  render.Linear,
			},
			Series: strategySeries(latencyTwoCopy, latencyOneCopy, latencyZeroCopy),
			Legend: render.LegendTopLeft,
		}},
	}
}
