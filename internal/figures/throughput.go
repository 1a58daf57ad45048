package figures

import (
	"gonum.org/v1/plot/vg"

	"sockplot/internal/render"
)

// Throughput (Gbps) per message size, averaged across thread counts.
var (
	throughputTwoCopy  = []float64{0.1032, 0.4394, 1.6734, 6.2939}
	throughputOneCopy  = []float64{0.7531, 3.064, 11.4204, 39.766}
	throughputZeroCopy = []float64{0.386, 1.7111, 6.4895, 24.3144}
)

// Throughput is the throughput-vs-message-size chart.
func Throughput() render.Figure {
	return render.Figure{
		Footnote: perSizeFootnote,
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
		DPI:      200,
		File:     "MT25082_throughput.png",
		Panels: []render.Panel{{
			Title:  "Throughput vs Message Size — Network I/O Primitives Comparison",
			YLabel: "Throughput (Gbps)",
			X:      msgSizeAxis(),
			Series: strategySeries(throughputTwoCopy, throughputOneCopy, throughputZeroCopy),
			Legend: render.LegendTopLeft,
		}},
	}
}
