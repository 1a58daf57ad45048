package figures

import (
	"gonum.org/v1/plot/vg"

	"sockplot/internal/render"
)

// CPU cycles per byte transferred (total_cycles / total_bytes) per message
// size, averaged across thread counts.
var (
	cyclesPerByteTwoCopy  = []float64{644.0, 161.7, 41.3, 10.8}
	cyclesPerByteOneCopy  = []float64{101.1, 25.5, 6.2, 1.9}
	cyclesPerByteZeroCopy = []float64{128.2, 29.7, 7.1, 2.2}
)

// CyclesPerByte is the CPU-cycles-per-byte-vs-message-size chart.
func CyclesPerByte() render.Figure {
	return render.Figure{
		Footnote: perSizeFootnote,
		Width:    10 * vg.Inch,
		Height:   6 * vg.Inch,
		DPI:      200,
		File:     "MT25082_cycles_per_byte.png",
		Panels: []render.Panel{{
			Title:  "CPU Cycles per Byte vs Message Size — Network I/O Primitives Comparison",
			YLabel: "CPU Cycles per Byte Transferred",
			X:      msgSizeAxis(),
			Series: strategySeries(cyclesPerByteTwoCopy, cyclesPerByteOneCopy, cyclesPerByteZeroCopy),
			Legend: render.LegendTopRight,
		}},
	}
}
