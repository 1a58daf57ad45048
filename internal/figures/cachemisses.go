package figures

import (
	"gonum.org/v1/plot/vg"

	"sockplot/internal/render"
)

// Cache misses per message size, averaged across thread counts.
var (
	l1MissesTwoCopy  = []float64{291968304, 309217729, 307166401, 347778830}
	l1MissesOneCopy  = []float64{286537273, 314324731, 346897605, 513598431}
	l1MissesZeroCopy = []float64{295035969, 294291095, 289806198, 454019805}

	llcMissesTwoCopy  = []float64{26389, 18359, 19765, 24503}
	llcMissesOneCopy  = []float64{20707, 25050, 78139, 1652451}
	llcMissesZeroCopy = []float64{8207, 9827, 6801, 12790}
)

// CacheMisses is the two-panel cache-miss chart: L1 data cache misses on
// the left, LLC load misses on the right.
func CacheMisses() render.Figure {
	return render.Figure{
		Title:    "Cache Misses vs Message Size — Network I/O Primitives Comparison",
		Footnote: perSizeFootnote,
		Width:    14 * vg.Inch,
		Height:   6 * vg.Inch,
		DPI:      200,
		File:     "MT25082_cache_misses.png",
		Panels: []render.Panel{
			{
				Title:  "L1 Cache Misses vs Message Size",
				YLabel: "L1 Data Cache Misses",
				X:      msgSizeAxis(),
				Series: strategySeries(l1MissesTwoCopy, l1MissesOneCopy, l1MissesZeroCopy),
				Legend: render.LegendTopLeft,
			},
			{
				Title:  "LLC Load Misses vs Message Size",
				YLabel: "LLC Load Misses",
				X:      msgSizeAxis(),
				Series: strategySeries(llcMissesTwoCopy, llcMissesOneCopy, llcMissesZeroCopy),
				Legend: render.LegendTopLeft,
			},
		},
	}
}
