// Package figures holds the recorded benchmark measurements and assembles
// them into renderable chart definitions. The arrays below are the
// authoritative averaged results of the two-copy, one-copy, and zero-copy
// socket benchmark runs; the source CSVs are not read.
package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg/draw"

	"sockplot/internal/render"
)

// Independent variables exercised by the benchmark runs.
var (
	msgSizes     = []float64{64, 256, 1024, 4096}
	threadCounts = []float64{1, 2, 4, 8}
)

// Strategy styling shared by every chart.
var (
	twoCopyColor  = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	oneCopyColor  = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	zeroCopyColor = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
)

const (
	twoCopyLabel  = "A1: Two-Copy (send/recv)"
	oneCopyLabel  = "A2: One-Copy (sendmsg + iovec)"
	zeroCopyLabel = "A3: Zero-Copy (MSG_ZEROCOPY)"
)

// System configuration shown as a footnote under each chart.
const (
	perSizeFootnote = "System: Linux 6.14.0 | CPU: 13th Gen Intel i7-13700H | RAM: 16 GB\n" +
		"Network: veth pair (net namespaces) | Duration: 3s | Threads: avg across 1,2,4,8"
	perThreadFootnote = "System: Linux 6.14.0 | CPU: 13th Gen Intel i7-13700H | RAM: 16 GB\n" +
		"Network: veth pair (net namespaces) | Duration: 3s | Msg sizes: avg across 64,256,1024,4096"
)

func strategySeries(twoCopy, oneCopy, zeroCopy []float64) []render.Series {
	return []render.Series{
		{Label: twoCopyLabel, Values: twoCopy, Color: twoCopyColor, Glyph: draw.CircleGlyph{}},
		{Label: oneCopyLabel, Values: oneCopy, Color: oneCopyColor, Glyph: draw.BoxGlyph{}},
		{Label: zeroCopyLabel, Values: zeroCopy, Color: zeroCopyColor, Glyph: draw.PyramidGlyph{}},
	}
}

// msgSizeAxis is the log2 message-size axis. Ticks are the literal sizes,
// not computed power-of-two ticks.
func msgSizeAxis() render.Axis {
	return render.Axis{
		Label:  "Message Size (bytes)",
		Values: msgSizes,
		Labels: []string{"64", "256", "1024", "4096"},
		Scale:  render.Log2,
	}
}

var registry = []struct {
	name  string
	build func() render.Figure
}{
	{"cache-misses", CacheMisses},
	{"cycles-per-byte", CyclesPerByte},
	{"latency", Latency},
	{"throughput", Throughput},
}

// Names returns the chart names in their fixed order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Build returns the figure definition for name.
func Build(name string) (render.Figure, error) {
	for _, e := range registry {
		if e.name == name {
			return e.build(), nil
		}
	}
	return render.Figure{}, fmt.Errorf("figures: unknown figure %q", name)
}
