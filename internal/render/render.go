// Package render draws one- or two-panel line charts of pre-recorded
// benchmark series and writes them out as raster PNG files.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"sockplot/internal/logging"

	"github.com/sirupsen/logrus"
	xfont "golang.org/x/image/font"
)

// Scale selects how a panel positions its x values.
type Scale int

const (
	Linear Scale = iota
	// Log2 positions values logarithmically but keeps ticks at the
	// literal axis values instead of computed power-of-two ticks.
	Log2
)

// LegendCorner fixes the legend inside one of the top corners of a panel.
type LegendCorner int

const (
	LegendTopLeft LegendCorner = iota
	LegendTopRight
)

// Series is one named, colored, marked line within a panel. Values align
// positionally with the panel's axis values.
type Series struct {
	Label  string
	Values []float64
	Color  color.Color
	Glyph  draw.GlyphDrawer
}

// Axis is the shared independent-variable configuration for one panel.
// Labels, when set, override the formatted Values as tick text and must
// match them in length.
type Axis struct {
	Label  string
	Values []float64
	Labels []string
	Scale  Scale
}

// Panel is one plot area: an axis plus the series drawn against it.
type Panel struct {
	Title  string
	YLabel string
	X      Axis
	Series []Series
	Legend LegendCorner
}

// Figure is a complete chart: one or two panels side by side, an optional
// super title above them, a footnote band below, and a fixed output file.
type Figure struct {
	Title    string
	Footnote string
	Width    vg.Length
	Height   vg.Length
	DPI      int
	File     string
	Panels   []Panel
}

const (
	lineWidth   = vg.Length(2)  // points
	markerSize  = vg.Length(4)  // points
	panelPad    = vg.Length(18)
	titleBand   = vg.Length(26)
	footerBand  = vg.Length(30)
	edgeInset   = vg.Length(4)
	footnoteGap = vg.Length(2)
)

// Render draws fig and writes it as a PNG under dir, returning the path
// written. Any series whose length differs from its panel's axis aborts
// the render with an error; nothing is truncated or padded.
func Render(fig Figure, dir string) (string, error) {
	if len(fig.Panels) == 0 {
		return "", fmt.Errorf("render: figure %q has no panels", fig.File)
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"file":   fig.File,
		"panels": len(fig.Panels),
		"dpi":    fig.DPI,
	}).Debug("Rendering figure")

	plots := make([]*plot.Plot, len(fig.Panels))
	for i := range fig.Panels {
		p, err := buildPanel(&fig.Panels[i])
		if err != nil {
			return "", err
		}
		plots[i] = p
	}

	img := vgimg.NewWith(
		vgimg.UseWH(fig.Width, fig.Height),
		vgimg.UseDPI(fig.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	area := dc
	if fig.Title != "" {
		area = draw.Crop(area, 0, 0, 0, -titleBand)
	}
	if fig.Footnote != "" {
		area = draw.Crop(area, 0, 0, footerBand, 0)
	}
	area = draw.Crop(area, edgeInset, -edgeInset, 0, 0)

	tiles := draw.Tiles{Rows: 1, Cols: len(plots), PadX: panelPad}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, area)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	center := (dc.Min.X + dc.Max.X) / 2
	if fig.Title != "" {
		sty := plots[0].Title.TextStyle
		sty.Font.Size = vg.Points(14)
		sty.Font.Weight = xfont.WeightBold
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		dc.FillText(sty, vg.Point{X: center, Y: dc.Max.Y - edgeInset}, fig.Title)
	}
	if fig.Footnote != "" {
		sty := plots[0].Title.TextStyle
		sty.Font.Size = vg.Points(9)
		sty.Font.Weight = xfont.WeightNormal
		sty.Font.Style = xfont.StyleItalic
		sty.Color = color.Gray{Y: 110}
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		dc.FillText(sty, vg.Point{X: center, Y: dc.Min.Y + footerBand - footnoteGap}, fig.Footnote)
	}

	path := filepath.Join(dir, fig.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("render: create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("render: close %s: %w", path, err)
	}
	return path, nil
}

func buildPanel(pn *Panel) (*plot.Plot, error) {
	if err := pn.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = pn.Title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.Padding = vg.Points(6)

	p.X.Label.Text = pn.X.Label
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.TextStyle.Font.Weight = xfont.WeightBold
	p.Y.Label.Text = pn.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Weight = xfont.WeightBold

	p.X.Tick.Label.Font.Size = vg.Points(10)
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	if pn.X.Scale == Log2 {
		p.X.Scale = plot.LogScale{}
	}
	p.X.Tick.Marker = plot.ConstantTicks(pn.X.ticks())

	p.Add(newGrid())

	for _, s := range pn.Series {
		line, pts, err := plotter.NewLinePoints(zip(pn.X.Values, s.Values))
		if err != nil {
			return nil, fmt.Errorf("render: series %q: %w", s.Label, err)
		}
		line.Width = lineWidth
		line.Color = s.Color
		pts.Shape = s.Glyph
		pts.Color = s.Color
		pts.Radius = markerSize
		p.Add(line, pts)
		p.Legend.Add(s.Label, line, pts)
	}

	p.Legend.Top = true
	p.Legend.Left = pn.Legend == LegendTopLeft
	p.Legend.Padding = vg.Millimeter

	return p, nil
}

func (pn *Panel) validate() error {
	n := len(pn.X.Values)
	if n == 0 {
		return fmt.Errorf("render: panel %q has an empty axis", pn.Title)
	}
	if len(pn.X.Labels) != 0 && len(pn.X.Labels) != n {
		return fmt.Errorf("render: panel %q has %d tick labels for %d axis values",
			pn.Title, len(pn.X.Labels), n)
	}
	if len(pn.Series) == 0 {
		return fmt.Errorf("render: panel %q has no series", pn.Title)
	}
	for _, s := range pn.Series {
		if len(s.Values) != n {
			return fmt.Errorf("render: series %q has %d values, axis %q has %d",
				s.Label, len(s.Values), pn.X.Label, n)
		}
	}
	return nil
}

func (a Axis) ticks() []plot.Tick {
	ticks := make([]plot.Tick, len(a.Values))
	for i, v := range a.Values {
		label := strconv.FormatFloat(v, 'g', -1, 64)
		if i < len(a.Labels) {
			label = a.Labels[i]
		}
		ticks[i] = plot.Tick{Value: v, Label: label}
	}
	return ticks
}

func newGrid() *plotter.Grid {
	g := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(3)}
	gridGray := color.Gray{Y: 170}
	g.Vertical.Color = gridGray
	g.Vertical.Dashes = dashes
	g.Horizontal.Color = gridGray
	g.Horizontal.Dashes = dashes
	return g
}

func zip(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
