package figures

import (
	"gopkg.in/yaml.v3"

	"sockplot/internal/render"
)

// Description is a YAML-friendly view of a figure definition.
type Description struct {
	Name   string             `yaml:"name"`
	Title  string             `yaml:"title"`
	File   string             `yaml:"file"`
	DPI    int                `yaml:"dpi"`
	Panels []PanelDescription `yaml:"panels"`
}

type PanelDescription struct {
	Title   string              `yaml:"title"`
	XLabel  string              `yaml:"x_label"`
	YLabel  string              `yaml:"y_label"`
	Scale   string              `yaml:"scale"`
	XValues []float64           `yaml:"x_values"`
	Series  []SeriesDescription `yaml:"series"`
}

type SeriesDescription struct {
	Label  string    `yaml:"label"`
	Values []float64 `yaml:"values"`
}

// Describe returns the description of the named figure.
func Describe(name string) (Description, error) {
	fig, err := Build(name)
	if err != nil {
		return Description{}, err
	}

	title := fig.Title
	if title == "" && len(fig.Panels) > 0 {
		title = fig.Panels[0].Title
	}

	desc := Description{
		Name:  name,
		Title: title,
		File:  fig.File,
		DPI:   fig.DPI,
	}
	for _, pn := range fig.Panels {
		scale := "linear"
		if pn.X.Scale == render.Log2 {
			scale = "log2"
		}
		pd := PanelDescription{
			Title:   pn.Title,
			XLabel:  pn.X.Label,
			YLabel:  pn.YLabel,
			Scale:   scale,
			XValues: pn.X.Values,
		}
		for _, s := range pn.Series {
			pd.Series = append(pd.Series, SeriesDescription{Label: s.Label, Values: s.Values})
		}
		desc.Panels = append(desc.Panels, pd)
	}
	return desc, nil
}

// YAML renders the description as a YAML document.
func (d Description) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
