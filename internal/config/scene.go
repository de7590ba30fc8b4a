package config

import (
	"fmt"

	"github.com/san-kum/plotlab/internal/functions"
	"github.com/san-kum/plotlab/internal/plot"
)

// Scene resolves curve and relation names against reg and assembles the
// frame description.
func (c *Config) Scene(reg *functions.Registry) (plot.Scene, error) {
	bg, err := plot.ParseColor(c.Plot.Background)
	if err != nil {
		return plot.Scene{}, err
	}
	s := plot.Scene{
		Background: bg,
		Grid:       c.NewGrid(),
		Thickness:  c.Plot.Thickness,
	}

	for _, cc := range c.Plot.Curves {
		f, err := reg.GetFunc(cc.Name)
		if err != nil {
			return plot.Scene{}, err
		}
		col, err := plot.ParseColor(cc.Color)
		if err != nil {
			return plot.Scene{}, fmt.Errorf("curve %s: %w", cc.Name, err)
		}
		s.Curves = append(s.Curves, plot.Curve{Name: cc.Name, F: f, Color: plot.Fade(col, c.Plot.Alpha)})
	}

	for _, rc := range c.Plot.Relations {
		r, err := reg.GetRelationTol(rc.Name, c.Plot.Tolerance)
		if err != nil {
			return plot.Scene{}, err
		}
		col, err := plot.ParseColor(rc.Color)
		if err != nil {
			return plot.Scene{}, fmt.Errorf("relation %s: %w", rc.Name, err)
		}
		s.Equations = append(s.Equations, plot.Equation{Name: rc.Name, R: r, Color: plot.Fade(col, c.Plot.Alpha)})
	}
	return s, nil
}
