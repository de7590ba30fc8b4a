package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/plotlab/internal/plot"
)

// Theme defines the terminal colour scheme: canvas colours for the grid and
// lipgloss colours for the status bar.
type Theme struct {
	Name       string
	Background color.NRGBA
	Grid       plot.GridStyle
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

func rgb(hex string) color.NRGBA {
	c, err := plot.ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func gridStyle(line, axis, label string) plot.GridStyle {
	return plot.GridStyle{Line: rgb(line), Axis: rgb(axis), Label: rgb(label), LabelSize: plot.DefaultLabelSize}
}

// Available themes
var (
	ThemeGruvbox = Theme{
		Name:       "gruvbox",
		Background: plot.GruvDark0,
		Grid:       plot.DefaultGridStyle(),
		Accent:     lipgloss.Color("#fabd2f"),
		Text:       lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Background: rgb("#0a0a0a"),
		Grid:       gridStyle("#333344", "#00ffff", "#ff00ff"),
		Accent:     lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: rgb("#001100"),
		Grid:       gridStyle("#005500", "#00ff00", "#88ff88"),
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: rgb("#000000"),
		Grid:       gridStyle("#444444", "#ffffff", "#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: rgb("#001a33"),
		Grid:       gridStyle("#1f4466", "#e0f0ff", "#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	// All available themes, in cycling order.
	Themes = []Theme{
		ThemeGruvbox,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to gruvbox.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeGruvbox
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
