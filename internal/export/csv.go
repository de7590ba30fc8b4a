package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/plotlab/internal/plot"
)

// WriteCSV samples every curve of scene once per canvas column of v and
// writes one row per column: screen x, world x, then each curve's y.
func WriteCSV(out io.Writer, scene plot.Scene, v plot.Viewport, width int) error {
	w := csv.NewWriter(out)

	header := []string{"px", "x"}
	for _, c := range scene.Curves {
		header = append(header, c.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for px := 0; px < width; px++ {
		x := v.WorldX(float64(px))
		row[0] = strconv.Itoa(px)
		row[1] = strconv.FormatFloat(x, 'g', -1, 64)
		for i, c := range scene.Curves {
			row[2+i] = strconv.FormatFloat(c.F(x), 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// SaveCSV writes the samples to path.
func SaveCSV(path string, scene plot.Scene, v plot.Viewport, width int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, scene, v, width); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
