package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/plotlab/internal/export"
	"github.com/san-kum/plotlab/internal/functions"
	"github.com/san-kum/plotlab/internal/gui"
	"github.com/san-kum/plotlab/internal/plot"
	"github.com/san-kum/plotlab/internal/raster"
	"github.com/san-kum/plotlab/internal/viz"
	"github.com/san-kum/plotlab/internal/world"
)

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	app, err := gui.NewApp(cfg, scene, world.New(), logger)
	if err != nil {
		return err
	}
	return app.Run()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, scene)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, scene, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if outWidth > 0 {
		cfg.Window.Width = outWidth
	}
	if outHeight > 0 {
		cfg.Window.Height = outHeight
	}
	view := cfg.Viewport()

	switch ext := strings.ToLower(filepath.Ext(outFile)); ext {
	case ".png":
		c, err := raster.New(cfg.Window.Width, cfg.Window.Height)
		if err != nil {
			return err
		}
		defer c.Close()
		if err := c.LoadFont(cfg.Font.Path); err != nil {
			logger.Debug("using embedded font", "err", err)
		}
		scene.Render(c, view)
		if err := c.SavePNG(outFile); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	case ".svg":
		c, err := export.NewSVG(cfg.Window.Width, cfg.Window.Height)
		if err != nil {
			return err
		}
		scene.Render(c, view)
		if err := c.Save(outFile); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	case ".csv":
		if err := export.SaveCSV(outFile, scene, view, cfg.Window.Width); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	default:
		return fmt.Errorf("export: unsupported format %q (want .png, .svg or .csv)", ext)
	}

	logger.Info("export written", "path", outFile, "width", cfg.Window.Width, "height", cfg.Window.Height)
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runASCII(cmd *cobra.Command, args []string) error {
	name := "xcos"
	if len(args) > 0 {
		name = args[0]
	}
	f, err := functions.NewRegistry().GetFunc(name)
	if err != nil {
		return err
	}
	data, err := sample(f, xFrom, xTo, graphWidth)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("%s on [%g, %g]", name, xFrom, xTo)),
	)
	fmt.Println(graph)
	return nil
}

// sample evaluates f at n evenly spaced points in [from, to]. Non-finite
// results are replaced by NaN, which asciigraph leaves blank.
func sample(f plot.Func, from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	if !(to > from) {
		return nil, fmt.Errorf("empty range [%g, %g]", from, to)
	}
	data := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range data {
		y := f(from + float64(i)*step)
		if math.IsInf(y, 0) {
			y = math.NaN()
		}
		data[i] = y
	}
	return data, nil
}

// exists reports whether path is present, for config init.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
