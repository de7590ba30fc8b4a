// Package plot maps between world coordinates and canvas pixels and draws
// the plotter's layers onto an abstract [Canvas].
//
// The package has no window or terminal dependency:
//
//   - [Viewport]: origin and per-axis scale, screen/world mapping, pan and zoom
//   - [Grid]: [StepGrid] (scale-responsive, labelled) and [CountGrid] (fixed cells)
//   - [DrawFunction]: piecewise-linear curve at pixel resolution
//   - [DrawEquation]: full-canvas scan of an implicit relation
//   - [Scene]: one frame, drawn in layer order
//   - [Letterbox]: fitting a fixed-resolution canvas into a window
//
// # Example
//
//	v := plot.NewViewport(2560, 1440, 100, 100, 0.1)
//	scene := plot.Scene{
//		Background: plot.GruvDark0,
//		Grid:       plot.NewStepGrid(),
//		Curves:     []plot.Curve{{Name: "sin", F: math.Sin, Color: plot.GruvBlue}},
//		Thickness:  10,
//	}
//	scene.Render(canvas, v)
//
// Coordinates on a [Canvas] grow right and down; world Y grows up.
package plot
