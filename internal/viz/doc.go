// Package viz plots functions and relations in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the plotter program, driven by the same scene and input
//     controllers as the window
//   - [Canvas]: Braille-based pixel canvas implementing plot.Canvas
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Arrows/hjkl - Pan
//	+ / -       - Zoom
//	Mouse drag  - Pan (wheel zooms)
//	G           - Toggle step/count grid
//	T           - Cycle color themes
//	R           - Reset the view
//	Q           - Quit
package viz
