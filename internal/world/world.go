// Package world is a registry of per-frame callbacks stepped by the main
// loop. Nothing is registered by default; the loop still progresses it once
// per frame so extensions only need to register.
package world

import "github.com/san-kum/plotlab/internal/plot"

// Updater advances some piece of state by dt seconds.
type Updater interface {
	Update(w *World, dt float64)
}

// Drawer paints over the plot after the scene has been rendered.
type Drawer interface {
	Draw(w *World, c plot.Canvas)
}

// UpdateFunc adapts a function to Updater.
type UpdateFunc func(w *World, dt float64)

func (f UpdateFunc) Update(w *World, dt float64) { f(w, dt) }

// DrawFunc adapts a function to Drawer.
type DrawFunc func(w *World, c plot.Canvas)

func (f DrawFunc) Draw(w *World, c plot.Canvas) { f(w, c) }

type World struct {
	updaters []Updater
	drawers  []Drawer
	frame    uint64
	elapsed  float64
}

func New() *World {
	return &World{}
}

func (w *World) AddUpdater(u Updater) { w.updaters = append(w.updaters, u) }
func (w *World) AddDrawer(d Drawer)   { w.drawers = append(w.drawers, d) }

// Progress runs every updater in registration order and advances the clock.
// Negative dt is treated as zero.
func (w *World) Progress(dt float64) {
	if !(dt > 0) {
		dt = 0
	}
	for _, u := range w.updaters {
		u.Update(w, dt)
	}
	w.frame++
	w.elapsed += dt
}

func (w *World) Draw(c plot.Canvas) {
	for _, d := range w.drawers {
		d.Draw(w, c)
	}
}

func (w *World) Frame() uint64    { return w.frame }
func (w *World) Elapsed() float64 { return w.elapsed }
func (w *World) Empty() bool      { return len(w.updaters) == 0 && len(w.drawers) == 0 }
