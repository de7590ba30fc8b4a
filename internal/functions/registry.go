package functions

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/plotlab/internal/plot"
)

// ErrUnknownFunction is returned for names missing from a Registry.
var ErrUnknownFunction = errors.New("functions: unknown function")

// Registry maps names to plottable functions and relations.
type Registry struct {
	funcs     map[string]plot.Func
	relations map[string]func(eq func(a, b float64) bool) plot.Relation
}

// NewRegistry returns a registry with the built-in catalogue. Relations use
// plot.LooseEquals unless GetRelationTol is given another band.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:     make(map[string]plot.Func),
		relations: make(map[string]func(func(a, b float64) bool) plot.Relation),
	}

	r.funcs["xcos"] = XCos
	r.funcs["crazy"] = Crazy
	r.funcs["sin"] = math.Sin
	r.funcs["tanh"] = math.Tanh
	r.funcs["parabola"] = func(x float64) float64 { return x * x }
	r.funcs["cubic"] = func(x float64) float64 { return x*x*x - 3*x }
	r.funcs["sinc"] = func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(x) / x
	}

	r.relations["circle"] = func(eq func(a, b float64) bool) plot.Relation {
		return func(x, y float64) bool { return eq(x*x+y*y, 10) }
	}
	r.relations["unit_circle"] = func(eq func(a, b float64) bool) plot.Relation {
		return func(x, y float64) bool { return eq(x*x+y*y, 1) }
	}
	r.relations["hyperbola"] = func(eq func(a, b float64) bool) plot.Relation {
		return func(x, y float64) bool { return eq(x*x-y*y, 4) }
	}
	r.relations["lemniscate"] = func(eq func(a, b float64) bool) plot.Relation {
		return func(x, y float64) bool {
			s := x*x + y*y
			return eq(s*s, 8*(x*x-y*y))
		}
	}
	r.relations["heart"] = func(eq func(a, b float64) bool) plot.Relation {
		return func(x, y float64) bool {
			s := x*x + y*y - 1
			return eq(s*s*s, x*x*y*y*y)
		}
	}

	return r
}

// XCos is x·cos(x).
func XCos(x float64) float64 {
	return x * math.Cos(x)
}

// Crazy is sin(2^(2x) - (2^x)²) - cos(x). The sine argument is zero in exact
// arithmetic; rounding makes it noisy for large x.
func Crazy(x float64) float64 {
	return math.Sin(math.Pow(2, 2*x)-math.Pow(math.Pow(2, x), 2)) - math.Cos(x)
}

// Circle is x²+y² = 10 with the default tolerance.
func Circle(x, y float64) bool {
	return plot.LooseEquals(x*x+y*y, 10)
}

// Register adds or replaces a named function.
func (r *Registry) Register(name string, f plot.Func) {
	r.funcs[name] = f
}

func (r *Registry) GetFunc(name string) (plot.Func, error) {
	f, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFunction, name, r.ListFuncs())
	}
	return f, nil
}

func (r *Registry) GetRelation(name string) (plot.Relation, error) {
	return r.GetRelationTol(name, plot.DefaultTolerance)
}

// GetRelationTol builds the named relation with a custom equality band.
func (r *Registry) GetRelationTol(name string, tol float64) (plot.Relation, error) {
	build, ok := r.relations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFunction, name, r.ListRelations())
	}
	if tol <= 0 {
		tol = plot.DefaultTolerance
	}
	return build(plot.Tolerance(tol)), nil
}

func (r *Registry) ListFuncs() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListRelations() []string {
	names := make([]string, 0, len(r.relations))
	for name := range r.relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
