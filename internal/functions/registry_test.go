package functions

import (
	"errors"
	"math"
	"testing"
)

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"xcos", "crazy", "sin", "parabola"} {
		if _, err := r.GetFunc(name); err != nil {
			t.Errorf("GetFunc(%q): %v", name, err)
		}
	}
	for _, name := range []string{"circle", "unit_circle", "hyperbola", "lemniscate", "heart"} {
		if _, err := r.GetRelation(name); err != nil {
			t.Errorf("GetRelation(%q): %v", name, err)
		}
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetFunc("nope"); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
	if _, err := r.GetRelation("nope"); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	names := r.ListFuncs()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("ListFuncs not sorted: %v", names)
		}
	}
	if len(r.ListRelations()) != 5 {
		t.Errorf("expected 5 relations, got %v", r.ListRelations())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("double", func(x float64) float64 { return 2 * x })
	f, err := r.GetFunc("double")
	if err != nil {
		t.Fatal(err)
	}
	if f(21) != 42 {
		t.Errorf("double(21) = %v", f(21))
	}
}

func TestXCos(t *testing.T) {
	tests := []struct{ x, want float64 }{
		{0, 0},
		{math.Pi, -math.Pi},
		{2 * math.Pi, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := XCos(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("XCos(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestCrazy_SmallX(t *testing.T) {
	// 2^(2x) and (2^x)^2 agree exactly for small integers, leaving -cos(x)
	for _, x := range []float64{0, 1, 2, 3} {
		if got, want := Crazy(x), -math.Cos(x); math.Abs(got-want) > 1e-9 {
			t.Errorf("Crazy(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCircle(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{math.Sqrt(10), 0, true},
		{3, 1, true},
		{1, 1, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := Circle(tt.x, tt.y); got != tt.want {
			t.Errorf("Circle(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	r := NewRegistry()
	rel, _ := r.GetRelation("circle")
	if rel(3, 1) != Circle(3, 1) || rel(1, 1) != Circle(1, 1) {
		t.Error("registry circle disagrees with Circle")
	}
}

func TestGetRelationTol(t *testing.T) {
	r := NewRegistry()
	wide, _ := r.GetRelationTol("unit_circle", 2)
	if !wide(1.5, 0) {
		t.Error("wide band should include (1.5, 0)")
	}
	narrow, _ := r.GetRelationTol("unit_circle", 0.01)
	if narrow(1.5, 0) {
		t.Error("narrow band should exclude (1.5, 0)")
	}
}
