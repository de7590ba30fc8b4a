package plot_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plotlab/internal/plot"
)

var _ = Describe("Viewport", func() {
	var v plot.Viewport

	BeforeEach(func() {
		v = plot.NewViewport(1920, 1080, 100, 100, plot.DefaultMinScale)
	})

	It("centres the origin", func() {
		Expect(v.Origin).To(Equal(plot.Vec2{X: 960, Y: 540}))
	})

	It("maps one scale step right of the origin to world x = 1", func() {
		w := v.ScreenToWorld(plot.Vec2{X: 1060, Y: 540})
		Expect(w.X).To(BeNumerically("~", 1.0, 1e-12))
		Expect(w.Y).To(BeNumerically("~", 0.0, 1e-12))
	})

	It("inverts the y axis", func() {
		Expect(v.ScreenToWorld(plot.Vec2{X: 960, Y: 440}).Y).To(BeNumerically("~", 1.0, 1e-12))
		Expect(v.WorldToScreen(plot.Vec2{X: 0, Y: -2}).Y).To(BeNumerically("~", 740, 1e-9))
	})

	DescribeTable("round-trips screen to world to screen",
		func(origin plot.Vec2, sx, sy float64, p plot.Vec2) {
			v := plot.Viewport{Origin: origin, ScaleX: sx, ScaleY: sy, MinScale: 0.1}
			back := v.WorldToScreen(v.ScreenToWorld(p))
			Expect(back.X).To(BeNumerically("~", p.X, 1e-9))
			Expect(back.Y).To(BeNumerically("~", p.Y, 1e-9))
		},
		Entry("centred", plot.Vec2{X: 960, Y: 540}, 100.0, 100.0, plot.Vec2{X: 17, Y: 1003}),
		Entry("anisotropic", plot.Vec2{X: 12.5, Y: -80}, 3.0, 250.0, plot.Vec2{X: 2559, Y: 0}),
		Entry("minimum scale", plot.Vec2{X: -4000, Y: 9000}, 0.1, 0.1, plot.Vec2{X: 1280.5, Y: 720.25}),
		Entry("fractional origin", plot.Vec2{X: 333.7, Y: 200.2}, 42.0, 17.0, plot.Vec2{X: 0, Y: 0}),
	)

	It("round-trips a sweep of pixels", func() {
		v.Origin = plot.Vec2{X: 123.4, Y: 987.6}
		v.ScaleX, v.ScaleY = 37, 91
		for x := 0.0; x < 2560; x += 97 {
			for y := 0.0; y < 1440; y += 89 {
				back := v.WorldToScreen(v.ScreenToWorld(plot.Vec2{X: x, Y: y}))
				Expect(back.X).To(BeNumerically("~", x, 1e-9))
				Expect(back.Y).To(BeNumerically("~", y, 1e-9))
			}
		}
	})

	Describe("Zoom", func() {
		It("adds the amount to both scales", func() {
			v.Zoom(3)
			Expect(v.ScaleX).To(Equal(103.0))
			Expect(v.ScaleY).To(Equal(103.0))
		})

		It("never drops below the minimum", func() {
			steps := []float64{-1e9, 5, -3, -0.05, math.MaxFloat64 * -1, 1e-300, -99.9, -100}
			for _, s := range steps {
				v.Zoom(s)
				Expect(v.ScaleX).To(BeNumerically(">=", v.MinScale))
				Expect(v.ScaleY).To(BeNumerically(">=", v.MinScale))
			}
		})

		It("ignores non-finite amounts", func() {
			v.Zoom(math.NaN())
			v.Zoom(math.Inf(-1))
			Expect(v.ScaleX).To(Equal(100.0))
		})
	})

	It("pans by a delta", func() {
		v.Pan(plot.Vec2{X: 50, Y: 30})
		Expect(v.Origin).To(Equal(plot.Vec2{X: 1010, Y: 570}))
		v.Pan(plot.Vec2{X: math.NaN()})
		Expect(v.Origin).To(Equal(plot.Vec2{X: 1010, Y: 570}))
	})

	Describe("Validate", func() {
		It("accepts a fresh viewport", func() {
			Expect(v.Validate()).To(Succeed())
		})

		It("rejects a non-positive floor", func() {
			v.MinScale = 0
			Expect(errors.Is(v.Validate(), plot.ErrInvalidScale)).To(BeTrue())
		})

		It("rejects a scale under the floor", func() {
			v.ScaleY = 0.01
			Expect(v.Validate()).To(MatchError(plot.ErrInvalidScale))
		})
	})
})
