// Package dataset generates small 2D point classification datasets for
// training and demos. Each generator labels points in the unit square with
// a binary class according to a simple geometric rule.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// Point is a single 2D sample in the unit square.
type Point struct {
	X1 float64
	X2 float64
}

// Dataset pairs N points with their 0/1 labels.
type Dataset struct {
	Name string
	N    int
	X    []Point
	Y    []int
}

// Names lists the available generators in the order they are documented.
func Names() []string {
	return []string{"simple", "diag", "split", "xor", "circle", "spiral"}
}

// ByName builds the named dataset with n points drawn from rng. Returns an
// error for unknown names so the CLI can report bad input cleanly.
func ByName(name string, n int, rng *rand.Rand) (*Dataset, error) {
	switch name {
	case "simple":
		return Simple(n, rng), nil
	case "diag":
		return Diag(n, rng), nil
	case "split":
		return Split(n, rng), nil
	case "xor":
		return Xor(n, rng), nil
	case "circle":
		return Circle(n, rng), nil
	case "spiral":
		return Spiral(n), nil
	default:
		return nil, fmt.Errorf("dataset: unknown dataset %q (want one of %v)", name, Names())
	}
}

func makePoints(n int, rng *rand.Rand) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X1: rng.Float64(), X2: rng.Float64()}
	}
	return pts
}

func classify(name string, pts []Point, rule func(p Point) bool) *Dataset {
	y := make([]int, len(pts))
	for i, p := range pts {
		if rule(p) {
			y[i] = 1
		}
	}
	return &Dataset{Name: name, N: len(pts), X: pts, Y: y}
}

// Simple labels points left of the vertical midline as class 1.
func Simple(n int, rng *rand.Rand) *Dataset {
	return classify("simple", makePoints(n, rng), func(p Point) bool {
		return p.X1 < 0.5
	})
}

// Diag labels points below the main diagonal (x1 + x2 < 0.5) as class 1.
func Diag(n int, rng *rand.Rand) *Dataset {
	return classify("diag", makePoints(n, rng), func(p Point) bool {
		return p.X1+p.X2 < 0.5
	})
}

// Split labels points in the outer vertical bands (x1 < 0.2 or x1 > 0.8)
// as class 1.
func Split(n int, rng *rand.Rand) *Dataset {
	return classify("split", makePoints(n, rng), func(p Point) bool {
		return p.X1 < 0.2 || p.X1 > 0.8
	})
}

// Xor labels points in the off-diagonal quadrants as class 1.
func Xor(n int, rng *rand.Rand) *Dataset {
	return classify("xor", makePoints(n, rng), func(p Point) bool {
		return (p.X1 < 0.5 && p.X2 > 0.5) || (p.X1 > 0.5 && p.X2 < 0.5)
	})
}

// Circle labels points outside a circle of squared radius 0.1 centered in
// the unit square as class 1.
func Circle(n int, rng *rand.Rand) *Dataset {
	return classify("circle", makePoints(n, rng), func(p Point) bool {
		dx, dy := p.X1-0.5, p.X2-0.5
		return dx*dx+dy*dy > 0.1
	})
}

// Spiral generates two interleaved spiral arms, one per class. The point
// layout is deterministic (no random source): each arm traces
// t·cos(t)/20, t·sin(t)/20 around the center of the unit square.
func Spiral(n int) *Dataset {
	xt := func(t float64) float64 { return t * math.Cos(t) / 20.0 }
	yt := func(t float64) float64 { return t * math.Sin(t) / 20.0 }

	half := n / 2
	pts := make([]Point, 0, 2*half)
	labels := make([]int, 0, 2*half)
	for i := 0; i < half; i++ {
		t := 10.0 * float64(i) / float64(half)
		pts = append(pts, Point{X1: xt(t) + 0.5, X2: yt(t) + 0.5})
		labels = append(labels, 0)
	}
	for i := 0; i < half; i++ {
		t := -10.0 * float64(i) / float64(half)
		pts = append(pts, Point{X1: yt(t) + 0.5, X2: xt(t) + 0.5})
		labels = append(labels, 1)
	}
	return &Dataset{Name: "spiral", N: len(pts), X: pts, Y: labels}
}
