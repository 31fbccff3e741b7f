package ops

import (
	"math"
	"testing"
)

// centralDifference approximates df/dx at in[arg] for a primitive's forward
// formula using the symmetric difference quotient.
func centralDifference(p *Primitive, in []float64, arg int, h float64) float64 {
	up := make([]float64, len(in))
	down := make([]float64, len(in))
	copy(up, in)
	copy(down, in)
	up[arg] += h
	down[arg] -= h
	return (p.Forward(up) - p.Forward(down)) / (2 * h)
}

func TestForward(t *testing.T) {
	tests := []struct {
		name string
		prim *Primitive
		in   []float64
		want float64
	}{
		{"add", Add, []float64{2, 3}, 5},
		{"add negative", Add, []float64{2, -3}, -1},
		{"mul", Mul, []float64{2, 3}, 6},
		{"neg", Neg, []float64{2.5}, -2.5},
		{"exp zero", Exp, []float64{0}, 1},
		{"exp one", Exp, []float64{1}, math.E},
		{"sigmoid zero", Sigmoid, []float64{0}, 0.5},
		{"relu positive", ReLU, []float64{1.5}, 1.5},
		{"relu negative", ReLU, []float64{-1.5}, 0},
		{"relu zero", ReLU, []float64{0}, 0},
		{"lt true", Lt, []float64{1, 2}, 1},
		{"lt false", Lt, []float64{2, 1}, 0},
		{"gt true", Gt, []float64{2, 1}, 1},
		{"gt false", Gt, []float64{1, 2}, 0},
		{"eq true", Eq, []float64{1.5, 1.5}, 1},
		{"eq false", Eq, []float64{1.5, 1.6}, 0},
		{"is_close true", IsClose, []float64{1.0, 1.005}, 1},
		{"is_close false", IsClose, []float64{1.0, 1.5}, 0},
	}

	for _, tt := range tests {
		if got := tt.prim.Forward(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Forward(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestForward_EpsilonGuards(t *testing.T) {
	// Log and Inv must stay finite at zero instead of raising.
	for _, prim := range []*Primitive{Log, Inv} {
		got := prim.Forward([]float64{0})
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("%s: Forward(0) = %v, want finite", prim.Name, got)
		}
		grads := prim.Backward([]float64{0}, 1.0)
		if math.IsInf(grads[0], 0) || math.IsNaN(grads[0]) {
			t.Errorf("%s: Backward(0, 1) = %v, want finite", prim.Name, grads[0])
		}
	}

	if got, want := Log.Forward([]float64{1}), math.Log(1+1e-6); got != want {
		t.Errorf("log: Forward(1) = %v, want %v", got, want)
	}
	if got, want := Inv.Forward([]float64{2}), 1/(2+1e-6); got != want {
		t.Errorf("inv: Forward(2) = %v, want %v", got, want)
	}
}

// TestBackward_MatchesCentralDifference verifies every differentiable
// primitive against a numeric derivative of its own forward formula, at
// points away from kinks.
func TestBackward_MatchesCentralDifference(t *testing.T) {
	tests := []struct {
		name string
		prim *Primitive
		in   []float64
	}{
		{"add", Add, []float64{1.2, -3.4}},
		{"mul", Mul, []float64{1.2, -3.4}},
		{"neg", Neg, []float64{0.7}},
		{"inv", Inv, []float64{2.5}},
		{"exp", Exp, []float64{0.9}},
		{"log", Log, []float64{3.1}},
		{"sigmoid", Sigmoid, []float64{0.4}},
		{"sigmoid negative", Sigmoid, []float64{-2.2}},
		{"relu positive", ReLU, []float64{1.7}},
		{"relu negative", ReLU, []float64{-1.7}},
	}

	const outGrad = 1.0
	for _, tt := range tests {
		grads := tt.prim.Backward(tt.in, outGrad)
		if len(grads) != tt.prim.Arity {
			t.Fatalf("%s: Backward returned %d partials, want %d", tt.name, len(grads), tt.prim.Arity)
		}
		for arg := range tt.in {
			numeric := centralDifference(tt.prim, tt.in, arg, 1e-6)
			if math.Abs(grads[arg]-numeric) > 1e-6 {
				t.Errorf("%s: Backward partial %d = %v, central difference = %v",
					tt.name, arg, grads[arg], numeric)
			}
		}
	}
}

// TestBackward_ScalesWithUpstreamGradient verifies the chain-rule step
// multiplies by the upstream gradient rather than ignoring it.
func TestBackward_ScalesWithUpstreamGradient(t *testing.T) {
	in := []float64{1.3}
	base := Exp.Backward(in, 1.0)[0]
	scaled := Exp.Backward(in, 2.5)[0]
	if math.Abs(scaled-2.5*base) > 1e-12 {
		t.Errorf("exp: Backward(%v, 2.5) = %v, want %v", in, scaled, 2.5*base)
	}

	if got := Mul.Backward([]float64{3, 4}, 0)[0]; got != 0 {
		t.Errorf("mul: zero upstream gradient should yield zero partial, got %v", got)
	}
}

// TestBackward_RelationalZero verifies comparisons block gradient flow.
func TestBackward_RelationalZero(t *testing.T) {
	for _, prim := range []*Primitive{Lt, Gt, Eq, IsClose} {
		grads := prim.Backward([]float64{1, 2}, 5.0)
		for i, g := range grads {
			if g != 0 {
				t.Errorf("%s: partial %d = %v, want 0", prim.Name, i, g)
			}
		}
	}
}
