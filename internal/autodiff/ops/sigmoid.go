package ops

import "math"

// sigmoidStable computes σ(x) = 1 / (1 + exp(-x)) without overflowing for
// large negative x: for x < 0 it evaluates the equivalent eˣ / (1 + eˣ).
func sigmoidStable(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// Sigmoid is the logistic activation primitive: output = σ(a).
//
// Backward pass: dσ/da = σ(a) * (1 - σ(a)), so
// gradA = σ(a) * (1 - σ(a)) * outGrad.
var Sigmoid = &Primitive{
	Name:  "sigmoid",
	Arity: 1,
	Forward: func(in []float64) float64 {
		return sigmoidStable(in[0])
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		s := sigmoidStable(in[0])
		return []float64{s * (1.0 - s) * outGrad}
	},
}
