package ops

import "math"

// Exp is the natural exponential primitive: output = eᵃ.
//
// Backward pass: d(eᵃ)/da = eᵃ, so gradA = eᵃ * outGrad. The forward value
// is recomputed from the input rather than cached; for scalars this is
// cheaper than carrying saved state through the graph.
var Exp = &Primitive{
	Name:  "exp",
	Arity: 1,
	Forward: func(in []float64) float64 {
		return math.Exp(in[0])
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		return []float64{math.Exp(in[0]) * outGrad}
	},
}
