package ops

import "math"

// Log is the natural logarithm primitive: output = ln(a + ε).
//
// The epsilon keeps log of zero finite; inputs are expected to be
// non-negative (the framework feeds Log probabilities and positive
// activations, not arbitrary reals).
//
// Backward pass: d(ln a)/da = 1/a, so gradA = outGrad / (a + ε).
var Log = &Primitive{
	Name:  "log",
	Arity: 1,
	Forward: func(in []float64) float64 {
		return math.Log(in[0] + epsilon)
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		return []float64{outGrad / (in[0] + epsilon)}
	},
}
