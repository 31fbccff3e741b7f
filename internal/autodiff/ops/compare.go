package ops

import "math"

// Relational primitives produce 0/1 indicator outputs. Their derivative is
// discontinuous at the decision boundary and zero everywhere else, so the
// backward pass is defined as zero for every input (no gradient flows
// through a comparison).

// zeroPair is the shared backward formula for two-input relational ops.
func zeroPair(in []float64, outGrad float64) []float64 {
	return []float64{0, 0}
}

// indicator converts a boolean condition into the 0/1 payload convention.
func indicator(cond bool) float64 {
	if cond {
		return 1
	}
	return 0
}

// Lt is the less-than primitive: output = 1 if a < b, else 0.
var Lt = &Primitive{
	Name:  "lt",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return indicator(in[0] < in[1])
	},
	Backward: zeroPair,
}

// Gt is the greater-than primitive: output = 1 if a > b, else 0.
var Gt = &Primitive{
	Name:  "gt",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return indicator(in[0] > in[1])
	},
	Backward: zeroPair,
}

// Eq is the exact-equality primitive: output = 1 if a == b, else 0.
var Eq = &Primitive{
	Name:  "eq",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return indicator(in[0] == in[1])
	},
	Backward: zeroPair,
}

// IsClose is the equality-within-tolerance primitive:
// output = 1 if |a - b| < 1e-2, else 0.
var IsClose = &Primitive{
	Name:  "is_close",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return indicator(math.Abs(in[0]-in[1]) < closeTolerance)
	},
	Backward: zeroPair,
}
