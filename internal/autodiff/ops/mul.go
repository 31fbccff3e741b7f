package ops

// Mul is the scalar multiplication primitive: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so gradA = b * outGrad
//   - d(a*b)/db = a, so gradB = a * outGrad
//
// When both input slots reference the same node (x * x) the two partials are
// accumulated separately by the graph, yielding the expected 2x.
var Mul = &Primitive{
	Name:  "mul",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return in[0] * in[1]
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		return []float64{in[1] * outGrad, in[0] * outGrad}
	},
}
