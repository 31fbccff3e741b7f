package ops

// Add is the scalar addition primitive: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so gradA = outGrad
//   - d(a+b)/db = 1, so gradB = outGrad
var Add = &Primitive{
	Name:  "add",
	Arity: 2,
	Forward: func(in []float64) float64 {
		return in[0] + in[1]
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		return []float64{outGrad, outGrad}
	},
}
