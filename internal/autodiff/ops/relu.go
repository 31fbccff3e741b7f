package ops

// ReLU is the rectified linear unit primitive: output = max(0, a).
//
// Backward pass: the derivative is 1 for a > 0 and 0 otherwise. At a == 0,
// where the true derivative is undefined, the subgradient 0 is used.
var ReLU = &Primitive{
	Name:  "relu",
	Arity: 1,
	Forward: func(in []float64) float64 {
		if in[0] > 0 {
			return in[0]
		}
		return 0
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		if in[0] > 0 {
			return []float64{outGrad}
		}
		return []float64{0}
	},
}
