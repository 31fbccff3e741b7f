package ops

// Neg is the scalar negation primitive: output = -a.
//
// Backward pass: d(-a)/da = -1, so gradA = -outGrad.
var Neg = &Primitive{
	Name:  "neg",
	Arity: 1,
	Forward: func(in []float64) float64 {
		return -in[0]
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		return []float64{-outGrad}
	},
}
