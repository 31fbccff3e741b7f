package ops

// Inv is the scalar reciprocal primitive: output = 1 / (a + ε).
//
// The epsilon keeps the forward and backward formulas finite near zero
// instead of raising a domain error.
//
// Backward pass: d(1/a)/da = -1/a², so gradA = -outGrad / (a + ε)².
var Inv = &Primitive{
	Name:  "inv",
	Arity: 1,
	Forward: func(in []float64) float64 {
		return 1.0 / (in[0] + epsilon)
	},
	Backward: func(in []float64, outGrad float64) []float64 {
		d := in[0] + epsilon
		return []float64{-outGrad / (d * d)}
	},
}
