// Package ops defines the differentiable primitive operations used to build
// scalar computation graphs.
//
// Each primitive pairs a forward numeric formula with its analytic backward
// (gradient) formula:
//   - Forward: pure function over the input payloads, no side effects
//   - Backward: one chain-rule step; returns the local partial derivative of
//     the output with respect to each input, multiplied by the upstream
//     gradient (one entry per input slot)
//
// Supported primitives:
//   - Add: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - Mul: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - Neg: negation (d(-a)/da = -1)
//   - Inv: reciprocal (d(1/a)/da = -1/a²)
//   - Exp: natural exponential (d(eᵃ)/da = eᵃ)
//   - Log: natural logarithm (d(ln a)/da = 1/a)
//   - Sigmoid: logistic function (dσ/da = σ(a)·(1-σ(a)))
//   - ReLU: rectified linear unit (d/da = 1 if a > 0, else 0)
//   - Lt, Gt, Eq, IsClose: relational ops producing 0/1, zero derivative
//
// Primitives never raise for in-domain numeric inputs. Where the math has a
// singularity near zero (Log, Inv) the formula is guarded with a small
// additive epsilon instead of producing an error or infinity.
package ops

// epsilon guards Log and Inv against division by or log of zero.
const epsilon = 1e-6

// closeTolerance is the absolute tolerance used by IsClose.
const closeTolerance = 1e-2

// Primitive is a differentiable scalar operation: a named forward formula
// paired with the backward formula implementing one chain-rule step.
//
// Arity is the exact number of inputs Forward and Backward expect. Backward
// must return exactly Arity partial gradients, one per input slot. The graph
// enforces arity at application time, so Forward and Backward may index their
// input slice without further checks.
type Primitive struct {
	// Name identifies the primitive in panics and debug output.
	Name string

	// Arity is the number of scalar inputs the primitive consumes.
	Arity int

	// Forward computes the output payload from the input payloads.
	Forward func(in []float64) float64

	// Backward computes, for each input, the partial derivative of the
	// output with respect to that input multiplied by outGrad.
	Backward func(in []float64, outGrad float64) []float64
}
