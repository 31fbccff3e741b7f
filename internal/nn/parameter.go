package nn

import "github.com/ember-ml/ember/internal/autodiff"

// Parameter represents a trainable scalar parameter: a named leaf value
// whose payload the optimizer updates and whose gradient accumulator the
// backward pass fills.
type Parameter struct {
	name  string
	value autodiff.Value
}

// NewParameter wraps a leaf value as a trainable parameter.
//
// Panics if value is not a leaf: a computed node's payload is owned by its
// history and must not be updated in place.
func NewParameter(name string, value autodiff.Value) *Parameter {
	if !value.IsLeaf() {
		panic("nn: parameter must wrap a leaf value, got a computed node")
	}
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name (e.g. "linear0.weight.1.0").
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying leaf value for use in expressions.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Data returns the parameter's current payload.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// Grad returns the gradient accumulated by the latest backward pass.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// Update overwrites the parameter's payload. Called by the optimizer
// during the gradient-descent step.
func (p *Parameter) Update(data float64) {
	p.value.SetData(data)
}

// ZeroGrad clears the parameter's gradient accumulator. Call before each
// training step to avoid accumulating gradients across iterations.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
