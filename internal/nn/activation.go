package nn

import "github.com/ember-ml/ember/internal/autodiff"

// ReLU applies the rectified linear unit element-wise. Stateless.
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies max(0, x) to each input.
func (r *ReLU) Forward(inputs []autodiff.Value) []autodiff.Value {
	outputs := make([]autodiff.Value, len(inputs))
	for i, in := range inputs {
		outputs[i] = in.ReLU()
	}
	return outputs
}

// Parameters returns an empty slice; ReLU has no trainable state.
func (r *ReLU) Parameters() []*Parameter {
	return []*Parameter{}
}

// Sigmoid applies the logistic function element-wise. Stateless.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies σ(x) to each input.
func (s *Sigmoid) Forward(inputs []autodiff.Value) []autodiff.Value {
	outputs := make([]autodiff.Value, len(inputs))
	for i, in := range inputs {
		outputs[i] = in.Sigmoid()
	}
	return outputs
}

// Parameters returns an empty slice; Sigmoid has no trainable state.
func (s *Sigmoid) Parameters() []*Parameter {
	return []*Parameter{}
}
