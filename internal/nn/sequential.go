package nn

import "github.com/ember-ml/ember/internal/autodiff"

// Sequential chains modules, feeding each module's outputs into the next.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(g, 2, 8, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(g, 8, 1, rng),
//	    nn.NewSigmoid(),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward runs the inputs through every module in order.
func (s *Sequential) Forward(inputs []autodiff.Value) []autodiff.Value {
	outputs := inputs
	for _, m := range s.modules {
		outputs = m.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of all contained modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	params := make([]*Parameter, 0)
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}
