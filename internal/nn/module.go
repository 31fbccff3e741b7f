// Package nn implements neural network modules over scalar autodiff values.
//
// This package provides the building blocks for small scalar-valued models:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable leaf values with gradient tracking
//   - Linear: fully connected layer over scalars
//   - Activations: ReLU, Sigmoid
//   - Loss functions: MSE, BCE
//   - Sequential: container for stacking layers
//
// Design inspired by PyTorch's nn.Module, specialized to the scalar engine.
package nn

import "github.com/ember-ml/ember/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build small classifiers:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(g, 2, 8, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(g, 8, 1, rng),
//	    nn.NewSigmoid(),
//	)
type Module interface {
	// Forward computes the module's outputs for the given input values.
	// Inputs and outputs live in the same graph as the module's parameters.
	Forward(inputs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Returns an empty slice for
	// modules without trainable state (e.g. activations).
	Parameters() []*Parameter
}
