// Package optim implements optimization algorithms for training scalar
// models.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    mark := g.Mark()
//	    loss := forward(model, data)
//	    optimizer.ZeroGrad()
//	    g.Backward(loss)
//	    optimizer.Step()
//	    g.Truncate(mark)
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Gradients live on the parameters' graph nodes, so Step reads each
// parameter's accumulator directly after a backward pass.
type Optimizer interface {
	// Step applies one gradient update to all parameters in place.
	Step()

	// ZeroGrad clears all parameter gradient accumulators. Call before
	// each backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float64
}
