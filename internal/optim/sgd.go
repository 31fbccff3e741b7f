package optim

import "github.com/ember-ml/ember/internal/nn"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]float64
}

var _ Optimizer = (*SGD)(nil)

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]float64),
	}
}

// Step performs a single optimization step over all parameters.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if s.momentum == 0 {
			param.Update(param.Data() - s.lr*grad)
			continue
		}
		v := s.momentum*s.velocities[param] + grad
		s.velocities[param] = v
		param.Update(param.Data() - s.lr*v)
	}
}

// ZeroGrad clears gradient accumulators for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
