// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules over scalar autodiff values:
// the Module interface, trainable Parameters, Linear layers, ReLU/Sigmoid
// activations, Sequential containers and MSE/BCE losses.
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter is a trainable scalar parameter.
type Parameter = nn.Parameter

// Linear is a fully connected layer over scalar values.
type Linear = nn.Linear

// ReLU is the rectified linear activation module.
type ReLU = nn.ReLU

// Sigmoid is the logistic activation module.
type Sigmoid = nn.Sigmoid

// Sequential chains modules, feeding each module's outputs into the next.
type Sequential = nn.Sequential

// NewParameter wraps a leaf value as a trainable parameter.
func NewParameter(name string, value autodiff.Value) *Parameter {
	return nn.NewParameter(name, value)
}

// NewLinear creates a linear layer with parameters allocated as leaves in g.
func NewLinear(g *autodiff.Graph, inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(g, inFeatures, outFeatures, rng)
}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSequential creates a sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MSELoss computes the mean squared error between predictions and targets.
func MSELoss(preds, targets []autodiff.Value) autodiff.Value {
	return nn.MSELoss(preds, targets)
}

// BCELoss computes the mean binary cross-entropy between predicted
// probabilities and 0/1 targets.
func BCELoss(preds, targets []autodiff.Value) autodiff.Value {
	return nn.BCELoss(preds, targets)
}
