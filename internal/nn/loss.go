package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// MSELoss computes the mean squared error between predictions and targets:
//
//	loss = (1/n) * Σ_i (pred_i - target_i)²
//
// Targets are ordinary values (usually leaves); gradient flows into them
// too, which is harmless as long as the optimizer only updates parameters.
// Panics if the slices differ in length or are empty.
func MSELoss(preds, targets []autodiff.Value) autodiff.Value {
	checkPairs("mse", preds, targets)
	g := preds[0].Graph()

	total := g.Leaf(0)
	for i, p := range preds {
		diff := p.Sub(targets[i])
		total = total.Add(diff.Mul(diff))
	}
	return total.Mul(g.Leaf(1.0 / float64(len(preds))))
}

// BCELoss computes the mean binary cross-entropy between predicted
// probabilities and 0/1 targets:
//
//	loss = -(1/n) * Σ_i (y_i*log(p_i) + (1-y_i)*log(1-p_i))
//
// Predictions are expected in [0, 1] (a sigmoid output); the epsilon-guarded
// Log primitive keeps the loss finite at the endpoints.
// Panics if the slices differ in length or are empty.
func BCELoss(preds, targets []autodiff.Value) autodiff.Value {
	checkPairs("bce", preds, targets)
	g := preds[0].Graph()

	one := g.Leaf(1)
	total := g.Leaf(0)
	for i, p := range preds {
		y := targets[i]
		pos := y.Mul(p.Log())
		neg := one.Sub(y).Mul(one.Sub(p).Log())
		total = total.Add(pos.Add(neg))
	}
	return total.Mul(g.Leaf(-1.0 / float64(len(preds))))
}

func checkPairs(name string, preds, targets []autodiff.Value) {
	if len(preds) == 0 {
		panic(fmt.Sprintf("nn: %s loss requires at least one prediction", name))
	}
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("nn: %s loss got %d predictions but %d targets", name, len(preds), len(targets)))
	}
}
