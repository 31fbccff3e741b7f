package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Linear is a fully connected layer over scalar values:
//
//	out_j = Σ_i weight[j][i] * in_i + bias[j]
//
// Weights and biases are initialized uniformly in [-1, 1] from the supplied
// random source, so runs are reproducible given a seeded rand.Rand.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      [][]*Parameter // [outFeatures][inFeatures]
	bias        []*Parameter   // [outFeatures]
}

// NewLinear creates a linear layer with parameters allocated as leaves in g.
func NewLinear(g *autodiff.Graph, inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	l := &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      make([][]*Parameter, outFeatures),
		bias:        make([]*Parameter, outFeatures),
	}
	for j := 0; j < outFeatures; j++ {
		l.weight[j] = make([]*Parameter, inFeatures)
		for i := 0; i < inFeatures; i++ {
			name := fmt.Sprintf("weight.%d.%d", j, i)
			l.weight[j][i] = NewParameter(name, g.Leaf(2*rng.Float64()-1))
		}
		l.bias[j] = NewParameter(fmt.Sprintf("bias.%d", j), g.Leaf(2*rng.Float64()-1))
	}
	return l
}

// Forward computes the layer outputs. Panics if the input width does not
// match the layer's input features.
func (l *Linear) Forward(inputs []autodiff.Value) []autodiff.Value {
	if len(inputs) != l.inFeatures {
		panic(fmt.Sprintf("nn: linear layer expects %d inputs, got %d", l.inFeatures, len(inputs)))
	}
	outputs := make([]autodiff.Value, l.outFeatures)
	for j := 0; j < l.outFeatures; j++ {
		acc := l.bias[j].Value()
		for i, in := range inputs {
			acc = acc.Add(l.weight[j][i].Value().Mul(in))
		}
		outputs[j] = acc
	}
	return outputs
}

// Parameters returns the layer's weights followed by its biases.
func (l *Linear) Parameters() []*Parameter {
	params := make([]*Parameter, 0, l.outFeatures*(l.inFeatures+1))
	for j := 0; j < l.outFeatures; j++ {
		params = append(params, l.weight[j]...)
	}
	params = append(params, l.bias...)
	return params
}
