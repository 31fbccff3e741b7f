// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built by applying differentiable primitives to values in
// a Graph; calling Backward on the final (loss) value populates gradient
// accumulators on every ancestor via the chain rule.
//
// Example:
//
//	import "github.com/ember-ml/ember/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Leaf(3.0)
//	    y := x.Mul(x) // y = x²
//	    g.Backward(y)
//	    fmt.Println(x.Grad()) // 6.0
//	}
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/autodiff/ops"
)

// Graph is an arena of scalar nodes forming a computation DAG.
type Graph = autodiff.Graph

// Value is a handle to one scalar node in a Graph.
type Value = autodiff.Value

// Primitive is a differentiable scalar operation (forward/backward pair).
type Primitive = ops.Primitive

// NewGraph creates an empty computation graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// The primitive catalog, re-exported for callers that use Graph.Apply
// directly instead of the Value builder methods.
var (
	Add     = ops.Add
	Mul     = ops.Mul
	Neg     = ops.Neg
	Inv     = ops.Inv
	Exp     = ops.Exp
	Log     = ops.Log
	Sigmoid = ops.Sigmoid
	ReLU    = ops.ReLU
	Lt      = ops.Lt
	Gt      = ops.Gt
	Eq      = ops.Eq
	IsClose = ops.IsClose
)
