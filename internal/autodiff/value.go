package autodiff

import "github.com/ember-ml/ember/internal/autodiff/ops"

// Value is a handle to one scalar node in a Graph. It is a small value type:
// copying a Value aliases the same node, it never duplicates the payload.
type Value struct {
	g  *Graph
	id int
}

// Graph returns the graph that owns this value.
func (v Value) Graph() *Graph {
	return v.g
}

// ID returns the node's creation-order identifier, strictly increasing in
// construction order and unique within the graph.
func (v Value) ID() int {
	return v.id
}

// Data returns the node's numeric payload.
func (v Value) Data() float64 {
	return v.g.nodes[v.id].data
}

// SetData overwrites the node's payload. This is the optimizer's update
// hook (param -= lr * grad); it does not recompute downstream nodes.
func (v Value) SetData(data float64) {
	v.g.nodes[v.id].data = data
}

// Grad returns the node's accumulated gradient. Zero before the first
// backward pass and after ZeroGrad.
func (v Value) Grad() float64 {
	return v.g.nodes[v.id].grad
}

// ZeroGrad clears this node's gradient accumulator.
func (v Value) ZeroGrad() {
	v.g.nodes[v.id].grad = 0
}

// IsLeaf reports whether the node has no history (a constant or parameter).
func (v Value) IsLeaf() bool {
	return v.g.nodes[v.id].prim == nil
}

// Add returns a new value v + other.
func (v Value) Add(other Value) Value {
	return v.g.Apply(ops.Add, v, other)
}

// Mul returns a new value v * other.
func (v Value) Mul(other Value) Value {
	return v.g.Apply(ops.Mul, v, other)
}

// Neg returns a new value -v.
func (v Value) Neg() Value {
	return v.g.Apply(ops.Neg, v)
}

// Sub returns a new value v - other, derived as v + (-other).
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Inv returns a new value 1/v (epsilon-guarded near zero).
func (v Value) Inv() Value {
	return v.g.Apply(ops.Inv, v)
}

// Div returns a new value v / other, derived as v * (1/other).
func (v Value) Div(other Value) Value {
	return v.Mul(other.Inv())
}

// Exp returns a new value eᵛ.
func (v Value) Exp() Value {
	return v.g.Apply(ops.Exp, v)
}

// Log returns a new value ln(v) (epsilon-guarded near zero).
func (v Value) Log() Value {
	return v.g.Apply(ops.Log, v)
}

// Sigmoid returns a new value σ(v).
func (v Value) Sigmoid() Value {
	return v.g.Apply(ops.Sigmoid, v)
}

// ReLU returns a new value max(0, v).
func (v Value) ReLU() Value {
	return v.g.Apply(ops.ReLU, v)
}

// Lt returns 1 if v < other, else 0. No gradient flows through it.
func (v Value) Lt(other Value) Value {
	return v.g.Apply(ops.Lt, v, other)
}

// Gt returns 1 if v > other, else 0. No gradient flows through it.
func (v Value) Gt(other Value) Value {
	return v.g.Apply(ops.Gt, v, other)
}

// Eq returns 1 if v == other exactly, else 0. No gradient flows through it.
func (v Value) Eq(other Value) Value {
	return v.g.Apply(ops.Eq, v, other)
}

// IsClose returns 1 if |v - other| < 1e-2, else 0. No gradient flows
// through it.
func (v Value) IsClose(other Value) Value {
	return v.g.Apply(ops.IsClose, v, other)
}
