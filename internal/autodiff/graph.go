// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Graph: a single arena of scalar nodes; edges are arena indices, so the
//     DAG carries no pointer cycles and the node identifier doubles as the
//     creation-order counter
//   - Value: a cheap handle (graph pointer + index) used to build expressions
//   - ops.Primitive: the forward/backward formula pair recorded as each
//     computed node's history
//   - Backward: Kahn's algorithm over consumer-edge counts; a node's gradient
//     is fully accumulated before it is propagated further upstream
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Leaf(3.0)
//	y := x.Mul(x) // y = x²
//	g.Backward(y)
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6.0
//
// A Graph is not safe for concurrent use: Apply appends to the arena and
// Backward mutates gradient accumulators, with no internal locking.
package autodiff

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff/ops"
)

// node is one scalar in the arena. For computed nodes, prim and inputs form
// the history: which primitive produced the payload and from which nodes.
// History is set at construction and never modified afterwards; only grad is
// mutated, and only by Backward, ZeroGrad and Value.SetData/ZeroGrad.
type node struct {
	data   float64
	grad   float64
	prim   *ops.Primitive // nil for leaves
	inputs []int          // arena indices of the inputs, in application order
}

// Graph is an arena of scalar nodes forming a computation DAG.
//
// Nodes are only ever appended, so every node's inputs have strictly smaller
// indices than the node itself — the arena order is already a topological
// order of the DAG.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty computation graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // pre-allocate for common case
	}
}

// Leaf appends a leaf node (a constant or trainable parameter) with the
// given payload and no history.
func (g *Graph) Leaf(data float64) Value {
	g.nodes = append(g.nodes, node{data: data})
	return Value{g: g, id: len(g.nodes) - 1}
}

// Apply computes prim.Forward over the inputs' payloads and appends a new
// node recording (prim, inputs) as its history.
//
// Panics if the number of inputs does not match the primitive's arity, or if
// any input belongs to a different graph. Both indicate a caller bug, not a
// recoverable condition.
func (g *Graph) Apply(prim *ops.Primitive, inputs ...Value) Value {
	if len(inputs) != prim.Arity {
		panic(fmt.Sprintf("autodiff: %s expects %d inputs, got %d", prim.Name, prim.Arity, len(inputs)))
	}

	in := make([]float64, len(inputs))
	idx := make([]int, len(inputs))
	for i, v := range inputs {
		if v.g != g {
			panic(fmt.Sprintf("autodiff: %s input %d belongs to a different graph", prim.Name, i))
		}
		in[i] = g.nodes[v.id].data
		idx[i] = v.id
	}

	g.nodes = append(g.nodes, node{
		data:   prim.Forward(in),
		prim:   prim,
		inputs: idx,
	})
	return Value{g: g, id: len(g.nodes) - 1}
}

// Len returns the number of nodes currently in the arena.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Mark returns a watermark for the current arena size. Together with
// Truncate it lets a training loop discard the expression nodes built during
// one step while keeping parameter leaves created before the mark.
func (g *Graph) Mark() int {
	return len(g.nodes)
}

// Truncate discards every node created after the given watermark. Value
// handles past the watermark become invalid and must not be used again.
//
// Panics if mark does not come from a previous call to Mark on this graph.
func (g *Graph) Truncate(mark int) {
	if mark < 0 || mark > len(g.nodes) {
		panic(fmt.Sprintf("autodiff: invalid truncation mark %d for graph of %d nodes", mark, len(g.nodes)))
	}
	g.nodes = g.nodes[:mark]
}

// ZeroGrad clears the gradient accumulator of every node in the arena.
//
// Backward never zeroes accumulators on its own; callers running multiple
// passes over overlapping graphs decide when to reset.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
