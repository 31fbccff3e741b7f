package autodiff

import (
	"container/heap"
	"fmt"
)

// Backward propagates gradients from root to every ancestor, seeding the
// root's accumulator with 1.0 (d(root)/d(root)).
func (g *Graph) Backward(root Value) {
	g.BackwardSeed(root, 1.0)
}

// BackwardSeed implements the chain rule over the DAG reachable backward
// from root.
//
// Algorithm:
//  1. Traverse input edges from root to discover the ancestor set, counting
//     for each ancestor how many edges within the set consume it.
//  2. Set the root's accumulator to seed.
//  3. Process nodes with Kahn's algorithm: a node becomes ready only once
//     every consuming edge has delivered its contribution, so its gradient
//     is final when its own primitive's backward formula runs. Ties between
//     ready nodes are broken most-recently-created first, which makes the
//     processing order deterministic for a given construction order.
//  4. For each ready non-leaf node, invoke the primitive's backward with the
//     recorded input payloads and the node's accumulated gradient, and add
//     each resulting partial into the corresponding input's accumulator —
//     one contribution per input slot, so a node consumed twice by the same
//     application (x * x) accumulates both partials.
//
// Leaves retain their accumulated gradient; a root with no history is a
// no-op pass beyond receiving the seed. Accumulators are never implicitly
// zeroed: between independent passes the caller resets them via ZeroGrad.
//
// Panics if root belongs to a different graph, or if a node's recorded
// history disagrees with its primitive's arity (a corrupt graph — should be
// unreachable when nodes are built through Apply).
func (g *Graph) BackwardSeed(root Value, seed float64) {
	if root.g != g {
		panic("autodiff: backward root belongs to a different graph")
	}

	// Step 1: ancestor discovery and consumer-edge counts. pending doubles
	// as the visited set; counts increase once per edge, not once per node.
	pending := map[int]int{root.id: 0}
	stack := []int{root.id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, in := range g.nodes[id].inputs {
			if _, seen := pending[in]; !seen {
				pending[in] = 0
				stack = append(stack, in)
			}
			pending[in]++
		}
	}

	g.nodes[root.id].grad = seed

	ready := &idMaxHeap{root.id}
	for ready.Len() > 0 {
		id := heap.Pop(ready).(int)
		n := &g.nodes[id]
		if n.prim == nil {
			continue // leaf: accumulated gradient is the final result
		}
		if len(n.inputs) != n.prim.Arity {
			panic(fmt.Sprintf("autodiff: corrupt history: %s node recorded %d inputs, primitive expects %d",
				n.prim.Name, len(n.inputs), n.prim.Arity))
		}

		in := make([]float64, len(n.inputs))
		for i, inID := range n.inputs {
			in[i] = g.nodes[inID].data
		}
		partials := n.prim.Backward(in, n.grad)

		for i, inID := range n.inputs {
			g.nodes[inID].grad += partials[i]
			pending[inID]--
			if pending[inID] == 0 {
				heap.Push(ready, inID)
			}
		}
	}
}

// idMaxHeap orders ready node ids most-recently-created first.
type idMaxHeap []int

func (h idMaxHeap) Len() int           { return len(h) }
func (h idMaxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h idMaxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idMaxHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *idMaxHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
