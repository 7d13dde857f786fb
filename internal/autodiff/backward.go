package autodiff

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backward computes the gradient of terminal with respect to itself and every
// node it was derived from.
//
// Algorithm:
//  1. Linearize the graph with a depth-first postorder from terminal, so
//     every node comes after all of its parents
//  2. Seed terminal's gradient with ones of its shape (d terminal/d terminal)
//  3. Walk the order in reverse and run each node's backward rule. Consumers
//     run before their operands, so a node's gradient is complete when its
//     own rule fires
//
// Within one pass a node reached from several consumers receives the sum of
// their contributions. Gradients are never reset: only the terminal is
// re-seeded, so a second Backward over the same graph without ZeroGrads
// replays intermediate gradients that already hold the first pass. Its
// results are undefined unless the graph has no intermediate nodes.
//
// A nil terminal fails with ErrInvalidArgument, a cyclic graph with
// ErrGraphCycle. Both are detected before any gradient is touched.
func Backward[P any](terminal *Node[P]) error {
	if terminal == nil || terminal.engine == nil {
		return errors.Wrap(ErrInvalidArgument, "backward: terminal is not a node of an engine")
	}
	order, err := postorder(terminal)
	if err != nil {
		return err
	}

	e := terminal.engine
	if klog.V(1).Enabled() {
		klog.Infof("%s backward: terminal %s, %d nodes", e.Name(), terminal, len(order))
	}

	terminal.grad = e.backend.Ones(terminal.Shape())
	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		if e.config.OnReplay != nil {
			e.config.OnReplay(node.id, node.op)
		}
		klog.V(2).Infof("%s backward: replay %s", e.Name(), node)
		if err := replay(node); err != nil {
			return errors.Wrapf(err, "backward: %s", node)
		}
	}
	return nil
}

// Backward computes gradients for n and all of its ancestors. See Backward.
func (n *Node[P]) Backward() error {
	return Backward(n)
}

// Topo returns the nodes terminal depends on, itself included, in replay
// order: every node appears before its parents.
func Topo[P any](terminal *Node[P]) ([]*Node[P], error) {
	if terminal == nil || terminal.engine == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "topo: terminal is not a node of an engine")
	}
	order, err := postorder(terminal)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

// ZeroGrads resets the gradient of terminal and of every node it depends on.
func ZeroGrads[P any](terminal *Node[P]) error {
	order, err := Topo(terminal)
	if err != nil {
		return err
	}
	for _, node := range order {
		node.ZeroGrad()
	}
	return nil
}

// Visit states for the depth-first traversal.
const (
	unvisited uint8 = iota
	inProgress
	finished
)

// postorder returns the nodes reachable from terminal through parent links,
// each after all of its parents. It walks an explicit stack so deep graphs do
// not grow the goroutine stack, and fails with ErrGraphCycle when it meets a
// node that is still on the stack.
func postorder[P any](terminal *Node[P]) ([]*Node[P], error) {
	type frame struct {
		node *Node[P]
		next int // index of the next parent to visit
	}

	state := make(map[*Node[P]]uint8)
	order := make([]*Node[P], 0, 16)
	stack := []frame{{node: terminal}}
	state[terminal] = inProgress

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			parent := top.node.parents[top.next]
			top.next++
			switch state[parent] {
			case inProgress:
				return nil, errors.Wrapf(ErrGraphCycle, "%s is an ancestor of itself (reached from %s)", parent, top.node)
			case finished:
				continue
			}
			state[parent] = inProgress
			stack = append(stack, frame{node: parent})
			continue
		}

		state[top.node] = finished
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order, nil
}
