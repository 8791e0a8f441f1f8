package domain

import "go.trai.ch/zerr"

// BuildOrder computes a dependency-respecting linear order: every package
// appears after all of its workspace dependencies. It must only be called on
// a graph that already passed validation; the visiting marker below is an
// independent re-entrancy guard, not a substitute for Validate.
//
// The traversal is an iterative post-order DFS over nodes in insertion order,
// so the result is reproducible for a given workspace definition.
func (g *Graph) BuildOrder() ([]InternedString, error) {
	type frame struct {
		node  InternedString
		edges []InternedString
		next  int
	}

	state := make(map[InternedString]int, len(g.packages))
	order := make([]InternedString, 0, len(g.packages))
	var stack []frame

	push := func(name InternedString) {
		state[name] = stateVisiting
		stack = append(stack, frame{node: name, edges: g.edges[name]})
	}

	for _, root := range g.names {
		if state[root] != stateUnvisited {
			continue
		}
		push(root)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(top.edges) {
				dep := top.edges[top.next]
				top.next++

				if _, ok := g.packages[dep]; !ok {
					return nil, zerr.With(ErrValidationFailed, "unknown_package", dep.String())
				}
				switch state[dep] {
				case stateUnvisited:
					push(dep)
				case stateVisiting:
					return nil, zerr.With(ErrCycleDetected, "package", dep.String())
				}
				continue
			}

			state[top.node] = stateDone
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}
