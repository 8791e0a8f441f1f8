package domain

import (
	"fmt"
	"strings"
)

// VersionPolicy controls how a version lockstep violation is classified.
type VersionPolicy int

const (
	// PolicyStrict treats a version mismatch as a fatal validation error.
	PolicyStrict VersionPolicy = iota
	// PolicyWarn downgrades a version mismatch to a warning.
	PolicyWarn
)

// Report is the outcome of graph validation. Problems accumulate so a single
// run communicates the complete set of things to fix.
type Report struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no fatal problems.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Node traversal states for cycle detection.
const (
	stateUnvisited = iota
	stateVisiting
	stateDone
)

// Validate inspects the graph and accumulates every structural problem:
// edges pointing at unknown packages, cycles, and version lockstep
// violations. Unknown-dependency and cycle findings are always errors; the
// version check lands in Errors or Warnings depending on policy.
func (g *Graph) Validate(policy VersionPolicy) *Report {
	report := &Report{}
	g.checkUnknownDependencies(report)
	g.checkCycles(report)
	g.checkVersionLockstep(policy, report)
	return report
}

func (g *Graph) checkUnknownDependencies(report *Report) {
	for _, name := range g.names {
		for _, dep := range g.edges[name] {
			if _, ok := g.packages[dep]; !ok {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s depends on unknown package %s", name, dep))
			}
		}
	}
}

// checkCycles runs an iterative depth-first traversal with an explicit frame
// stack, so a pathological workspace cannot exhaust the goroutine stack.
// Finding a cycle does not stop the traversal: every node is driven to done
// so disjoint cycles are all reported.
func (g *Graph) checkCycles(report *Report) {
	type frame struct {
		node  InternedString
		edges []InternedString
		next  int
	}

	state := make(map[InternedString]int, len(g.packages))
	var stack []frame
	var path []InternedString

	push := func(name InternedString) {
		state[name] = stateVisiting
		stack = append(stack, frame{node: name, edges: g.edges[name]})
		path = append(path, name)
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
					// Already reported by the unknown-dependency check.
					continue
				}
				switch state[dep] {
				case stateUnvisited:
					push(dep)
				case stateVisiting:
					report.Errors = append(report.Errors, formatCycle(path, dep))
				}
				continue
			}

			state[top.node] = stateDone
			stack = stack[:len(stack)-1]
			path = path[:len(path)-1]
		}
	}
}

// formatCycle renders the cycle as a chain from the first occurrence of the
// repeated node through to the repeat, e.g. "cycle detected: A -> B -> C -> A".
func formatCycle(path []InternedString, repeated InternedString) string {
	start := 0
	for i, node := range path {
		if node == repeated {
			start = i
			break
		}
	}

	var b strings.Builder
	b.WriteString("cycle detected: ")
	for _, node := range path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(repeated.String())
	return b.String()
}

func (g *Graph) checkVersionLockstep(policy VersionPolicy, report *Report) {
	seen := make(map[string]bool)
	var versions []string
	for _, name := range g.names {
		v := g.packages[name].Version
		if !seen[v] {
			seen[v] = true
			versions = append(versions, v)
		}
	}
	if len(versions) <= 1 {
		return
	}

	msg := fmt.Sprintf("workspace packages must advance in lockstep, observed versions: %s",
		strings.Join(versions, ", "))
	if policy == PolicyWarn {
		report.Warnings = append(report.Warnings, msg)
		return
	}
	report.Errors = append(report.Errors, msg)
}
