package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the whole-workspace dependency view: one node per member package
// and, per node, the set of dependencies that stay inside the workspace.
// External dependencies carry no ordering information and are excluded.
//
// Node iteration order is insertion order, so a given workspace definition
// always produces the same validation report and build order.
type Graph struct {
	packages map[InternedString]Package
	names    []InternedString
	edges    map[InternedString][]InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		packages: make(map[InternedString]Package),
		edges:    make(map[InternedString][]InternedString),
	}
}

// AddPackage adds a node to the graph.
// It returns an error if a package with the same name already exists.
func (g *Graph) AddPackage(p *Package) error {
	if _, exists := g.packages[p.Name]; exists {
		return zerr.With(ErrPackageAlreadyExists, "package", p.Name.String())
	}
	g.packages[p.Name] = *p
	g.names = append(g.names, p.Name)
	return nil
}

// BuildGraph converts a workspace definition into a dependency graph.
//
// An edge is kept for a declared dependency when the target is another
// workspace member, or when the specifier is the workspace placeholder: a
// placeholder pointing at a non-member is a configuration mistake the
// validator must be able to see. Concrete-versioned dependencies on
// non-members are external and play no role in ordering, so they are dropped.
//
// No structural problems are reported here; the validator surfaces them all
// in one pass instead of failing on the first bad edge.
func BuildGraph(ws *Workspace) (*Graph, error) {
	g := NewGraph()
	for i := range ws.Packages {
		if err := g.AddPackage(&ws.Packages[i]); err != nil {
			return nil, err
		}
	}

	for _, name := range g.names {
		pkg := g.packages[name]
		var targets []InternedString
		for depName, spec := range pkg.Dependencies {
			dep := NewInternedString(depName)
			if _, member := g.packages[dep]; member || spec == PlaceholderVersion {
				targets = append(targets, dep)
			}
		}
		slices.SortFunc(targets, func(a, b InternedString) int {
			return compareNames(a, b)
		})
		g.edges[name] = targets
	}

	return g, nil
}

func compareNames(a, b InternedString) int {
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.packages)
}

// Names returns the node names in insertion order.
func (g *Graph) Names() []InternedString {
	return slices.Clone(g.names)
}

// Package returns the node with the given name.
func (g *Graph) Package(name InternedString) (Package, bool) {
	pkg, ok := g.packages[name]
	return pkg, ok
}

// Edges returns the intra-workspace dependency names of the given node,
// sorted by name.
func (g *Graph) Edges(name InternedString) []InternedString {
	return slices.Clone(g.edges[name])
}

// Walk returns an iterator over the packages in insertion order.
func (g *Graph) Walk() iter.Seq[Package] {
	return func(yield func(Package) bool) {
		for _, name := range g.names {
			if !yield(g.packages[name]) {
				return
			}
		}
	}
}
