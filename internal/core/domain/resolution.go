package domain

// EdgeKey identifies one directed dependency edge.
type EdgeKey struct {
	Dependent  InternedString
	Dependency InternedString
}

// String renders the edge in the manifest's "dependent->dependency" form.
func (k EdgeKey) String() string {
	return k.Dependent.String() + "->" + k.Dependency.String()
}

// Resolution is the outcome of placeholder resolution: a new set of package
// copies with placeholder specifiers rewritten to concrete versions, plus the
// version chosen for each rewritten edge. The validated graph it was produced
// from is left untouched.
type Resolution struct {
	// Packages holds the resolved copies, in graph insertion order.
	Packages []Package

	// Versions maps each rewritten edge to the concrete version chosen.
	// Edges that already carried a concrete specifier are not recorded.
	Versions map[EdgeKey]string
}

// Package returns the resolved copy with the given name.
func (r *Resolution) Package(name InternedString) (Package, bool) {
	for i := range r.Packages {
		if r.Packages[i].Name == name {
			return r.Packages[i], true
		}
	}
	return Package{}, false
}
