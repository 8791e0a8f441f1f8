// Package domain contains the core models and graph logic for workspace
// dependency resolution.
package domain

import "strings"

// PlaceholderVersion is the dependency specifier meaning "use whatever
// version the sibling package in this workspace currently has". It is
// rewritten to a concrete version during resolution.
const PlaceholderVersion = "workspace:*"

// Package is one workspace member.
type Package struct {
	// Name is the fully-qualified package name, unique within the workspace
	// (e.g. "@acme/core").
	Name InternedString

	// Version is the package's semantic version string.
	Version string

	// EntryPoint is the path to the package's primary module. Informational
	// only; resolution never dereferences it.
	EntryPoint string

	// SourcePath is the package's source directory.
	SourcePath string

	// BuildOutputPath is where build artifacts are expected before linking.
	BuildOutputPath string

	// Dependencies maps dependency name to a version specifier: either a
	// concrete version or PlaceholderVersion.
	Dependencies map[string]string
}

// Clone returns a deep copy of the package. Resolution rewrites specifiers on
// copies so the validated input set is never mutated.
func (p Package) Clone() Package {
	deps := make(map[string]string, len(p.Dependencies))
	for name, spec := range p.Dependencies {
		deps[name] = spec
	}
	p.Dependencies = deps
	return p
}

// Scope returns the scope portion of a scoped name ("@acme/core" -> "@acme")
// and the empty string for unscoped names.
func (p Package) Scope() string {
	name := p.Name.String()
	if !strings.HasPrefix(name, "@") {
		return ""
	}
	if i := strings.Index(name, "/"); i > 0 {
		return name[:i]
	}
	return ""
}

// BaseName returns the name without its scope ("@acme/core" -> "core").
func (p Package) BaseName() string {
	name := p.Name.String()
	if strings.HasPrefix(name, "@") {
		if i := strings.Index(name, "/"); i > 0 {
			return name[i+1:]
		}
	}
	return name
}

// Workspace is the parsed workspace definition: the ordered set of member
// packages produced by the config loader. Order is the definition order and
// drives every deterministic iteration downstream.
type Workspace struct {
	Root     string
	Packages []Package
}
