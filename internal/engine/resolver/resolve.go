package resolver

import (
	"fmt"
	"slices"

	"go.trai.ch/weft/internal/core/domain"
)

// ResolvePlaceholders rewrites every workspace placeholder specifier to the
// sibling package's concrete version, recording the choice per edge. It
// returns a new resolved package set; the input graph is not touched.
//
// A placeholder naming a package that is not a node should have been caught
// by validation; if one slips through it is skipped with a warning, since
// this stage is not the authority on graph correctness.
func ResolvePlaceholders(g *domain.Graph) (*domain.Resolution, []string) {
	res := &domain.Resolution{
		Packages: make([]domain.Package, 0, g.Len()),
		Versions: make(map[domain.EdgeKey]string),
	}
	var warnings []string

	for _, name := range g.Names() {
		pkg, _ := g.Package(name)
		resolved := pkg.Clone()

		depNames := make([]string, 0, len(resolved.Dependencies))
		for depName := range resolved.Dependencies {
			depNames = append(depNames, depName)
		}
		slices.Sort(depNames)

		for _, depName := range depNames {
			if resolved.Dependencies[depName] != domain.PlaceholderVersion {
				continue
			}

			dep, ok := g.Package(domain.NewInternedString(depName))
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"cannot resolve placeholder: %s depends on %s, which is not a workspace package", name, depName))
				continue
			}

			resolved.Dependencies[depName] = dep.Version
			res.Versions[domain.EdgeKey{Dependent: name, Dependency: dep.Name}] = dep.Version
		}

		res.Packages = append(res.Packages, resolved)
	}

	return res, warnings
}
