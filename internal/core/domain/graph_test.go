package domain_test

import (
	"testing"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/zerr"
)

func pkg(name, version string, deps map[string]string) domain.Package {
	return domain.Package{
		Name:         domain.NewInternedString(name),
		Version:      version,
		Dependencies: deps,
	}
}

func mustBuild(t *testing.T, pkgs ...domain.Package) *domain.Graph {
	t.Helper()
	g, err := domain.BuildGraph(&domain.Workspace{Packages: pkgs})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	return g
}

func TestGraph_AddPackage_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	p := pkg("@acme/core", "1.0.0", nil)

	if err := g.AddPackage(&p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddPackage(&p)
	if err == nil {
		t.Fatal("expected error when adding duplicate package, got nil")
	}
	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["package"].(string); !ok || name != "@acme/core" {
		t.Errorf("expected metadata package=@acme/core, got %v", meta["package"])
	}
}

func TestBuildGraph_EdgesExcludeExternal(t *testing.T) {
	g := mustBuild(t,
		pkg("@acme/app", "1.0.0", map[string]string{
			"@acme/core": domain.PlaceholderVersion,
			"@acme/util": "1.0.0",
			"left-pad":   "1.3.0",
		}),
		pkg("@acme/core", "1.0.0", nil),
		pkg("@acme/util", "1.0.0", nil),
	)

	edges := g.Edges(domain.NewInternedString("@acme/app"))
	if len(edges) != 2 {
		t.Fatalf("expected 2 intra-workspace edges, got %d: %v", len(edges), edges)
	}
	if edges[0].String() != "@acme/core" || edges[1].String() != "@acme/util" {
		t.Errorf("unexpected edges: %v", edges)
	}
}

func TestBuildGraph_PlaceholderOnNonMemberKept(t *testing.T) {
	// A placeholder claims the dependency is a workspace sibling; keeping the
	// edge lets the validator report it as unknown.
	g := mustBuild(t,
		pkg("@acme/app", "1.0.0", map[string]string{
			"@acme/ghost": domain.PlaceholderVersion,
		}),
	)

	edges := g.Edges(domain.NewInternedString("@acme/app"))
	if len(edges) != 1 || edges[0].String() != "@acme/ghost" {
		t.Fatalf("expected ghost edge to be kept, got %v", edges)
	}
}

func TestGraph_Walk_InsertionOrder(t *testing.T) {
	g := mustBuild(t,
		pkg("@acme/b", "1.0.0", nil),
		pkg("@acme/a", "1.0.0", nil),
		pkg("@acme/c", "1.0.0", nil),
	)

	var walked []string
	for p := range g.Walk() {
		walked = append(walked, p.Name.String())
	}

	want := []string{"@acme/b", "@acme/a", "@acme/c"}
	if len(walked) != len(want) {
		t.Fatalf("expected %d packages, got %d", len(want), len(walked))
	}
	for i := range want {
		if walked[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], walked[i])
		}
	}
}

func TestPackage_ScopeAndBaseName(t *testing.T) {
	scoped := pkg("@acme/core", "1.0.0", nil)
	if scoped.Scope() != "@acme" || scoped.BaseName() != "core" {
		t.Errorf("unexpected scope/base for scoped name: %q / %q", scoped.Scope(), scoped.BaseName())
	}

	plain := pkg("leftish-pad", "1.0.0", nil)
	if plain.Scope() != "" || plain.BaseName() != "leftish-pad" {
		t.Errorf("unexpected scope/base for plain name: %q / %q", plain.Scope(), plain.BaseName())
	}
}
