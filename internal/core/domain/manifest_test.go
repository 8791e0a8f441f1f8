package domain_test

import (
	"testing"

	"go.trai.ch/weft/internal/core/domain"
)

func TestNewManifest(t *testing.T) {
	g := mustBuild(t,
		pkg("@acme/app", "2.3.1", map[string]string{"@acme/core": domain.PlaceholderVersion}),
		pkg("@acme/core", "2.3.1", nil),
	)
	order, err := g.BuildOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app := domain.NewInternedString("@acme/app")
	core := domain.NewInternedString("@acme/core")
	res := &domain.Resolution{
		Packages: []domain.Package{
			pkg("@acme/app", "2.3.1", map[string]string{"@acme/core": "2.3.1"}),
			pkg("@acme/core", "2.3.1", nil),
		},
		Versions: map[domain.EdgeKey]string{
			{Dependent: app, Dependency: core}: "2.3.1",
		},
	}

	m := domain.NewManifest(g, res, order)

	if m.Version != domain.ManifestVersion {
		t.Errorf("expected manifest version %d, got %d", domain.ManifestVersion, m.Version)
	}
	if got := m.Resolutions["@acme/app->@acme/core"]; got != "2.3.1" {
		t.Errorf("expected flattened resolution 2.3.1, got %q", got)
	}
	if len(m.Workspaces) != 2 {
		t.Fatalf("expected 2 workspace summaries, got %d", len(m.Workspaces))
	}
	if len(m.DependencyGraph.Nodes) != 2 {
		t.Errorf("expected 2 nodes, got %v", m.DependencyGraph.Nodes)
	}
	if edges := m.DependencyGraph.Edges["@acme/app"]; len(edges) != 1 || edges[0] != "@acme/core" {
		t.Errorf("unexpected edges for @acme/app: %v", edges)
	}
	if len(m.BuildOrder) != 2 || m.BuildOrder[0] != "@acme/core" || m.BuildOrder[1] != "@acme/app" {
		t.Errorf("unexpected build order: %v", m.BuildOrder)
	}
}
