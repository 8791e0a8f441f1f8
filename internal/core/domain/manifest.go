package domain

import "time"

// ManifestVersion is the manifest format version.
const ManifestVersion = 1

// Manifest is the persisted record of one resolution run: the graph, the
// resolved versions, and the computed build order. It is fully replaced on
// each run.
type Manifest struct {
	Version     int       `json:"version"`
	Generated   time.Time `json:"generated"`
	Fingerprint string    `json:"fingerprint,omitzero"`

	Workspaces      []ManifestWorkspace `json:"workspaces"`
	Resolutions     map[string]string   `json:"resolutions"`
	DependencyGraph ManifestGraph       `json:"dependencyGraph"`
	BuildOrder      []string            `json:"buildOrder"`
}

// ManifestWorkspace is the per-package summary in the manifest.
type ManifestWorkspace struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	EntryPoint   string            `json:"entryPoint"`
	Dependencies map[string]string `json:"dependencies"`
	BuildOutput  string            `json:"buildOutput"`
}

// ManifestGraph is the graph rendered for inspection: the node list plus the
// intra-workspace edge lists.
type ManifestGraph struct {
	Nodes []string            `json:"nodes"`
	Edges map[string][]string `json:"edges"`
}

// NewManifest assembles a manifest from a validated graph, its resolution,
// and the computed build order. Generated and Fingerprint are filled in by
// the store when the manifest is written.
func NewManifest(g *Graph, res *Resolution, order []InternedString) *Manifest {
	m := &Manifest{
		Version:     ManifestVersion,
		Workspaces:  make([]ManifestWorkspace, 0, len(res.Packages)),
		Resolutions: make(map[string]string, len(res.Versions)),
		DependencyGraph: ManifestGraph{
			Nodes: make([]string, 0, g.Len()),
			Edges: make(map[string][]string, g.Len()),
		},
		BuildOrder: make([]string, 0, len(order)),
	}

	for _, pkg := range res.Packages {
		m.Workspaces = append(m.Workspaces, ManifestWorkspace{
			Name:         pkg.Name.String(),
			Version:      pkg.Version,
			EntryPoint:   pkg.EntryPoint,
			Dependencies: pkg.Dependencies,
			BuildOutput:  pkg.BuildOutputPath,
		})
	}

	for key, version := range res.Versions {
		m.Resolutions[key.String()] = version
	}

	for _, name := range g.Names() {
		m.DependencyGraph.Nodes = append(m.DependencyGraph.Nodes, name.String())
		edges := make([]string, 0, len(g.Edges(name)))
		for _, dep := range g.Edges(name) {
			edges = append(edges, dep.String())
		}
		m.DependencyGraph.Edges[name.String()] = edges
	}

	for _, name := range order {
		m.BuildOrder = append(m.BuildOrder, name.String())
	}

	return m
}
