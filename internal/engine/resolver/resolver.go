// Package resolver implements the workspace resolution pipeline.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures one resolution run.
type Options struct {
	// Policy controls whether a version lockstep violation is fatal.
	Policy domain.VersionPolicy
}

// Result is the outcome of a successful resolution run.
type Result struct {
	Graph        *domain.Graph
	Resolution   *domain.Resolution
	BuildOrder   []string
	Links        *domain.LinkReport
	ManifestPath string

	// Warnings accumulates every non-fatal problem from validation,
	// placeholder resolution, and linking.
	Warnings []string
}

// Resolver drives the pipeline: build graph, validate, resolve placeholders,
// sync links, write the manifest. Stages run strictly in sequence; a fatal
// stage aborts the rest.
type Resolver struct {
	linker    ports.Linker
	store     ports.ManifestStore
	telemetry ports.Telemetry
	log       ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(
	linker ports.Linker,
	store ports.ManifestStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *Resolver {
	return &Resolver{
		linker:    linker,
		store:     store,
		telemetry: telemetry,
		log:       log,
	}
}

// Run resolves the given workspace against the layout.
func (r *Resolver) Run(ctx context.Context, ws *domain.Workspace, layout domain.Layout, opts Options) (*Result, error) {
	result := &Result{ManifestPath: layout.ManifestPath}

	graph, err := r.buildGraph(ctx, ws)
	if err != nil {
		return nil, err
	}
	result.Graph = graph

	if err := r.validate(ctx, graph, opts.Policy, result); err != nil {
		return nil, err
	}

	order, err := graph.BuildOrder()
	if err != nil {
		return nil, err
	}
	for _, name := range order {
		result.BuildOrder = append(result.BuildOrder, name.String())
	}

	r.resolvePlaceholders(ctx, graph, result)

	if err := r.syncLinks(ctx, layout, result); err != nil {
		return nil, err
	}

	if err := r.writeManifest(ctx, layout, order, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Resolver) buildGraph(ctx context.Context, ws *domain.Workspace) (*domain.Graph, error) {
	_, vertex := r.telemetry.Record(ctx, "build dependency graph")
	graph, err := domain.BuildGraph(ws)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d workspace packages", graph.Len()))
	return graph, nil
}

func (r *Resolver) validate(ctx context.Context, graph *domain.Graph, policy domain.VersionPolicy, result *Result) error {
	_, vertex := r.telemetry.Record(ctx, "validate dependency graph")
	report := graph.Validate(policy)

	for _, warning := range report.Warnings {
		r.log.Warn(warning)
		vertex.Log(domain.LogLevelWarn, warning)
	}
	result.Warnings = append(result.Warnings, report.Warnings...)

	if report.Valid() {
		vertex.Complete(nil)
		return nil
	}

	for _, problem := range report.Errors {
		r.log.Error(zerr.New(problem))
		vertex.Log(domain.LogLevelError, problem)
	}
	err := zerr.With(domain.ErrValidationFailed, "problem_count", len(report.Errors))
	vertex.Complete(err)
	return err
}

func (r *Resolver) resolvePlaceholders(ctx context.Context, graph *domain.Graph, result *Result) {
	_, vertex := r.telemetry.Record(ctx, "resolve placeholder versions")
	resolution, warnings := ResolvePlaceholders(graph)
	for _, warning := range warnings {
		r.log.Warn(warning)
		vertex.Log(domain.LogLevelWarn, warning)
	}
	result.Warnings = append(result.Warnings, warnings...)
	result.Resolution = resolution
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d placeholder versions resolved", len(resolution.Versions)))
	vertex.Complete(nil)
}

func (r *Resolver) syncLinks(ctx context.Context, layout domain.Layout, result *Result) error {
	ctx, vertex := r.telemetry.Record(ctx, "sync package links")
	report, err := r.linker.Sync(ctx, layout.LinkRoot, result.Resolution.Packages)
	vertex.Complete(err)
	if err != nil {
		return zerr.Wrap(err, "link sync failed")
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%d linked, %d skipped", len(report.Linked), len(report.Skipped)))
	result.Links = report
	result.Warnings = append(result.Warnings, report.Warnings...)
	return nil
}

func (r *Resolver) writeManifest(ctx context.Context, layout domain.Layout, order []domain.InternedString, result *Result) error {
	_, vertex := r.telemetry.Record(ctx, "write resolution manifest")
	m := domain.NewManifest(result.Graph, result.Resolution, order)
	err := r.store.Write(layout.ManifestPath, m)
	vertex.Complete(err)
	if err != nil {
		return err
	}
	return nil
}
