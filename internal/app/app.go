// Package app implements the application layer for weft.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	log          ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, res *resolver.Resolver, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		log:          log,
	}
}

// ResolveOptions configures one invocation of the resolve operation.
type ResolveOptions struct {
	// Dir is where workspace discovery starts. Defaults to ".".
	Dir string

	// LinkRoot overrides the conventional linked-packages directory.
	LinkRoot string

	// ManifestPath overrides the conventional manifest location.
	ManifestPath string

	// LenientVersions downgrades the version lockstep check to a warning.
	LenientVersions bool

	// Debug mirrors log output into the workspace debug log file.
	Debug bool
}

// debugFiler is implemented by loggers that can mirror into a debug file.
type debugFiler interface {
	EnableDebugFile(path string)
}

// Resolve runs the full resolution pipeline for the workspace containing
// opts.Dir.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	ws, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace definition")
	}

	layout := domain.NewLayout(ws.Root)
	if opts.LinkRoot != "" {
		layout.LinkRoot = opts.LinkRoot
	}
	if opts.ManifestPath != "" {
		layout.ManifestPath = opts.ManifestPath
	}

	if opts.Debug {
		if dl, ok := a.log.(debugFiler); ok {
			dl.EnableDebugFile(layout.DebugLogPath)
		}
	}

	policy := domain.PolicyStrict
	if opts.LenientVersions {
		policy = domain.PolicyWarn
	}

	result, err := a.resolver.Run(ctx, ws, layout, resolver.Options{Policy: policy})
	if err != nil {
		return err
	}

	if n := len(result.Warnings); n > 0 {
		a.log.Warn(fmt.Sprintf("resolution finished with %d warning(s)", n))
	}
	a.log.Info(fmt.Sprintf("resolved %d packages (%d linked, %d resolutions), manifest at %s",
		result.Graph.Len(), len(result.Links.Linked), len(result.Resolution.Versions), result.ManifestPath))
	return nil
}
