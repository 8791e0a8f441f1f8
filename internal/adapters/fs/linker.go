// Package fs implements filesystem adapters for weft.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Linker = (*Linker)(nil)

// Linker maintains the linked-packages directory: one symlink per package,
// at <linkRoot>/<scope>/<baseName>, pointing at the package's build output.
type Linker struct {
	log ports.Logger
}

// NewLinker creates a new Linker with the given logger.
func NewLinker(log ports.Logger) *Linker {
	return &Linker{log: log}
}

type linkOutcome struct {
	linked  bool
	skipped bool
	warning string
}

// Sync refreshes the symlink for every package. Packages whose build output
// does not exist yet are skipped; a non-symlink occupying a link location is
// left untouched and reported; a failed symlink creation is reported. None of
// these fail the run.
//
// Packages are independent filesystem work, so they are synced in parallel.
// Outcomes are aggregated in input order, which the loader has already made
// deterministic.
func (l *Linker) Sync(ctx context.Context, linkRoot string, pkgs []domain.Package) (*domain.LinkReport, error) {
	if err := os.MkdirAll(linkRoot, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create link root")
	}

	outcomes := make([]linkOutcome, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = l.syncOne(linkRoot, pkgs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &domain.LinkReport{}
	for i, out := range outcomes {
		name := pkgs[i].Name.String()
		switch {
		case out.warning != "":
			report.Warnings = append(report.Warnings, out.warning)
			l.log.Warn(out.warning)
		case out.skipped:
			report.Skipped = append(report.Skipped, name)
		case out.linked:
			report.Linked = append(report.Linked, name)
		}
	}
	return report, nil
}

func (l *Linker) syncOne(linkRoot string, pkg domain.Package) linkOutcome {
	if _, err := os.Stat(pkg.BuildOutputPath); err != nil {
		// Nothing built yet. First-time workspace setup legitimately has no
		// build output, so this is a skip, not a problem.
		return linkOutcome{skipped: true}
	}

	target := linkPath(linkRoot, pkg)

	if info, err := os.Lstat(target); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return linkOutcome{warning: fmt.Sprintf(
				"link location for %s is occupied by a regular file or directory, leaving it untouched: %s",
				pkg.Name, target)}
		}
		if err := os.Remove(target); err != nil {
			return linkOutcome{warning: fmt.Sprintf("failed to refresh link for %s: %v", pkg.Name, err)}
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return linkOutcome{warning: fmt.Sprintf("failed to create link directory for %s: %v", pkg.Name, err)}
	}

	source, err := filepath.Abs(pkg.BuildOutputPath)
	if err != nil {
		return linkOutcome{warning: fmt.Sprintf("failed to resolve build output for %s: %v", pkg.Name, err)}
	}
	if err := os.Symlink(source, target); err != nil {
		return linkOutcome{warning: fmt.Sprintf("failed to link %s: %v", pkg.Name, err)}
	}
	return linkOutcome{linked: true}
}

// linkPath returns the conventional link location for a package, keeping the
// npm-style scope as a subdirectory: "@acme/core" lands at
// <linkRoot>/@acme/core.
func linkPath(linkRoot string, pkg domain.Package) string {
	if scope := pkg.Scope(); scope != "" {
		return filepath.Join(linkRoot, scope, pkg.BaseName())
	}
	return filepath.Join(linkRoot, pkg.BaseName())
}
