package commands_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/weft/cmd/weft/commands"
	"go.trai.ch/weft/internal/adapters/config"
	"go.trai.ch/weft/internal/adapters/fs"
	"go.trai.ch/weft/internal/adapters/logger"
	"go.trai.ch/weft/internal/adapters/manifest"
	"go.trai.ch/weft/internal/adapters/telemetry"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/engine/resolver"
)

func newCLI(t *testing.T) *commands.CLI {
	t.Helper()
	log := logger.New()
	log.SetOutput(io.Discard)
	res := resolver.NewResolver(
		fs.NewLinker(log),
		manifest.NewStoreWithClock(clockwork.NewFakeClock()),
		telemetry.NewNoOp(),
		log,
	)
	return commands.New(app.New(config.NewLoader(log), res, log))
}

// writeWorkspace lays out a two-package workspace with one built package.
func writeWorkspace(t *testing.T, versions map[string]string) string {
	t.Helper()
	root := t.TempDir()

	workfile := "version: \"1\"\nworkspaces:\n"
	for _, name := range []string{"core", "app"} {
		workfile += "  " + name + ":\n    version: " + versions[name] + "\n"
		if name == "app" {
			workfile += "    dependencies:\n      core: \"workspace:*\"\n"
		}
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.WorkFileName), []byte(workfile), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "core", "dist"), 0o750))
	return root
}

func TestCLI_Help(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_Version(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_UnknownCommand(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"frobnicate"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCLI_Resolve(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"core": "1.0.0", "app": "1.0.0"})

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", root})
	require.NoError(t, cli.Execute(context.Background()))

	layout := domain.NewLayout(root)
	if _, err := os.Readlink(filepath.Join(layout.LinkRoot, "core")); err != nil {
		t.Errorf("expected core link: %v", err)
	}
	if _, err := os.Stat(layout.ManifestPath); err != nil {
		t.Errorf("expected manifest: %v", err)
	}
}

func TestCLI_Resolve_NoWorkspace(t *testing.T) {
	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", t.TempDir()})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestCLI_Resolve_VersionMismatch(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"core": "1.0.0", "app": "1.0.1"})

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", root})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
}

func TestCLI_Resolve_LenientVersions(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"core": "1.0.0", "app": "1.0.1"})

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", root, "--lenient-versions"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCLI_Resolve_Overrides(t *testing.T) {
	root := writeWorkspace(t, map[string]string{"core": "1.0.0", "app": "1.0.0"})
	linkRoot := filepath.Join(root, "elsewhere", "links")
	manifestPath := filepath.Join(root, "elsewhere", "manifest.json")

	cli := newCLI(t)
	cli.SetArgs([]string{"resolve", root, "--link-root", linkRoot, "--manifest", manifestPath})
	require.NoError(t, cli.Execute(context.Background()))

	if _, err := os.Readlink(filepath.Join(linkRoot, "core")); err != nil {
		t.Errorf("expected link under override root: %v", err)
	}
	if _, err := os.Stat(manifestPath); err != nil {
		t.Errorf("expected manifest at override path: %v", err)
	}
}
