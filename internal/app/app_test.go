package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/weft/internal/adapters/fs"
	"go.trai.ch/weft/internal/adapters/manifest"
	"go.trai.ch/weft/internal/adapters/telemetry"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.trai.ch/weft/internal/engine/resolver"
)

func quietLogger(t *testing.T, ctrl *gomock.Controller) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func newApp(t *testing.T, ctrl *gomock.Controller, loader ports.ConfigLoader) *app.App {
	t.Helper()
	log := quietLogger(t, ctrl)
	res := resolver.NewResolver(
		fs.NewLinker(log),
		manifest.NewStoreWithClock(clockwork.NewFakeClock()),
		telemetry.NewNoOp(),
		log,
	)
	return app.New(loader, res, log)
}

func TestApp_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	out := filepath.Join(root, "packages", "core", "dist")
	require.NoError(t, os.MkdirAll(out, 0o750))

	ws := &domain.Workspace{
		Root: root,
		Packages: []domain.Package{
			{
				Name:            domain.NewInternedString("@acme/core"),
				Version:         "1.0.0",
				SourcePath:      filepath.Join(root, "packages", "core"),
				BuildOutputPath: out,
			},
		},
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root).Return(ws, nil)

	a := newApp(t, ctrl, loader)
	require.NoError(t, a.Resolve(context.Background(), app.ResolveOptions{Dir: root}))

	// Conventional layout under the workspace root.
	layout := domain.NewLayout(root)
	if _, err := os.Readlink(filepath.Join(layout.LinkRoot, "@acme", "core")); err != nil {
		t.Errorf("expected link under %s: %v", layout.LinkRoot, err)
	}
	if _, err := os.Stat(layout.ManifestPath); err != nil {
		t.Errorf("expected manifest at %s: %v", layout.ManifestPath, err)
	}
}

func TestApp_Resolve_DefaultsDirToCwd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	a := newApp(t, ctrl, loader)
	err := a.Resolve(context.Background(), app.ResolveOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestApp_Resolve_LayoutOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	out := filepath.Join(root, "core", "dist")
	require.NoError(t, os.MkdirAll(out, 0o750))

	ws := &domain.Workspace{
		Root: root,
		Packages: []domain.Package{{
			Name:            domain.NewInternedString("core"),
			Version:         "1.0.0",
			BuildOutputPath: out,
		}},
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root).Return(ws, nil)

	linkRoot := filepath.Join(root, "custom-links")
	manifestPath := filepath.Join(root, "custom", "manifest.json")

	a := newApp(t, ctrl, loader)
	require.NoError(t, a.Resolve(context.Background(), app.ResolveOptions{
		Dir:          root,
		LinkRoot:     linkRoot,
		ManifestPath: manifestPath,
	}))

	if _, err := os.Readlink(filepath.Join(linkRoot, "core")); err != nil {
		t.Errorf("expected link under override root: %v", err)
	}
	if _, err := os.Stat(manifestPath); err != nil {
		t.Errorf("expected manifest at override path: %v", err)
	}
}

func TestApp_Resolve_ValidationFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	ws := &domain.Workspace{
		Root: root,
		Packages: []domain.Package{
			{Name: domain.NewInternedString("a"), Version: "1.0.0", Dependencies: map[string]string{"b": "1.0.0"}},
			{Name: domain.NewInternedString("b"), Version: "1.0.0", Dependencies: map[string]string{"a": "1.0.0"}},
		},
	}

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(root).Return(ws, nil)

	a := newApp(t, ctrl, loader)
	err := a.Resolve(context.Background(), app.ResolveOptions{Dir: root})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
}
