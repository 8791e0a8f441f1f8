package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/weft/internal/core/domain"
)

func runWithArgs(t *testing.T, args ...string) int {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"weft"}, args...)
	return run()
}

func writeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	workfile := `version: "1"
workspaces:
  core:
    version: 1.0.0
  app:
    version: 1.0.0
    dependencies:
      core: "workspace:*"
`
	if err := os.WriteFile(filepath.Join(root, domain.WorkFileName), []byte(workfile), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "core", "dist"), 0o750); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRun_Resolve(t *testing.T) {
	root := writeWorkspace(t)

	if code := runWithArgs(t, "resolve", root); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	layout := domain.NewLayout(root)
	if _, err := os.Stat(layout.ManifestPath); err != nil {
		t.Errorf("expected manifest: %v", err)
	}
}

func TestRun_NoWorkspace(t *testing.T) {
	if code := runWithArgs(t, "resolve", t.TempDir()); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRun_Version(t *testing.T) {
	if code := runWithArgs(t, "version"); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}
