// Package config provides the workspace definition loader for weft.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML workfile.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validPackageNameRegex = regexp.MustCompile(`^(@[a-zA-Z0-9_.-]+/)?[a-zA-Z0-9_.-]+$`)

// Load locates weft.work.yaml by walking up from cwd and returns the parsed
// workspace. Member packages are ordered by name so every downstream
// iteration is deterministic.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	path, err := l.findWorkfile(cwd)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // path is discovered under the user's own workspace
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workspace definition")
	}

	var workfile Workfile
	if err := yaml.Unmarshal(data, &workfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace definition")
	}

	root := filepath.Dir(path)
	if workfile.Root != "" {
		root = filepath.Join(root, workfile.Root)
	}

	return l.buildWorkspace(root, &workfile)
}

func (l *Loader) findWorkfile(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.WorkFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildWorkspace(root string, workfile *Workfile) (*domain.Workspace, error) {
	keys := make([]string, 0, len(workfile.Workspaces))
	for key := range workfile.Workspaces {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	seen := make(map[string]string, len(keys))
	ws := &domain.Workspace{
		Root:     root,
		Packages: make([]domain.Package, 0, len(keys)),
	}

	for _, key := range keys {
		dto := workfile.Workspaces[key]
		if dto == nil {
			dto = &PackageDTO{}
		}

		pkg, err := buildPackage(root, key, dto)
		if err != nil {
			return nil, err
		}

		name := pkg.Name.String()
		if other, dup := seen[name]; dup {
			err := zerr.With(domain.ErrPackageAlreadyExists, "package", name)
			return nil, zerr.With(err, "entries", other+", "+key)
		}
		seen[name] = key

		if dto.Name != "" && dto.Name != key {
			l.Logger.Warn(fmt.Sprintf("workspace entry %q declares name %q; using the declared name", key, dto.Name))
		}

		ws.Packages = append(ws.Packages, pkg)
	}

	return ws, nil
}

func buildPackage(root, key string, dto *PackageDTO) (domain.Package, error) {
	name := dto.Name
	if name == "" {
		name = key
	}
	if !validPackageNameRegex.MatchString(name) {
		err := zerr.New("invalid package name")
		return domain.Package{}, zerr.With(err, "package", name)
	}
	if dto.Version == "" {
		err := zerr.New("package version is required")
		return domain.Package{}, zerr.With(err, "package", name)
	}

	sourcePath := dto.Path
	if sourcePath == "" {
		sourcePath = key
	}
	sourcePath = filepath.Join(root, sourcePath)

	outputPath := dto.Output
	if outputPath == "" {
		outputPath = "dist"
	}
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(sourcePath, outputPath)
	}

	deps := make(map[string]string, len(dto.Dependencies))
	for depName, spec := range dto.Dependencies {
		deps[depName] = spec
	}

	return domain.Package{
		Name:            domain.NewInternedString(name),
		Version:         dto.Version,
		EntryPoint:      dto.Main,
		SourcePath:      sourcePath,
		BuildOutputPath: outputPath,
		Dependencies:    deps,
	}, nil
}
