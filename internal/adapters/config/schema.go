package config

// Workfile represents the structure of the weft.work.yaml definition file.
type Workfile struct {
	Version    string                 `yaml:"version"`
	Root       string                 `yaml:"root"`
	Workspaces map[string]*PackageDTO `yaml:"workspaces"`
}

// PackageDTO represents one workspace member in the definition file.
type PackageDTO struct {
	Name         string            `yaml:"name"`
	Version      string            `yaml:"version"`
	Main         string            `yaml:"main"`
	Path         string            `yaml:"path"`
	Output       string            `yaml:"output"`
	Dependencies map[string]string `yaml:"dependencies"`
}
