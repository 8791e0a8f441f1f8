package domain

import "path/filepath"

const (
	// WeftDirName is the name of the internal workspace directory.
	WeftDirName = ".weft"

	// LinkDirName is the name of the linked-packages directory.
	LinkDirName = "links"

	// ManifestFileName is the name of the resolution manifest file.
	ManifestFileName = "manifest.json"

	// WorkFileName is the name of the workspace definition file.
	WorkFileName = "weft.work.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout carries every filesystem location the engine touches. It is built
// once from the workspace root and passed into each component explicitly;
// nothing reads the process working directory at run time.
type Layout struct {
	// WorkspaceRoot is the directory containing the workspace definition.
	WorkspaceRoot string

	// LinkRoot is the directory the symlink farm lives under.
	LinkRoot string

	// ManifestPath is where the resolution manifest is written.
	ManifestPath string

	// DebugLogPath is where the rotating debug log is written.
	DebugLogPath string
}

// NewLayout returns the conventional layout rooted at workspaceRoot.
func NewLayout(workspaceRoot string) Layout {
	return Layout{
		WorkspaceRoot: workspaceRoot,
		LinkRoot:      filepath.Join(workspaceRoot, WeftDirName, LinkDirName),
		ManifestPath:  filepath.Join(workspaceRoot, WeftDirName, ManifestFileName),
		DebugLogPath:  filepath.Join(workspaceRoot, WeftDirName, DebugLogFile),
	}
}
