package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no workspace definition file can be located.
	ErrConfigNotFound = zerr.New("workspace definition not found")

	// ErrPackageAlreadyExists is returned when two workspace entries share a package name.
	ErrPackageAlreadyExists = zerr.New("package already exists")

	// ErrCycleDetected is returned when the dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrValidationFailed is returned when the graph fails structural validation.
	ErrValidationFailed = zerr.New("workspace validation failed")

	// ErrManifestWrite is returned when the resolution manifest cannot be persisted.
	ErrManifestWrite = zerr.New("manifest write failed")
)
