package domain

// LinkReport is the outcome of synchronizing the linked-packages directory.
// Linking is best-effort: individual failures become warnings and never fail
// the run.
type LinkReport struct {
	// Linked lists packages whose symlink now points at their build output.
	Linked []string

	// Skipped lists packages with no build output on disk yet. A fresh
	// workspace legitimately has nothing built, so this is not a problem.
	Skipped []string

	// Warnings lists per-package problems: a non-symlink occupying the link
	// location, or a failed symlink creation.
	Warnings []string
}
