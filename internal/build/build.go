// Package build holds build-time metadata.
package build

// Version is the application version. Overridden at release time via
// -ldflags "-X go.trai.ch/weft/internal/build.Version=...".
var Version = "dev"
