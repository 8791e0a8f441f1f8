// Package manifest implements the resolution manifest store.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store persists resolution manifests as a single JSON file, fully replaced
// on each write.
type Store struct {
	clock clockwork.Clock
}

// NewStore creates a Store using the real clock.
func NewStore() *Store {
	return NewStoreWithClock(clockwork.NewRealClock())
}

// NewStoreWithClock creates a Store with the given clock. Tests inject a fake
// clock to pin the generated timestamp.
func NewStoreWithClock(clock clockwork.Clock) *Store {
	return &Store{clock: clock}
}

// Write stamps the manifest with the current time and a content fingerprint,
// then replaces the file at path. Any failure here fails the whole run: the
// manifest is the durable record of what was decided.
func (s *Store) Write(path string, m *domain.Manifest) error {
	m.Generated = s.clock.Now().UTC()

	fingerprint, err := Fingerprint(m)
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrManifestWrite, err), "failed to fingerprint manifest")
	}
	m.Fingerprint = fingerprint

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrManifestWrite, err), "failed to marshal manifest")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrManifestWrite, err), "failed to create manifest directory")
	}

	//nolint:gosec // path comes from the explicit workspace layout
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrManifestWrite, err), "failed to write manifest")
	}

	return nil
}

// Read loads the manifest at path. A missing file is not an error; callers
// inspecting a fresh workspace get nil, nil.
func (s *Store) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // path comes from the explicit workspace layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal manifest")
	}
	return &m, nil
}

// Fingerprint hashes the manifest content, excluding the generated timestamp
// and the fingerprint itself, so two runs over an unchanged workspace produce
// the same value.
func Fingerprint(m *domain.Manifest) (string, error) {
	stable := *m
	stable.Generated = time.Time{}
	stable.Fingerprint = ""

	data, err := json.Marshal(&stable)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
