// Package fs persists static site output to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/inkling"
)

// Ensure SiteStore implements inkling.SiteWriter at compile time.
var _ inkling.SiteWriter = (*SiteStore)(nil)

// SiteStore implements inkling.SiteWriter with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit,
// so a half-written build is never visible at the final path.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one site file under the temporary directory. The file's
// site-absolute path maps directly to a relative path on disk.
func (s *SiteStore) Save(ctx context.Context, file *inkling.SiteFile) error {
	if err := file.Validate(); err != nil {
		return err
	}

	relPath, err := sitePathToRel(file.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, file.Bytes, 0644)
}

// Commit replaces the final directory with the temporary one.
func (s *SiteStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards any pending files.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// sitePathToRel converts a site-absolute path to a filesystem-relative one,
// rejecting anything that would escape the output directory.
func sitePathToRel(p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		return "", inkling.Errorf(inkling.EINVALID, "site path %q must be absolute", p)
	}
	rel := filepath.FromSlash(strings.TrimPrefix(p, "/"))
	clean := filepath.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", inkling.Errorf(inkling.EINVALID, "site path %q escapes output directory", p)
	}
	return clean, nil
}
