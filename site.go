package inkling

import "context"

// SiteFile is one file of the static site output. Digest is a stable content
// digest used for upload deduplication by deployment tooling.
type SiteFile struct {
	Path   string // site-absolute, e.g. /article/first-edition.html
	MIME   string
	Digest string
	Bytes  []byte
}

// Validate returns an error if the file contains invalid fields.
func (f *SiteFile) Validate() error {
	if f.Path == "" {
		return Errorf(EINVALID, "site file path required")
	}
	if len(f.Bytes) == 0 {
		return Errorf(EINVALID, "site file %q has no content", f.Path)
	}
	return nil
}

// SiteWriter persists static site files with atomic semantics.
// Save writes to a temporary location; Commit makes the new site visible;
// Abort discards pending files.
type SiteWriter interface {
	Save(ctx context.Context, file *SiteFile) error
	Commit() error
	Abort() error
}
