// Package cache stores downloaded repository snapshots and the directories
// extracted from them. Archives are revalidated against the provider with
// ETags, and extraction directories are keyed by the archive's content
// digest, so the same bytes are only ever unpacked once.
//
// For a ref with cache key K the cache directory holds up to three kinds
// of entry: K.tar.gz (the archive), K.tar.etag (its validator), and
// K-<sha512>/ (one extracted tree per distinct archive content). All of
// them can be deleted at any time; the cache rebuilds what it needs.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skel-dev/skel/internal/fetch"
	"github.com/skel-dev/skel/internal/repo"
)

// freshWindow is how long a downloaded archive is trusted without asking
// the provider whether it changed.
const freshWindow = 60 * time.Second

// ArchiveCache materializes repository snapshots under a single cache
// directory.
type ArchiveCache struct {
	root string
	dl   fetch.Downloader
}

// New creates an ArchiveCache rooted at dir. The directory is created on
// first use.
func New(dir string, dl fetch.Downloader) *ArchiveCache {
	return &ArchiveCache{root: dir, dl: dl}
}

// Materialize returns a directory holding the contents of ref, downloading
// and extracting only when needed. The returned directory is shared and
// read-only by convention; callers copy out of it rather than mutate it.
func (c *ArchiveCache) Materialize(ref repo.Ref) (string, error) {
	if err := os.MkdirAll(c.root, 0755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	key := ref.CacheKey()
	archivePath := filepath.Join(c.root, key+".tar.gz")
	etagPath := filepath.Join(c.root, key+".tar.etag")

	if err := c.refresh(ref, archivePath, etagPath); err != nil {
		return "", err
	}

	digest, err := fileDigest(archivePath)
	if err != nil {
		return "", err
	}

	outDir := filepath.Join(c.root, key+"-"+digest)
	if _, err := os.Stat(outDir); err == nil {
		return outDir, nil
	}

	if err := extractArchive(archivePath, outDir); err != nil {
		// A half-written tree must not satisfy the exists check above.
		os.RemoveAll(outDir)
		return "", fmt.Errorf("extracting %s: %w", ref.FullName(), err)
	}
	return outDir, nil
}

// refresh ensures the cached archive for ref exists and is current. An
// archive younger than freshWindow is trusted as-is with no network
// traffic. An older one is revalidated with its stored ETag, which turns
// into a cheap 304 when the revision did not move. A missing one is
// fetched unconditionally, after dropping any validator left behind by an
// eviction, since a validator without its archive would suppress the
// download of content we no longer have.
func (c *ArchiveCache) refresh(ref repo.Ref, archivePath, etagPath string) error {
	info, err := os.Stat(archivePath)
	switch {
	case err == nil && time.Since(info.ModTime()) <= freshWindow:
		return nil
	case err == nil:
		// Stale: revalidate below.
	case os.IsNotExist(err):
		if err := os.Remove(etagPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing orphaned validator: %w", err)
		}
	default:
		return fmt.Errorf("checking cached archive: %w", err)
	}

	if _, err := c.dl.Download(ref.ArchiveURL(), archivePath, etagPath); err != nil {
		return fmt.Errorf("downloading %s: %w", ref.FullName(), err)
	}
	return nil
}
