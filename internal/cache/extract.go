package cache

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrArchiveLayout reports an archive whose top level is not the single
// wrapper directory that provider tarballs are expected to carry.
var ErrArchiveLayout = errors.New("archive does not contain exactly one top-level directory")

// extractArchive unpacks the gzipped tarball at archivePath into destDir
// and hoists the contents of its single top-level wrapper directory (the
// "repo-revision/" prefix providers put in their tarballs) up to destDir
// itself, so callers see the repository root directly.
func extractArchive(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("decompressing archive: %w", err)
	}
	defer gz.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}

		target, err := safePath(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", hdr.Name, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("creating directory for %s: %w", hdr.Name, err)
			}
			if err := writeEntry(target, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", hdr.Name, err)
			}
		case tar.TypeSymlink:
			if filepath.IsAbs(hdr.Linkname) || escapesDir(filepath.Join(filepath.Dir(hdr.Name), hdr.Linkname)) {
				return fmt.Errorf("archive entry %s: symlink target %s escapes archive", hdr.Name, hdr.Linkname)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("creating directory for %s: %w", hdr.Name, err)
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return fmt.Errorf("linking %s: %w", hdr.Name, err)
			}
		default:
			// Pax headers and other metadata entries carry no files.
		}
	}

	return flatten(destDir)
}

// safePath joins an archive member name onto destDir, rejecting absolute
// names and names that climb out of the destination.
func safePath(destDir, name string) (string, error) {
	if filepath.IsAbs(name) || escapesDir(name) {
		return "", fmt.Errorf("archive entry %s: path escapes archive", name)
	}
	return filepath.Join(destDir, name), nil
}

// escapesDir reports whether a slash-separated relative path resolves to
// somewhere above its starting directory.
func escapesDir(name string) bool {
	clean := filepath.Clean(filepath.FromSlash(name))
	return clean == ".." || strings.HasPrefix(clean, ".."+string(os.PathSeparator))
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// flatten replaces dir's single wrapper directory with that directory's
// own contents. Anything other than exactly one top-level directory means
// the archive was not shaped like a provider tarball.
func flatten(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) != 1 {
		return fmt.Errorf("%w: found %d top-level entries", ErrArchiveLayout, len(entries))
	}
	if !entries[0].IsDir() {
		return fmt.Errorf("%w: top-level entry %s is not a directory", ErrArchiveLayout, entries[0].Name())
	}

	wrapper := filepath.Join(dir, entries[0].Name())
	children, err := os.ReadDir(wrapper)
	if err != nil {
		return fmt.Errorf("reading %s: %w", wrapper, err)
	}
	for _, child := range children {
		if err := os.Rename(filepath.Join(wrapper, child.Name()), filepath.Join(dir, child.Name())); err != nil {
			return fmt.Errorf("hoisting %s: %w", child.Name(), err)
		}
	}
	if err := os.Remove(wrapper); err != nil {
		return fmt.Errorf("removing wrapper directory: %w", err)
	}
	return nil
}
