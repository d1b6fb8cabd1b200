package cache

import (
	"crypto/sha512"
	"fmt"
	"io"
	"os"
)

// fileDigest returns the hex-encoded SHA-512 of the file at path. The
// digest names the extraction directory, so identical archive bytes always
// land in the same place no matter when they were downloaded.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	h := sha512.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing archive: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
