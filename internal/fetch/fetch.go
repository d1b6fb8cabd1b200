package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Fetcher downloads archive files over HTTP, revalidating previous
// downloads with ETags so unchanged content is never transferred twice.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the given (authenticated) HTTP client.
func New(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Downloader is the part of the fetcher the archive cache depends on.
type Downloader interface {
	// Download fetches url into dest, revalidating with the ETag stored at
	// etagPath. It reports whether dest was rewritten.
	Download(url, dest, etagPath string) (bool, error)
}

// Verify Fetcher implements Downloader at compile time.
var _ Downloader = (*Fetcher)(nil)

// StatusError reports a download that failed with a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
}

// Download fetches url into dest. When etagPath holds a validator from an
// earlier download it is sent as If-None-Match; a 304 answer means the
// server still has identical content, so dest is left untouched and
// Download reports false. A 200 answer replaces dest and then records the
// response's ETag at etagPath. The validator is only ever written after
// the payload is safely on disk, and it is removed when the server stops
// sending one, so a stale ETag can never mask changed content. Any other
// status is a *StatusError; there are no retries.
func (f *Fetcher) Download(url, dest, etagPath string) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("building request for %s: %w", url, err)
	}

	if etag, err := os.ReadFile(etagPath); err == nil {
		if v := strings.TrimSpace(string(etag)); v != "" {
			req.Header.Set("If-None-Match", v)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotModified:
		return false, nil
	case http.StatusOK:
		// fresh content below
	default:
		return false, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	// Buffer the whole body before touching dest so a broken transfer
	// cannot leave a truncated file behind.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", dest, err)
	}

	if etag := resp.Header.Get("ETag"); etag != "" {
		if err := os.WriteFile(etagPath, []byte(etag), 0644); err != nil {
			return true, fmt.Errorf("writing validator for %s: %w", url, err)
		}
	} else if err := os.Remove(etagPath); err != nil && !os.IsNotExist(err) {
		return true, fmt.Errorf("removing stale validator for %s: %w", url, err)
	}

	return true, nil
}
