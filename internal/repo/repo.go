package repo

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultRevision is used when a reference does not name a branch, tag, or commit.
const DefaultRevision = "main"

// Provider identifies the git hosting service a repository lives on.
type Provider int

const (
	GitHub Provider = iota
	GitLab
)

// ParseProvider parses a provider name as it appears in catalog files and
// on the command line. Both the lowercase and the branded spelling are
// accepted ("github"/"GitHub", "gitlab"/"GitLab").
func ParseProvider(s string) (Provider, error) {
	switch s {
	case "github", "GitHub":
		return GitHub, nil
	case "gitlab", "GitLab":
		return GitLab, nil
	}
	return GitHub, &UnknownProviderError{Token: s}
}

// String returns the lowercase provider name used in cache keys and
// serialized catalog entries.
func (p Provider) String() string {
	switch p {
	case GitLab:
		return "gitlab"
	default:
		return "github"
	}
}

// UnknownProviderError reports a provider token that names no supported service.
type UnknownProviderError struct {
	Token string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("no such git provider: %q", e.Token)
}

// Ref identifies a snapshot of a hosted repository: which service, which
// owner/repo, and which revision (branch, tag, or commit). The zero value
// is not meaningful; use New.
type Ref struct {
	Provider Provider
	Owner    string
	Name     string
	Revision string
}

// New builds a Ref, substituting DefaultRevision when revision is empty.
func New(provider Provider, owner, name, revision string) Ref {
	if revision == "" {
		revision = DefaultRevision
	}
	return Ref{
		Provider: provider,
		Owner:    owner,
		Name:     name,
		Revision: revision,
	}
}

// BrowseURL returns the human-facing URL of the repository tree at the
// pinned revision.
func (r Ref) BrowseURL() string {
	switch r.Provider {
	case GitLab:
		return fmt.Sprintf("https://gitlab.com/%s/%s/-/tree/%s", r.Owner, r.Name, r.Revision)
	default:
		return fmt.Sprintf("https://github.com/%s/%s/tree/%s", r.Owner, r.Name, r.Revision)
	}
}

// ArchiveURL returns the URL of a gzipped tarball of the repository at the
// pinned revision. GitHub serves these from the codeload redirect behind
// /archive/; GitLab only offers them through its v4 API, with the project
// path URL-encoded as a single segment.
func (r Ref) ArchiveURL() string {
	switch r.Provider {
	case GitLab:
		project := url.PathEscape(r.Owner + "/" + r.Name)
		return fmt.Sprintf("https://gitlab.com/api/v4/projects/%s/repository/archive.tar.gz?sha=%s", project, r.Revision)
	default:
		return fmt.Sprintf("https://github.com/%s/%s/archive/%s.tar.gz", r.Owner, r.Name, r.Revision)
	}
}

// CacheKey returns the filename-safe identity of this snapshot, used as the
// base name for its cached artifacts. Two refs share a key exactly when they
// name the same provider, owner, repository, and revision.
func (r Ref) CacheKey() string {
	return strings.Join([]string{r.Provider.String(), r.Owner, r.Name, r.Revision}, "_")
}

// FullName returns "owner/name" for messages.
func (r Ref) FullName() string {
	return r.Owner + "/" + r.Name
}
