// Package catalog defines templates (named project skeletons), the ordered
// catalogs that hold them, and substring search across several catalogs.
package catalog

import (
	"fmt"

	"github.com/skel-dev/skel/internal/repo"
)

// Template is a catalog entry: a named project skeleton backed either by a
// snapshot of a hosted repository or by a local directory. The two forms
// are RepoTemplate and LocalTemplate; no others exist.
type Template interface {
	// Name returns the catalog-unique template name.
	Name() string

	// Description returns the free-form description, empty when unset.
	Description() string

	// Materialize resolves the template to a local directory using m.
	Materialize(m Materializer) (string, error)

	// Summary returns the one-line listing form of the template.
	Summary() string

	// sealed limits implementations to this package.
	sealed()
}

// Materializer turns a repository reference into a local directory holding
// its contents. *cache.ArchiveCache satisfies it.
type Materializer interface {
	Materialize(ref repo.Ref) (string, error)
}

// SetupKind tags a template with the toolchain a freshly scaffolded
// project expects.
type SetupKind string

const (
	SetupNone SetupKind = ""
	SetupRust SetupKind = "rust"
	SetupNpm  SetupKind = "npm"
)

// ParseSetupKind parses a setup tag as written in catalog files.
func ParseSetupKind(s string) (SetupKind, error) {
	switch s {
	case "rust":
		return SetupRust, nil
	case "npm":
		return SetupNpm, nil
	}
	return SetupNone, fmt.Errorf("no such setup kind: %q", s)
}

// RepoTemplate is a template backed by a repository snapshot.
type RepoTemplate struct {
	name        string
	description string
	ref         repo.Ref
	issue       int
	setup       SetupKind
}

var _ Template = RepoTemplate{}

// NewRepoTemplate builds a repository-backed template. description, issue,
// and setup are optional; their zero values mean "unset".
func NewRepoTemplate(name, description string, ref repo.Ref, issue int, setup SetupKind) RepoTemplate {
	return RepoTemplate{
		name:        name,
		description: description,
		ref:         ref,
		issue:       issue,
		setup:       setup,
	}
}

func (t RepoTemplate) Name() string        { return t.name }
func (t RepoTemplate) Description() string { return t.description }

// Ref returns the repository snapshot backing this template.
func (t RepoTemplate) Ref() repo.Ref { return t.ref }

// Issue returns the tracking issue number, 0 when unset.
func (t RepoTemplate) Issue() int { return t.issue }

// Setup returns the setup tag, SetupNone when unset.
func (t RepoTemplate) Setup() SetupKind { return t.setup }

// Materialize downloads and extracts the backing snapshot through m and
// returns the extracted directory.
func (t RepoTemplate) Materialize(m Materializer) (string, error) {
	return m.Materialize(t.ref)
}

// Summary renders "name => browse-url", then the description and the
// tracking issue when present.
func (t RepoTemplate) Summary() string {
	s := fmt.Sprintf("%s => %s", t.name, t.ref.BrowseURL())
	switch {
	case t.description != "" && t.issue != 0:
		s += fmt.Sprintf(" %s [for issue %d]", t.description, t.issue)
	case t.description != "":
		s += " " + t.description
	case t.issue != 0:
		s += fmt.Sprintf("[for issue %d]", t.issue)
	}
	return s
}

func (RepoTemplate) sealed() {}

// LocalTemplate is a template backed by a directory on this machine.
type LocalTemplate struct {
	name        string
	description string
	path        string
}

var _ Template = LocalTemplate{}

// NewLocalTemplate builds a local-directory template.
func NewLocalTemplate(name, description, path string) LocalTemplate {
	return LocalTemplate{name: name, description: description, path: path}
}

func (t LocalTemplate) Name() string        { return t.name }
func (t LocalTemplate) Description() string { return t.description }

// Path returns the backing directory.
func (t LocalTemplate) Path() string { return t.path }

// Materialize returns the backing directory as-is: local templates are
// never fetched, cached, or copied.
func (t LocalTemplate) Materialize(Materializer) (string, error) {
	return t.path, nil
}

// Summary renders "name => path", then the description when present.
func (t LocalTemplate) Summary() string {
	s := fmt.Sprintf("%s => %s", t.name, t.path)
	if t.description != "" {
		s += " " + t.description
	}
	return s
}

func (LocalTemplate) sealed() {}

// InvalidNameError reports a template or catalog name containing a
// character outside the allowed set.
type InvalidNameError struct {
	Char  rune
	Index int
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid character %q at %d", e.Char, e.Index)
}

// CheckName validates a name against the allowed charset [A-Za-z0-9_-],
// reporting the first offending character and its position. Only writes
// are guarded: names read back from existing catalog files are accepted
// as they are.
func CheckName(name string) error {
	for i, r := range []rune(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return &InvalidNameError{Char: r, Index: i}
		}
	}
	return nil
}
