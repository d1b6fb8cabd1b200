package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/skel-dev/skel/internal/repo"
)

// templateRecord is the on-disk TOML shape shared by both template forms.
// There is no tag field: a record with path set is a local template, and a
// record with owner and repository set is a repository template.
type templateRecord struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Provider    string `toml:"provider,omitempty"`
	Owner       string `toml:"owner,omitempty"`
	Repository  string `toml:"repository,omitempty"`
	Revision    string `toml:"revision,omitempty"`
	Issue       int    `toml:"issue,omitempty"`
	Setup       string `toml:"setup,omitempty"`
	Path        string `toml:"path,omitempty"`
}

// catalogFile is the full TOML document.
type catalogFile struct {
	ForRemote bool             `toml:"for_remote,omitempty"`
	Templates []templateRecord `toml:"template,omitempty"`
}

// Load reads and parses a catalog file from the given path. If the file
// does not exist it returns an empty catalog (no error).
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Decode(data)
}

// Decode parses catalog file bytes. Records are inserted in file order, so
// when a file carries the same name twice the first occurrence wins.
func Decode(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{ForRemote: f.ForRemote}
	for _, rec := range f.Templates {
		t, err := rec.template()
		if err != nil {
			return nil, err
		}
		c.Insert(t)
	}
	return c, nil
}

// Save writes the catalog back to the given path, templates in name order.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	out := catalogFile{ForRemote: c.ForRemote}
	for _, t := range c.templates {
		out.Templates = append(out.Templates, record(t))
	}
	if err := toml.NewEncoder(f).Encode(out); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return nil
}

// template turns a decoded record into its template form.
func (rec templateRecord) template() (Template, error) {
	if rec.Path != "" {
		return NewLocalTemplate(rec.Name, rec.Description, rec.Path), nil
	}

	if rec.Owner == "" || rec.Repository == "" {
		return nil, fmt.Errorf("template %q: needs either a path or an owner and repository", rec.Name)
	}
	provider := repo.GitHub
	if rec.Provider != "" {
		p, err := repo.ParseProvider(rec.Provider)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", rec.Name, err)
		}
		provider = p
	}
	var setup SetupKind
	if rec.Setup != "" {
		s, err := ParseSetupKind(rec.Setup)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", rec.Name, err)
		}
		setup = s
	}
	ref := repo.New(provider, rec.Owner, rec.Repository, rec.Revision)
	return NewRepoTemplate(rec.Name, rec.Description, ref, rec.Issue, setup), nil
}

// record turns a template into its on-disk record.
func record(t Template) templateRecord {
	switch tt := t.(type) {
	case LocalTemplate:
		return templateRecord{
			Name:        tt.Name(),
			Description: tt.Description(),
			Path:        tt.Path(),
		}
	case RepoTemplate:
		ref := tt.Ref()
		return templateRecord{
			Name:        tt.Name(),
			Description: tt.Description(),
			Provider:    ref.Provider.String(),
			Owner:       ref.Owner,
			Repository:  ref.Name,
			Revision:    ref.Revision,
			Issue:       tt.Issue(),
			Setup:       string(tt.Setup()),
		}
	}
	// Unreachable: Template is sealed to the two cases above.
	return templateRecord{Name: t.Name()}
}
