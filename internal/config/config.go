// Package config holds the user-level configuration: the remote catalogs
// consulted by template search and resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/repo"
)

// DefaultCatalogPath is where a catalog repository keeps its catalog file
// unless the declaration says otherwise.
const DefaultCatalogPath = "index.toml"

// Config is the parsed config file: an ordered list of remote catalog
// declarations. Order is preserved because search and resolution walk the
// catalogs in configured order.
type Config struct {
	Catalogs []RemoteCatalog `toml:"catalog,omitempty"`
}

// RemoteCatalog declares one remote catalog: a repository snapshot plus the
// path of the catalog file inside it.
type RemoteCatalog struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
	Provider    string `toml:"provider,omitempty"`
	Owner       string `toml:"owner"`
	Repository  string `toml:"repository"`
	Revision    string `toml:"revision,omitempty"`
	Path        string `toml:"path,omitempty"`
}

// Ref builds the repository reference for the catalog source. The provider
// defaults to GitHub and the revision to the default branch.
func (rc RemoteCatalog) Ref() (repo.Ref, error) {
	provider := repo.GitHub
	if rc.Provider != "" {
		p, err := repo.ParseProvider(rc.Provider)
		if err != nil {
			return repo.Ref{}, fmt.Errorf("catalog %q: %w", rc.Name, err)
		}
		provider = p
	}
	return repo.New(provider, rc.Owner, rc.Repository, rc.Revision), nil
}

// CatalogPath returns the catalog file's path within the repository.
func (rc RemoteCatalog) CatalogPath() string {
	if rc.Path == "" {
		return DefaultCatalogPath
	}
	return rc.Path
}

// FetchCatalog materializes the catalog repository and parses the catalog
// file it declares. Unlike a local catalog, a declared file that is missing
// from the snapshot is an error.
func (rc RemoteCatalog) FetchCatalog(m catalog.Materializer) (*catalog.Catalog, error) {
	ref, err := rc.Ref()
	if err != nil {
		return nil, err
	}

	dir, err := m.Materialize(ref)
	if err != nil {
		return nil, fmt.Errorf("retrieving catalog %q: %w", rc.Name, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, rc.CatalogPath()))
	if err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", rc.Name, err)
	}

	c, err := catalog.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %q: %w", rc.Name, err)
	}
	return c, nil
}

// Load reads and parses a config file from the given path.
// If the file does not exist it returns an empty config (no error).
func Load(path string) (*Config, error) {
	c := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// Save writes the config back to the given path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Catalog returns the declaration with the given name, scanning in
// configured order.
func (c *Config) Catalog(name string) (RemoteCatalog, bool) {
	for _, rc := range c.Catalogs {
		if rc.Name == name {
			return rc, true
		}
	}
	return RemoteCatalog{}, false
}

// Add appends a catalog declaration.
func (c *Config) Add(rc RemoteCatalog) {
	c.Catalogs = append(c.Catalogs, rc)
}

// Remove deletes the declaration with the given name.
// Returns true if the entry existed, false otherwise.
func (c *Config) Remove(name string) bool {
	for i, rc := range c.Catalogs {
		if rc.Name == name {
			c.Catalogs = append(c.Catalogs[:i], c.Catalogs[i+1:]...)
			return true
		}
	}
	return false
}
