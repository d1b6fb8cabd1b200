package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skel-dev/skel/internal/cache"
	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
	"github.com/skel-dev/skel/internal/fetch"
)

// appDirName names the per-user config and cache subdirectories.
const appDirName = "skel"

// rootOptions carries the persistent path overrides shared by every command.
// Empty fields fall back to the per-user defaults.
type rootOptions struct {
	configPath  string
	catalogPath string
}

// configFile resolves the config file path.
func (o *rootOptions) configFile() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, "config.toml"), nil
}

// catalogFile resolves the local catalog file path.
func (o *rootOptions) catalogFile() (string, error) {
	if o.catalogPath != "" {
		return o.catalogPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, "templates.toml"), nil
}

func cacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// newMaterializer builds the archive cache that remote templates and
// catalogs are fetched through.
func newMaterializer() (*cache.ArchiveCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.New(dir, fetch.New(fetch.NewHTTPClient())), nil
}

// saveCatalog persists the catalog, creating the parent directory on first use.
func saveCatalog(c *catalog.Catalog, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := c.Save(path); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

// saveConfig persists the config, creating the parent directory on first use.
func saveConfig(cfg *config.Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
