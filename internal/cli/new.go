package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
)

// newNewCmd creates the `new` command.
// Usage: skel new <template> <directory> [--catalog NAME] [--allow-dirty]
func newNewCmd(opts *rootOptions) *cobra.Command {
	var (
		catalogName string
		allowDirty  bool
	)

	cmd := &cobra.Command{
		Use:   "new <template> <directory>",
		Short: "Create a project directory from a template",
		Long: `Materializes a template and copies its contents into the given directory.

Without --catalog the template name is resolved against the local catalog
first, then against each configured remote catalog in order. With --catalog
the lookup is restricted to the named catalog ("local" selects the local
one).

Example:
  skel new web-api ./my-service`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return completeTemplateNames(opts, toComplete)
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, err := opts.catalogFile()
			if err != nil {
				return err
			}
			configPath, err := opts.configFile()
			if err != nil {
				return err
			}
			m, err := newMaterializer()
			if err != nil {
				return err
			}
			return runNewWith(args[0], args[1], catalogName, allowDirty, catalogPath, configPath, m)
		},
	}

	cmd.Flags().StringVar(&catalogName, "catalog", "", "resolve the template from this catalog only")
	cmd.Flags().BoolVar(&allowDirty, "allow-dirty", false, "allow scaffolding into a non-empty directory")
	_ = cmd.RegisterFlagCompletionFunc("catalog",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeCatalogNames(opts, toComplete, true)
		})

	return cmd
}

// runNewWith is the testable core of the new command.
func runNewWith(name, directory, scope string, allowDirty bool, catalogPath, configPath string, m catalog.Materializer) error {
	if err := catalog.CheckName(name); err != nil {
		return fmt.Errorf("invalid template name: %w", err)
	}

	if info, err := os.Stat(directory); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s already exists and is not a directory", directory)
		}
		if !allowDirty {
			entries, err := os.ReadDir(directory)
			if err != nil {
				return fmt.Errorf("reading %s: %w", directory, err)
			}
			if len(entries) > 0 {
				return fmt.Errorf("%s already exists and is not empty", directory)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", directory, err)
	}

	local, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	t, err := resolveTemplate(name, scope, local, cfg, m)
	if err != nil {
		return err
	}

	fmt.Printf("📦 Materializing %s...\n", t.Summary())

	src, err := t.Materialize(m)
	if err != nil {
		return fmt.Errorf("retrieving template %q: %w", name, err)
	}

	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}
	if err := copyDir(src, directory); err != nil {
		return err
	}

	fmt.Printf("✅ Created %s from %q\n", directory, name)
	return nil
}

// resolveTemplate locates a template by name. With an empty scope the local
// catalog wins over remotes, and remotes are only fetched until the first
// hit. A non-empty scope restricts the lookup to that single catalog.
func resolveTemplate(name, scope string, local *catalog.Catalog, cfg *config.Config, m catalog.Materializer) (catalog.Template, error) {
	switch scope {
	case "":
		if t, ok := local.FindExact(name); ok {
			return t, nil
		}
		for _, rc := range cfg.Catalogs {
			remote, err := rc.FetchCatalog(m)
			if err != nil {
				return nil, err
			}
			if t, ok := remote.FindExact(name); ok {
				return t, nil
			}
		}
	case localCatalogName:
		if t, ok := local.FindExact(name); ok {
			return t, nil
		}
	default:
		rc, ok := cfg.Catalog(scope)
		if !ok {
			return nil, fmt.Errorf("no catalog named %q", scope)
		}
		remote, err := rc.FetchCatalog(m)
		if err != nil {
			return nil, err
		}
		if t, ok := remote.FindExact(name); ok {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown template: %s", name)
}
