package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
)

// newFindCmd creates the `find` command.
// Usage: skel find <term>
func newFindCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <term>",
		Short: "Search templates across the local and all remote catalogs",
		Long: `Searches template names and descriptions for the given term,
case-insensitively. The local catalog is searched first, then every
configured remote catalog in order. Hits are grouped by whether the term
matched the name, the description, or both.

Example:
  skel find web`,
		Args: cobra.ExactArgs(1),
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
			return runFindWith(args[0], catalogPath, configPath, m, os.Stdout)
		},
	}
}

// runFindWith is the testable core of the find command.
func runFindWith(term, catalogPath, configPath string, m catalog.Materializer, w io.Writer) error {
	local, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	result := local.Find(term).Compose(localCatalogLabel)
	for _, rc := range cfg.Catalogs {
		remote, err := rc.FetchCatalog(m)
		if err != nil {
			return err
		}
		result = result.Merge(remote.Find(term).Compose(rc.Name))
	}

	printFindResult(w, result)
	return nil
}

func printFindResult(w io.Writer, r catalog.ComposedResult) {
	printTier(w, "Templates that matched both name and description:", r.Both)
	printTier(w, "Templates that matched only name:", r.NameOnly)
	printTier(w, "Templates that matched only description:", r.DescriptionOnly)
}

func printTier(w io.Writer, header string, hits []catalog.Labeled) {
	if len(hits) == 0 {
		return
	}
	fmt.Fprintln(w, header)
	for _, hit := range hits {
		fmt.Fprintf(w, "[%s] %s\n", hit.Source, hit.Template.Summary())
	}
}
