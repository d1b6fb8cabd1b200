package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
)

// newRemoveCmd creates the `remove` command.
// Usage: skel remove <name>
func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a template from the local catalog",
		Long: `Removes a template entry from the local catalog. The cached snapshot, if
any, stays in the cache directory.

Example:
  skel remove web-api`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return completeTemplateNames(opts, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, err := opts.catalogFile()
			if err != nil {
				return err
			}
			return runRemoveWith(args[0], catalogPath)
		},
	}
}

// runRemoveWith is the testable core of the remove command.
func runRemoveWith(name, catalogPath string) error {
	if err := catalog.CheckName(name); err != nil {
		return fmt.Errorf("invalid template name: %w", err)
	}

	c, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if !c.Remove(name) {
		return fmt.Errorf("no template named %q in the catalog", name)
	}

	if err := saveCatalog(c, catalogPath); err != nil {
		return err
	}

	fmt.Printf("🗑️  Removed %q from the catalog\n", name)
	return nil
}
