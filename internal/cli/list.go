package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
)

// newListCmd creates the `list` command.
// Usage: skel list
func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the templates in the local catalog",
		Long:  `Prints a one-line summary of every template in the local catalog, in name order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, err := opts.catalogFile()
			if err != nil {
				return err
			}
			return runListWith(catalogPath, os.Stdout)
		},
	}
}

// runListWith is the testable core of the list command.
func runListWith(catalogPath string, w io.Writer) error {
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if c.Len() == 0 {
		fmt.Fprintln(w, "📋 No templates in the catalog.")
		return nil
	}

	for _, t := range c.Templates() {
		fmt.Fprintln(w, t.Summary())
	}
	return nil
}
