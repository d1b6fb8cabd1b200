package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
)

// newAddLocalCmd creates the `add-local` command.
// Usage: skel add-local <name> <path>
func newAddLocalCmd(opts *rootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add-local <name> <path>",
		Short: "Add a local directory template to the local catalog",
		Long: `Adds a template backed by a directory on this machine. Local templates
are copied as-is and never downloaded, so they cannot live in catalogs
meant to be served remotely.

Example:
  skel add-local my-service ~/templates/service`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, err := opts.catalogFile()
			if err != nil {
				return err
			}
			return runAddLocalWith(args[0], args[1], description, catalogPath)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "template description")

	return cmd
}

// runAddLocalWith is the testable core of the add-local command.
func runAddLocalWith(name, path, description, catalogPath string) error {
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if c.ForRemote {
		return errors.New("local templates may not be added to a catalog intended for remote use")
	}

	if err := catalog.CheckName(name); err != nil {
		return fmt.Errorf("invalid template name: %w", err)
	}

	if existing, ok := c.FindExact(name); ok {
		return fmt.Errorf("template %q already exists: %s", name, existing.Summary())
	}

	t := catalog.NewLocalTemplate(name, description, path)
	c.Insert(t)

	if err := saveCatalog(c, catalogPath); err != nil {
		return err
	}

	fmt.Printf("✅ Added %s\n", t.Summary())
	return nil
}
