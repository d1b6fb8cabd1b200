package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/repo"
)

// newAddCmd creates the `add` command.
// Usage: skel add <name> --owner O --repository R [flags]
func newAddCmd(opts *rootOptions) *cobra.Command {
	var o addOptions

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a repository-backed template to the local catalog",
		Long: `Adds a template backed by a hosted repository to the local catalog.

Example:
  skel add web-api --owner acme --repository api-starter --revision v2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, err := opts.catalogFile()
			if err != nil {
				return err
			}
			return runAddWith(args[0], o, catalogPath)
		},
	}

	cmd.Flags().StringVar(&o.provider, "provider", "github", "git provider hosting the template (github or gitlab)")
	cmd.Flags().StringVarP(&o.owner, "owner", "o", "", "repository owner")
	cmd.Flags().StringVarP(&o.repository, "repository", "r", "", "repository name")
	cmd.Flags().StringVar(&o.revision, "revision", repo.DefaultRevision, "branch, tag, or commit to pin")
	cmd.Flags().StringVarP(&o.description, "description", "d", "", "template description")
	cmd.Flags().IntVar(&o.issue, "issue", 0, "tracking issue the template was added for")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("repository")

	return cmd
}

type addOptions struct {
	provider    string
	owner       string
	repository  string
	revision    string
	description string
	issue       int
}

// runAddWith is the testable core of the add command.
func runAddWith(name string, o addOptions, catalogPath string) error {
	if err := catalog.CheckName(name); err != nil {
		return fmt.Errorf("invalid template name: %w", err)
	}

	provider, err := repo.ParseProvider(o.provider)
	if err != nil {
		return err
	}

	c, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if existing, ok := c.FindExact(name); ok {
		return fmt.Errorf("template %q already exists: %s", name, existing.Summary())
	}

	t := catalog.NewRepoTemplate(name, o.description,
		repo.New(provider, o.owner, o.repository, o.revision), o.issue, catalog.SetupNone)
	c.Insert(t)

	if err := saveCatalog(c, catalogPath); err != nil {
		return err
	}

	fmt.Printf("✅ Added %s\n", t.Summary())
	return nil
}
