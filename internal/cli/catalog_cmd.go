package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/config"
	"github.com/skel-dev/skel/internal/repo"
)

// newCatalogCmd groups the remote catalog management subcommands.
func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage remote template catalogs",
		Long:  `Manage the remote catalogs consulted by find and new. Use the 'add' and 'remove' subcommands to edit the configured list.`,
	}

	cmd.AddCommand(newCatalogAddCmd(opts))
	cmd.AddCommand(newCatalogRemoveCmd(opts))

	return cmd
}

// newCatalogAddCmd creates the `catalog add` command.
// Usage: skel catalog add <name> --owner O --repository R [flags]
func newCatalogAddCmd(opts *rootOptions) *cobra.Command {
	var o catalogAddOptions

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Declare a remote catalog",
		Long: `Declares a remote catalog: a repository holding a catalog file that find
and new will consult after the local catalog.

Example:
  skel catalog add company --owner acme --repository templates`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := opts.configFile()
			if err != nil {
				return err
			}
			return runCatalogAddWith(args[0], o, configPath)
		},
	}

	cmd.Flags().StringVar(&o.provider, "provider", "github", "git provider hosting the catalog (github or gitlab)")
	cmd.Flags().StringVarP(&o.owner, "owner", "o", "", "repository owner")
	cmd.Flags().StringVarP(&o.repository, "repository", "r", "", "repository name")
	cmd.Flags().StringVar(&o.revision, "revision", repo.DefaultRevision, "branch, tag, or commit to pin")
	cmd.Flags().StringVar(&o.path, "path", config.DefaultCatalogPath, "path of the catalog file within the repository")
	cmd.Flags().StringVarP(&o.description, "description", "d", "", "catalog description")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("repository")

	return cmd
}

// newCatalogRemoveCmd creates the `catalog remove` command.
// Usage: skel catalog remove <name>
func newCatalogRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a remote catalog declaration",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return completeCatalogNames(opts, toComplete, false)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := opts.configFile()
			if err != nil {
				return err
			}
			return runCatalogRemoveWith(args[0], configPath)
		},
	}
}

type catalogAddOptions struct {
	provider    string
	owner       string
	repository  string
	revision    string
	path        string
	description string
}

// runCatalogAddWith is the testable core of the catalog add command.
func runCatalogAddWith(name string, o catalogAddOptions, configPath string) error {
	if name == localCatalogName {
		return fmt.Errorf("%q is reserved for the local catalog", localCatalogName)
	}

	provider, err := repo.ParseProvider(o.provider)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, ok := cfg.Catalog(name); ok {
		return fmt.Errorf("catalog %q already exists", name)
	}

	ref := repo.New(provider, o.owner, o.repository, o.revision)
	cfg.Add(config.RemoteCatalog{
		Name:        name,
		Description: o.description,
		Provider:    ref.Provider.String(),
		Owner:       ref.Owner,
		Repository:  ref.Name,
		Revision:    ref.Revision,
		Path:        o.path,
	})

	if err := saveConfig(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("✅ Added catalog %q (%s)\n", name, ref.BrowseURL())
	return nil
}

// runCatalogRemoveWith is the testable core of the catalog remove command.
func runCatalogRemoveWith(name, configPath string) error {
	if name == localCatalogName {
		return errors.New("cannot remove the local catalog")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.Remove(name) {
		return fmt.Errorf("no catalog named %q", name)
	}

	if err := saveConfig(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("🗑️  Removed catalog %q\n", name)
	return nil
}
