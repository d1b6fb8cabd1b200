package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// The local catalog is addressed by a reserved name on the command line and
// carries a distinct label in search output.
const (
	localCatalogName  = "local"
	localCatalogLabel = "<local>"
)

// NewRootCmd creates the top-level `skel` command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "skel",
		Short: "Create projects from cached repository templates",
		Long: `skel scaffolds new projects from templates kept in catalogs. A template
points at a repository snapshot (GitHub or GitLab) or at a local directory.
Remote snapshots are downloaded once into your user cache directory and
revalidated with conditional requests afterwards, so repeated use is fast
and works offline.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: skel/config.toml under your user config directory)")
	root.PersistentFlags().StringVarP(&opts.catalogPath, "local-catalog", "i", "",
		"local catalog file (default: skel/templates.toml under your user config directory)")

	root.AddCommand(newAddCmd(opts))
	root.AddCommand(newAddLocalCmd(opts))
	root.AddCommand(newRemoveCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newFindCmd(opts))
	root.AddCommand(newNewCmd(opts))
	root.AddCommand(newCatalogCmd(opts))

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
