package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
)

// formatCompletionLine renders a completion candidate with its description,
// using cobra's value<TAB>description convention.
func formatCompletionLine(value, description string) string {
	if description == "" {
		return value
	}
	if len(description) > 60 {
		description = description[:57] + "..."
	}
	return value + "\t" + description
}

// completeTemplateNames offers template names from the local catalog.
func completeTemplateNames(opts *rootOptions, toComplete string) ([]string, cobra.ShellCompDirective) {
	catalogPath, err := opts.catalogFile()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, t := range c.Templates() {
		if strings.HasPrefix(t.Name(), toComplete) {
			completions = append(completions, formatCompletionLine(t.Name(), t.Description()))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeCatalogNames offers configured catalog names. includeLocal adds
// the reserved local name, for contexts where it is a valid choice.
func completeCatalogNames(opts *rootOptions, toComplete string, includeLocal bool) ([]string, cobra.ShellCompDirective) {
	configPath, err := opts.configFile()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	if includeLocal && strings.HasPrefix(localCatalogName, toComplete) {
		completions = append(completions, formatCompletionLine(localCatalogName, "the local catalog"))
	}
	for _, rc := range cfg.Catalogs {
		if strings.HasPrefix(rc.Name, toComplete) {
			completions = append(completions, formatCompletionLine(rc.Name, rc.Description))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
