package cli

import (
	"reflect"
	"strings"
	"testing"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
)

func TestFormatCompletionLine(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 70)

	tests := []struct {
		name        string
		value       string
		description string
		want        string
	}{
		{"no description", "starter", "", "starter"},
		{"with description", "starter", "a skeleton", "starter\ta skeleton"},
		{"long description truncated", "starter", long, "starter\t" + long[:57] + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCompletionLine(tt.value, tt.description); got != tt.want {
				t.Errorf("formatCompletionLine(%q, %q) = %q, want %q", tt.value, tt.description, got, tt.want)
			}
		})
	}
}

func TestCompleteTemplateNames(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)
	writeCatalog(t, catalogPath,
		catalog.NewLocalTemplate("web-ui", "frontend", "/tmp/web-ui"),
		catalog.NewLocalTemplate("web-api", "", "/tmp/web-api"),
		catalog.NewLocalTemplate("cli-tool", "command line", "/tmp/cli-tool"))

	opts := &rootOptions{catalogPath: catalogPath}

	got, _ := completeTemplateNames(opts, "web")
	want := []string{"web-api", "web-ui\tfrontend"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("completions for web = %v, want %v", got, want)
	}

	got, _ = completeTemplateNames(opts, "zzz")
	if len(got) != 0 {
		t.Errorf("completions for zzz = %v, want none", got)
	}
}

func TestCompleteCatalogNames(t *testing.T) {
	t.Parallel()
	_, configPath := setupPaths(t)
	writeConfig(t, configPath,
		config.RemoteCatalog{Name: "company", Description: "shared", Owner: "acme", Repository: "templates"},
		config.RemoteCatalog{Name: "community", Owner: "oss", Repository: "skeletons"})

	opts := &rootOptions{configPath: configPath}

	got, _ := completeCatalogNames(opts, "", true)
	want := []string{"local\tthe local catalog", "company\tshared", "community"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("completions = %v, want %v", got, want)
	}

	got, _ = completeCatalogNames(opts, "com", false)
	want = []string{"company\tshared", "community"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("completions for com = %v, want %v", got, want)
	}
}
