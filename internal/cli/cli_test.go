package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skel-dev/skel/internal/catalog"
	"github.com/skel-dev/skel/internal/config"
	"github.com/skel-dev/skel/internal/repo"
)

// --- helpers ---

// fakeMaterializer serves repository snapshots from prepared directories
// instead of the network.
type fakeMaterializer struct {
	dirs  map[string]string // keyed by ref cache key
	calls int
}

var _ catalog.Materializer = (*fakeMaterializer)(nil)

func newFakeMaterializer() *fakeMaterializer {
	return &fakeMaterializer{dirs: make(map[string]string)}
}

func (m *fakeMaterializer) Materialize(ref repo.Ref) (string, error) {
	m.calls++
	if dir, ok := m.dirs[ref.CacheKey()]; ok {
		return dir, nil
	}
	return "", fmt.Errorf("no snapshot prepared for %s", ref.FullName())
}

// setupPaths returns catalog and config file paths inside a fresh temp dir.
func setupPaths(t *testing.T) (catalogPath, configPath string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "templates.toml"), filepath.Join(dir, "config.toml")
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeCatalog(t *testing.T, path string, templates ...catalog.Template) {
	t.Helper()
	c := catalog.New()
	for _, tmpl := range templates {
		c.Insert(tmpl)
	}
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
}

func writeConfig(t *testing.T, path string, catalogs ...config.RemoteCatalog) {
	t.Helper()
	cfg := &config.Config{Catalogs: catalogs}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
}

// templateFixture prepares a snapshot directory for ref with the given files.
func templateFixture(t *testing.T, m *fakeMaterializer, ref repo.Ref, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeTestFile(t, filepath.Join(dir, name), content)
	}
	m.dirs[ref.CacheKey()] = dir
}

// catalogFixture prepares a snapshot directory for the remote catalog rc,
// containing its catalog file.
func catalogFixture(t *testing.T, m *fakeMaterializer, rc config.RemoteCatalog, indexContent string) {
	t.Helper()
	ref, err := rc.Ref()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, rc.CatalogPath()), indexContent)
	m.dirs[ref.CacheKey()] = dir
}

func loadCatalog(t *testing.T, path string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// --- add ---

func TestAddCmd_InsertsAndPersists(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	err := runAddWith("web-api", addOptions{
		provider:    "gitlab",
		owner:       "acme",
		repository:  "api-starter",
		revision:    "v2",
		description: "REST service",
		issue:       42,
	}, catalogPath)
	if err != nil {
		t.Fatalf("runAddWith: unexpected error: %v", err)
	}

	c := loadCatalog(t, catalogPath)
	tmpl, ok := c.FindExact("web-api")
	if !ok {
		t.Fatal("template not persisted")
	}
	rt, ok := tmpl.(catalog.RepoTemplate)
	if !ok {
		t.Fatalf("persisted template is %T, want RepoTemplate", tmpl)
	}
	if rt.Ref() != repo.New(repo.GitLab, "acme", "api-starter", "v2") {
		t.Errorf("persisted ref = %+v", rt.Ref())
	}
	if rt.Description() != "REST service" || rt.Issue() != 42 {
		t.Errorf("persisted fields: desc=%q issue=%d", rt.Description(), rt.Issue())
	}
}

func TestAddCmd_DefaultRevision(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	err := runAddWith("starter", addOptions{provider: "github", owner: "acme", repository: "starter"}, catalogPath)
	if err != nil {
		t.Fatal(err)
	}

	tmpl, _ := loadCatalog(t, catalogPath).FindExact("starter")
	if got := tmpl.(catalog.RepoTemplate).Ref().Revision; got != "main" {
		t.Errorf("revision = %q, want main", got)
	}
}

func TestAddCmd_DuplicateRejected(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	first := addOptions{provider: "github", owner: "acme", repository: "one", description: "first"}
	if err := runAddWith("api", first, catalogPath); err != nil {
		t.Fatal(err)
	}

	second := addOptions{provider: "github", owner: "acme", repository: "two", description: "second"}
	if err := runAddWith("api", second, catalogPath); err == nil {
		t.Fatal("duplicate add: expected error, got nil")
	}

	tmpl, _ := loadCatalog(t, catalogPath).FindExact("api")
	if tmpl.Description() != "first" {
		t.Errorf("duplicate add replaced the original entry: %q", tmpl.Description())
	}
}

func TestAddCmd_InvalidName(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	err := runAddWith("bad name", addOptions{provider: "github", owner: "a", repository: "b"}, catalogPath)
	var nameErr *catalog.InvalidNameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("error = %v, want InvalidNameError", err)
	}
	if _, statErr := os.Stat(catalogPath); !os.IsNotExist(statErr) {
		t.Error("catalog file written despite invalid name")
	}
}

func TestAddCmd_UnknownProvider(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	err := runAddWith("api", addOptions{provider: "bitbucket", owner: "a", repository: "b"}, catalogPath)
	var provErr *repo.UnknownProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("error = %v, want UnknownProviderError", err)
	}
}

// --- add-local ---

func TestAddLocalCmd_InsertsLocal(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	err := runAddLocalWith("mine", "/home/me/templates/mine", "my skeleton", catalogPath)
	if err != nil {
		t.Fatalf("runAddLocalWith: unexpected error: %v", err)
	}

	tmpl, ok := loadCatalog(t, catalogPath).FindExact("mine")
	if !ok {
		t.Fatal("template not persisted")
	}
	lt, ok := tmpl.(catalog.LocalTemplate)
	if !ok {
		t.Fatalf("persisted template is %T, want LocalTemplate", tmpl)
	}
	if lt.Path() != "/home/me/templates/mine" || lt.Description() != "my skeleton" {
		t.Errorf("persisted fields: path=%q desc=%q", lt.Path(), lt.Description())
	}
}

func TestAddLocalCmd_ForRemoteCatalogRejected(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)
	writeTestFile(t, catalogPath, "for_remote = true\n")

	err := runAddLocalWith("mine", "/tmp/mine", "", catalogPath)
	if err == nil {
		t.Fatal("add-local into for_remote catalog: expected error, got nil")
	}
	if loadCatalog(t, catalogPath).Len() != 0 {
		t.Error("template added despite for_remote rejection")
	}
}

// --- remove ---

func TestRemoveCmd_RemovesAndPersists(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)
	writeCatalog(t, catalogPath,
		catalog.NewLocalTemplate("mine", "", "/tmp/mine"),
		catalog.NewRepoTemplate("api", "", repo.New(repo.GitHub, "acme", "api", "main"), 0, catalog.SetupNone))

	if err := runRemoveWith("mine", catalogPath); err != nil {
		t.Fatalf("runRemoveWith: unexpected error: %v", err)
	}

	c := loadCatalog(t, catalogPath)
	if _, ok := c.FindExact("mine"); ok {
		t.Error("removed template still present")
	}
	if _, ok := c.FindExact("api"); !ok {
		t.Error("unrelated template lost")
	}
}

func TestRemoveCmd_Missing(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	if err := runRemoveWith("ghost", catalogPath); err == nil {
		t.Fatal("remove of absent template: expected error, got nil")
	}
}

// --- list ---

func TestListCmd_NameOrder(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)
	writeCatalog(t, catalogPath,
		catalog.NewLocalTemplate("zeta", "", "/tmp/zeta"),
		catalog.NewLocalTemplate("alpha", "", "/tmp/alpha"))

	var buf bytes.Buffer
	if err := runListWith(catalogPath, &buf); err != nil {
		t.Fatal(err)
	}

	want := "alpha => /tmp/alpha\nzeta => /tmp/zeta\n"
	if buf.String() != want {
		t.Errorf("list output:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestListCmd_Empty(t *testing.T) {
	t.Parallel()
	catalogPath, _ := setupPaths(t)

	var buf bytes.Buffer
	if err := runListWith(catalogPath, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No templates") {
		t.Errorf("empty-catalog output: %q", buf.String())
	}
}

// --- find ---

func TestFindCmd_TiersAcrossCatalogs(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("web-ui", "frontend skeleton", "/tmp/web-ui"))

	company := config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"}
	writeConfig(t, configPath, company)

	m := newFakeMaterializer()
	catalogFixture(t, m, company, `[[template]]
name = "web-api"
description = "web REST service"
owner = "acme"
repository = "api-starter"
`)

	var buf bytes.Buffer
	if err := runFindWith("web", catalogPath, configPath, m, &buf); err != nil {
		t.Fatalf("runFindWith: unexpected error: %v", err)
	}
	out := buf.String()

	bothHeader := strings.Index(out, "Templates that matched both name and description:")
	nameHeader := strings.Index(out, "Templates that matched only name:")
	if bothHeader < 0 || nameHeader < 0 {
		t.Fatalf("missing tier headers in output:\n%s", out)
	}
	if bothHeader > nameHeader {
		t.Errorf("tier order wrong:\n%s", out)
	}
	if strings.Contains(out, "Templates that matched only description:") {
		t.Errorf("empty tier printed:\n%s", out)
	}

	if !strings.Contains(out, "[company] web-api => https://github.com/acme/api-starter/tree/main web REST service") {
		t.Errorf("remote hit missing or mislabeled:\n%s", out)
	}
	if !strings.Contains(out, "[<local>] web-ui => /tmp/web-ui frontend skeleton") {
		t.Errorf("local hit missing or mislabeled:\n%s", out)
	}
}

func TestFindCmd_LocalBeforeRemote(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("web-ui", "", "/tmp/web-ui"))

	company := config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"}
	writeConfig(t, configPath, company)

	m := newFakeMaterializer()
	catalogFixture(t, m, company, `[[template]]
name = "web-api"
owner = "acme"
repository = "api-starter"
`)

	var buf bytes.Buffer
	if err := runFindWith("web", catalogPath, configPath, m, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	localPos := strings.Index(out, "[<local>]")
	remotePos := strings.Index(out, "[company]")
	if localPos < 0 || remotePos < 0 || localPos > remotePos {
		t.Errorf("local hits must precede remote hits:\n%s", out)
	}
}

func TestFindCmd_NoMatchesPrintsNothing(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("web-ui", "", "/tmp/web-ui"))

	var buf bytes.Buffer
	if err := runFindWith("xyzzy", catalogPath, configPath, newFakeMaterializer(), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFindCmd_CatalogFetchErrorFatal(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	writeConfig(t, configPath, config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"})

	// No fixture prepared, so the fetch fails.
	var buf bytes.Buffer
	err := runFindWith("web", catalogPath, configPath, newFakeMaterializer(), &buf)
	if err == nil {
		t.Fatal("expected error when a remote catalog cannot be fetched")
	}
}

// --- new ---

func TestNewCmd_FromRepoTemplate(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	ref := repo.New(repo.GitHub, "acme", "starter", "main")
	writeCatalog(t, catalogPath, catalog.NewRepoTemplate("starter", "", ref, 0, catalog.SetupNone))

	m := newFakeMaterializer()
	templateFixture(t, m, ref, map[string]string{
		"README.md":   "# Starter\n",
		"src/main.go": "package main\n",
	})

	dest := filepath.Join(t.TempDir(), "my-service")
	if err := runNewWith("starter", dest, "", false, catalogPath, configPath, m); err != nil {
		t.Fatalf("runNewWith: unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "README.md"))
	if err != nil {
		t.Fatalf("reading scaffolded file: %v", err)
	}
	if string(got) != "# Starter\n" {
		t.Errorf("scaffolded content = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dest, "src", "main.go")); err != nil {
		t.Errorf("nested file not copied: %v", err)
	}
}

func TestNewCmd_FromLocalTemplate(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "Makefile"), "all:\n")
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("mine", "", src))

	m := newFakeMaterializer()
	dest := filepath.Join(t.TempDir(), "proj")
	if err := runNewWith("mine", dest, "", false, catalogPath, configPath, m); err != nil {
		t.Fatalf("runNewWith: unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "Makefile")); err != nil {
		t.Errorf("file not copied: %v", err)
	}
	if m.calls != 0 {
		t.Errorf("local template touched the materializer %d times", m.calls)
	}
}

func TestNewCmd_DestinationIsFile(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("mine", "", t.TempDir()))

	dest := filepath.Join(t.TempDir(), "occupied")
	writeTestFile(t, dest, "a file")

	err := runNewWith("mine", dest, "", false, catalogPath, configPath, newFakeMaterializer())
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("error = %v, want not-a-directory failure", err)
	}
}

func TestNewCmd_DirtyDestination(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "new.txt"), "fresh")
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("mine", "", src))

	dest := t.TempDir()
	writeTestFile(t, filepath.Join(dest, "existing.txt"), "old")

	err := runNewWith("mine", dest, "", false, catalogPath, configPath, newFakeMaterializer())
	if err == nil || !strings.Contains(err.Error(), "not empty") {
		t.Fatalf("error = %v, want not-empty failure", err)
	}

	// --allow-dirty scaffolds anyway and keeps what was there.
	if err := runNewWith("mine", dest, "", true, catalogPath, configPath, newFakeMaterializer()); err != nil {
		t.Fatalf("runNewWith(allow dirty): %v", err)
	}
	for _, name := range []string{"existing.txt", "new.txt"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Errorf("%s missing after allow-dirty scaffold: %v", name, err)
		}
	}
}

func TestNewCmd_EmptyExistingDirOK(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "a.txt"), "a")
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("mine", "", src))

	dest := t.TempDir()
	if err := runNewWith("mine", dest, "", false, catalogPath, configPath, newFakeMaterializer()); err != nil {
		t.Fatalf("runNewWith(empty existing dir): %v", err)
	}
}

func TestNewCmd_UnknownTemplate(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	err := runNewWith("ghost", filepath.Join(t.TempDir(), "p"), "", false, catalogPath, configPath, newFakeMaterializer())
	if err == nil || !strings.Contains(err.Error(), "unknown template") {
		t.Fatalf("error = %v, want unknown-template failure", err)
	}
}

func TestNewCmd_LocalWinsOverRemote(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "origin.txt"), "local")
	writeCatalog(t, catalogPath, catalog.NewLocalTemplate("starter", "", src))

	company := config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"}
	writeConfig(t, configPath, company)

	m := newFakeMaterializer()
	dest := filepath.Join(t.TempDir(), "p")
	if err := runNewWith("starter", dest, "", false, catalogPath, configPath, m); err != nil {
		t.Fatalf("runNewWith: %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(dest, "origin.txt"))
	if string(got) != "local" {
		t.Errorf("scaffolded from the wrong catalog: %q", got)
	}
	if m.calls != 0 {
		t.Errorf("remote catalogs fetched despite a local hit: %d calls", m.calls)
	}
}

func TestNewCmd_ScopedToRemoteCatalog(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	company := config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"}
	writeConfig(t, configPath, company)

	m := newFakeMaterializer()
	catalogFixture(t, m, company, `[[template]]
name = "starter"
owner = "acme"
repository = "starter"
`)
	templateFixture(t, m, repo.New(repo.GitHub, "acme", "starter", "main"), map[string]string{
		"README.md": "from remote\n",
	})

	dest := filepath.Join(t.TempDir(), "p")
	if err := runNewWith("starter", dest, "company", false, catalogPath, configPath, m); err != nil {
		t.Fatalf("runNewWith(scoped): %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(dest, "README.md"))
	if string(got) != "from remote\n" {
		t.Errorf("scaffolded content = %q", got)
	}
}

func TestNewCmd_ScopeLocalIgnoresRemotes(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	company := config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"}
	writeConfig(t, configPath, company)

	m := newFakeMaterializer()
	catalogFixture(t, m, company, `[[template]]
name = "starter"
owner = "acme"
repository = "starter"
`)

	err := runNewWith("starter", filepath.Join(t.TempDir(), "p"), localCatalogName, false, catalogPath, configPath, m)
	if err == nil || !strings.Contains(err.Error(), "unknown template") {
		t.Fatalf("error = %v, want unknown-template failure", err)
	}
}

func TestNewCmd_ScopeUnknownCatalog(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	err := runNewWith("starter", filepath.Join(t.TempDir(), "p"), "ghost", false, catalogPath, configPath, newFakeMaterializer())
	if err == nil || !strings.Contains(err.Error(), "no catalog named") {
		t.Fatalf("error = %v, want unknown-catalog failure", err)
	}
}

// --- catalog add / remove ---

func TestCatalogAddCmd_Persists(t *testing.T) {
	t.Parallel()
	_, configPath := setupPaths(t)

	err := runCatalogAddWith("company", catalogAddOptions{
		provider:    "github",
		owner:       "acme",
		repository:  "templates",
		revision:    "",
		path:        "index.toml",
		description: "shared templates",
	}, configPath)
	if err != nil {
		t.Fatalf("runCatalogAddWith: unexpected error: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	rc, ok := cfg.Catalog("company")
	if !ok {
		t.Fatal("catalog not persisted")
	}
	want := config.RemoteCatalog{
		Name:        "company",
		Description: "shared templates",
		Provider:    "github",
		Owner:       "acme",
		Repository:  "templates",
		Revision:    "main",
		Path:        "index.toml",
	}
	if rc != want {
		t.Errorf("persisted declaration:\ngot  %+v\nwant %+v", rc, want)
	}
}

func TestCatalogAddCmd_ReservedName(t *testing.T) {
	t.Parallel()
	_, configPath := setupPaths(t)

	err := runCatalogAddWith("local", catalogAddOptions{provider: "github", owner: "a", repository: "b"}, configPath)
	if err == nil {
		t.Fatal("adding a catalog named local: expected error, got nil")
	}
}

func TestCatalogAddCmd_Duplicate(t *testing.T) {
	t.Parallel()
	_, configPath := setupPaths(t)
	writeConfig(t, configPath, config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"})

	err := runCatalogAddWith("company", catalogAddOptions{provider: "github", owner: "x", repository: "y"}, configPath)
	if err == nil {
		t.Fatal("duplicate catalog add: expected error, got nil")
	}
}

func TestCatalogRemoveCmd(t *testing.T) {
	t.Parallel()
	_, configPath := setupPaths(t)
	writeConfig(t, configPath,
		config.RemoteCatalog{Name: "company", Owner: "acme", Repository: "templates"},
		config.RemoteCatalog{Name: "community", Owner: "oss", Repository: "skeletons"})

	if err := runCatalogRemoveWith("company", configPath); err != nil {
		t.Fatalf("runCatalogRemoveWith: unexpected error: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cfg.Catalog("company"); ok {
		t.Error("removed catalog still present")
	}
	if _, ok := cfg.Catalog("community"); !ok {
		t.Error("unrelated catalog lost")
	}

	if err := runCatalogRemoveWith("ghost", configPath); err == nil {
		t.Error("removing absent catalog: expected error, got nil")
	}
	if err := runCatalogRemoveWith("local", configPath); err == nil {
		t.Error("removing the local catalog: expected error, got nil")
	}
}

// TestFullWorkflow_AddListNewRemove exercises the whole local-catalog
// lifecycle end to end.
func TestFullWorkflow_AddListNewRemove(t *testing.T) {
	t.Parallel()
	catalogPath, configPath := setupPaths(t)

	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "main.go"), "package main\n")

	// Step 1: add-local
	if err := runAddLocalWith("goproj", src, "a Go skeleton", catalogPath); err != nil {
		t.Fatalf("add-local: %v", err)
	}

	// Step 2: list shows it
	var buf bytes.Buffer
	if err := runListWith(catalogPath, &buf); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(buf.String(), "goproj => "+src) {
		t.Errorf("list output missing entry: %q", buf.String())
	}

	// Step 3: new scaffolds from it
	dest := filepath.Join(t.TempDir(), "hello")
	if err := runNewWith("goproj", dest, "", false, catalogPath, configPath, newFakeMaterializer()); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "main.go")); err != nil {
		t.Fatalf("scaffolded file missing: %v", err)
	}

	// Step 4: remove
	if err := runRemoveWith("goproj", catalogPath); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Step 5: the catalog is empty again
	if loadCatalog(t, catalogPath).Len() != 0 {
		t.Error("catalog not empty after remove")
	}
}
