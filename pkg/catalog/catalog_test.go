package catalog_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

func TestDefault_LoadsEmbeddedAssets(t *testing.T) {
	cat := catalog.Default()

	if cat.Source != catalog.EmbeddedSource {
		t.Fatalf("expected embedded source, got %q", cat.Source)
	}
	for _, category := range []model.Category{
		model.CategoryTech,
		model.CategoryFrontend,
		model.CategoryTesting,
		model.CategoryPractices,
		model.CategoryStyle,
	} {
		if len(cat.Keys(category)) == 0 {
			t.Fatalf("expected keys for %s", category)
		}
	}

	python := cat.Table(model.CategoryTech).Resolve("python")
	if python.Name != "Python" {
		t.Fatalf("unexpected python entry: %+v", python)
	}

	agents := cat.Keys(model.CategoryAgents)
	want := []string{"api", "database", "documentation", "performance", "refactoring", "security", "testing"}
	if diff := cmp.Diff(want, agents); diff != "" {
		t.Fatalf("agent types mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := catalog.Default()
	first.Tables[model.CategoryTech]["go"] = catalog.Entry{Name: "mutated"}
	first.Base = "mutated"

	second := catalog.Default()
	if second.Base == "mutated" {
		t.Fatalf("base template leaked between copies")
	}
	if second.Table(model.CategoryTech).Resolve("go").Name != "Go" {
		t.Fatalf("lookup table leaked between copies")
	}
}

func TestLookupTable_ResolveUnknownKey(t *testing.T) {
	table := catalog.LookupTable{"go": {Description: "no name"}}

	if got := table.Resolve("go"); got.Name != "go" || got.Description != "no name" {
		t.Fatalf("expected empty name filled with the key, got %+v", got)
	}
	if got := table.Resolve("elixir"); got != (catalog.Entry{Name: "elixir"}) {
		t.Fatalf("unexpected fallback entry: %+v", got)
	}

	var missing catalog.LookupTable
	if got := missing.Resolve("go"); got.Name != "go" {
		t.Fatalf("nil table should resolve to the raw key, got %+v", got)
	}
}

func TestAgentTemplate_FileName(t *testing.T) {
	if got := (catalog.AgentTemplate{Filename: "docs-agent"}).FileName("documentation"); got != "docs-agent.md" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := (catalog.AgentTemplate{}).FileName("security"); got != "security-agent.md" {
		t.Fatalf("unexpected default file name %q", got)
	}
}

func TestReadFS_JSONAndYAML(t *testing.T) {
	files := fstest.MapFS{
		"base-template.md": {Data: []byte("# {{PROJECT_NAME}}\n")},
		"sections.json":    {Data: []byte(`{"techStack":{"zig":{"name":"Zig","description":"Systems language"}}}`)},
		"agents.yaml":      {Data: []byte("docs:\n  name: Docs\n  template: \"# {{PROJECT_NAME}}\"\n")},
	}

	cat, err := catalog.ReadFS(files)
	if err != nil {
		t.Fatalf("read fs: %v", err)
	}
	if got := cat.Table(model.CategoryTech).Resolve("zig").Description; got != "Systems language" {
		t.Fatalf("unexpected zig description %q", got)
	}
	if _, ok := cat.Agent("docs"); !ok {
		t.Fatalf("expected docs agent")
	}
}

func TestReadFS_Errors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"missing base": {
			"sections.yaml": {Data: []byte("techStack: {}\n")},
		},
		"missing sections": {
			"base-template.md": {Data: []byte("# x\n")},
		},
		"unknown table": {
			"base-template.md": {Data: []byte("# x\n")},
			"sections.yaml":    {Data: []byte("databases:\n  pg:\n    name: Postgres\n")},
		},
		"empty agent template": {
			"base-template.md": {Data: []byte("# x\n")},
			"sections.yaml":    {Data: []byte("techStack: {}\n")},
			"agents.yaml":      {Data: []byte("docs:\n  name: Docs\n")},
		},
	}
	for name, files := range cases {
		if _, err := catalog.ReadFS(files); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestParseSource(t *testing.T) {
	src, err := catalog.ParseSource("https://example.com/assets/")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if src.Kind() != catalog.SourceKindURL || src.Location() != "https://example.com/assets" {
		t.Fatalf("unexpected url source %s %s", src.Kind(), src.Location())
	}

	src, err = catalog.ParseSource("./assets")
	if err != nil {
		t.Fatalf("parse dir: %v", err)
	}
	if src.Kind() != catalog.SourceKindDir || src.Location() != "assets" {
		t.Fatalf("unexpected dir source %s %s", src.Kind(), src.Location())
	}

	if _, err := catalog.ParseSource("  "); !errors.Is(err, catalog.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, catalog.Source) (*catalog.Catalog, error) {
	return nil, errors.New("offline")
}

func TestLoadOrDefault_FallsBackToEmbedded(t *testing.T) {
	cat := catalog.LoadOrDefault(context.Background(), failingLoader{}, catalog.SourceFromDir("missing"), zerolog.Nop())
	if cat == nil || cat.Source != catalog.EmbeddedSource {
		t.Fatalf("expected embedded fallback, got %+v", cat)
	}

	cat = catalog.LoadOrDefault(context.Background(), nil, nil, zerolog.Nop())
	if cat == nil || cat.Source != catalog.EmbeddedSource {
		t.Fatalf("expected embedded catalog without a source")
	}
}
