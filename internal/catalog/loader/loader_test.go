package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-agentsgen/internal/catalog/loader"
	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

const (
	baseTemplate = "# {{PROJECT_NAME}}\n\n## Tech Stack\n\n{{TECH_STACK}}\n"
	sectionsYAML = "techStack:\n  zig:\n    name: Zig\n    description: Systems language\n"
)

func TestLoader_Dir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, catalog.BaseTemplateFile), baseTemplate)
	writeFile(t, filepath.Join(dir, "sections.yml"), sectionsYAML)

	l := loader.New(catalog.NewLoaderOptions())
	cat, err := l.Load(context.Background(), catalog.SourceFromDir(dir))
	if err != nil {
		t.Fatalf("load dir: %v", err)
	}
	if cat.Base != baseTemplate {
		t.Fatalf("unexpected base template %q", cat.Base)
	}
	if got := cat.Table(model.CategoryTech).Resolve("zig").Name; got != "Zig" {
		t.Fatalf("unexpected zig name %q", got)
	}
	if len(cat.Agents) != 0 {
		t.Fatalf("expected no agents when the document is absent")
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"bundle/base-template.md": {Data: []byte(baseTemplate)},
		"bundle/sections.yaml":    {Data: []byte(sectionsYAML)},
	}

	l := loader.New(catalog.NewLoaderOptions(catalog.WithFileSystem(files)))
	cat, err := l.Load(context.Background(), catalog.SourceFromFS("bundle"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if cat.Source != "bundle" {
		t.Fatalf("unexpected source %q", cat.Source)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets/base-template.md":
			_, _ = w.Write([]byte(baseTemplate))
		case "/assets/sections.yaml":
			_, _ = w.Write([]byte(sectionsYAML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src, err := catalog.SourceFromURL(server.URL + "/assets/")
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	l := loader.New(catalog.NewLoaderOptions(catalog.WithHTTP(2 * time.Second)))
	cat, err := l.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if got := cat.Table(model.CategoryTech).Resolve("zig").Description; got != "Systems language" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestLoader_HTTPDisabledByDefault(t *testing.T) {
	src, err := catalog.SourceFromURL("https://example.com/assets")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	_, err = loader.New(catalog.NewLoaderOptions()).Load(context.Background(), src)
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http disabled error, got %v", err)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New(catalog.NewLoaderOptions()).Load(ctx, catalog.SourceFromDir(t.TempDir()))
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestLoader_FallbackThroughLoadOrDefault(t *testing.T) {
	l := loader.New(catalog.NewLoaderOptions())
	cat := catalog.LoadOrDefault(context.Background(), l, catalog.SourceFromDir(filepath.Join(t.TempDir(), "missing")), catalog.NewLoaderOptions().Logger)
	if cat.Source != catalog.EmbeddedSource {
		t.Fatalf("expected embedded fallback, got %q", cat.Source)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
