package html_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen/pkg/render"
	"github.com/goliatone/go-agentsgen/pkg/renderers/html"
)

func TestRenderer_EscapesMarkdownBody(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	doc := render.Document{
		Name:     "AGENTS.md",
		Filename: "AGENTS.md",
		Markdown: "# Atlas\n\n<script>alert(1)</script>\n- **Go**: services",
	}
	out, err := r.Render(context.Background(), doc, render.RenderOptions{
		Metadata: map[string]string{"generator": "agentsgen"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	page := string(out)

	if strings.Contains(page, "<script>") {
		t.Fatalf("raw script tag leaked into page:\n%s", page)
	}
	if !strings.Contains(page, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in page:\n%s", page)
	}
	if !strings.Contains(page, `<pre class="document"><code>`) {
		t.Fatalf("expected preview block in page:\n%s", page)
	}
	if !strings.Contains(page, "<title>AGENTS.md</title>") {
		t.Fatalf("expected document name as title:\n%s", page)
	}
	if !strings.Contains(page, "agentsgen") {
		t.Fatalf("expected generator metadata:\n%s", page)
	}
}

func TestRenderer_TitleOverride(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := r.Render(context.Background(), render.Document{Name: "AGENTS.md"}, render.RenderOptions{Title: "Preview"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<title>Preview</title>") {
		t.Fatalf("expected title override:\n%s", out)
	}
}

func TestSanitize_DropsUnexpectedMarkup(t *testing.T) {
	got := html.Sanitize(`<pre onclick="x()"><code>ok</code><img src=x></pre>`)
	if got != "<pre><code>ok</code></pre>" {
		t.Fatalf("unexpected sanitized markup %q", got)
	}
}
