package orchestrator_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
	"github.com/goliatone/go-agentsgen/pkg/render"
	"github.com/goliatone/go-agentsgen/pkg/testsupport"
)

func TestOrchestrator_Generate_EmptyStateGolden(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithClock(testsupport.FixedClock()))

	result, err := gen.Generate(testsupport.Context(), orchestrator.Request{State: model.NewState()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Primary.Name != "AGENTS.md" {
		t.Fatalf("unexpected primary name %q", result.Primary.Name)
	}
	if !strings.HasPrefix(result.Primary.ContentType, "text/markdown") {
		t.Fatalf("unexpected content type %q", result.Primary.ContentType)
	}
	if len(result.Agents) != 0 {
		t.Fatalf("expected no sub-agent documents, got %d", len(result.Agents))
	}

	goldenPath := filepath.Join("testdata", "empty.golden.md")
	if testsupport.WriteMaybeGolden(t, goldenPath, result.Primary.Content) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(result.Primary.Content)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestOrchestrator_Generate_AgentDocuments(t *testing.T) {
	state := model.NewState()
	state.Apply(
		model.SetField{Field: model.FieldName, Value: "Atlas"},
		model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: true},
		model.ToggleKey{Category: model.CategoryAgents, Key: "api", Selected: true},
		model.ToggleKey{Category: model.CategoryAgents, Key: "ghost", Selected: true},
		model.ToggleKey{Category: model.CategoryAgents, Key: "testing", Selected: true},
	)

	gen := orchestrator.New(orchestrator.WithClock(testsupport.FixedClock()))
	result, err := gen.Generate(context.Background(), orchestrator.Request{State: state})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var names []string
	for _, file := range result.Files() {
		names = append(names, file.Name)
	}
	if got, want := strings.Join(names, ","), "AGENTS.md,api-agent.md,testing-agent.md"; got != want {
		t.Fatalf("unexpected files %s, want %s", got, want)
	}
	api := string(result.Agents[0].Content)
	if !strings.Contains(api, "Atlas") || !strings.Contains(api, "This project uses: go.") {
		t.Fatalf("sub-agent document missing project context:\n%s", api)
	}
}

func TestOrchestrator_Generate_HTMLFormat(t *testing.T) {
	state := model.NewState()
	state.Apply(
		model.SetField{Field: model.FieldName, Value: "<Atlas>"},
		model.ToggleKey{Category: model.CategoryAgents, Key: "api", Selected: true},
	)

	gen := orchestrator.New(orchestrator.WithClock(testsupport.FixedClock()))
	result, err := gen.Generate(context.Background(), orchestrator.Request{
		State:         state,
		Renderer:      "HTML",
		RenderOptions: render.RenderOptions{Title: "Preview"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.Primary.Name != "AGENTS.html" || result.Agents[0].Name != "api-agent.html" {
		t.Fatalf("unexpected names %q %q", result.Primary.Name, result.Agents[0].Name)
	}
	page := string(result.Primary.Content)
	if !strings.Contains(page, "Agent Configuration for &lt;Atlas&gt;") {
		t.Fatalf("expected escaped project name:\n%s", page)
	}
	if !strings.HasPrefix(result.Primary.Markdown, "# Agent Configuration for <Atlas>") {
		t.Fatalf("markdown source should stay unescaped: %q", result.Primary.Markdown[:40])
	}
}

func TestOrchestrator_Generate_UnknownRenderer(t *testing.T) {
	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{State: model.NewState(), Renderer: "pdf"})
	if err == nil || !strings.Contains(err.Error(), `renderer "pdf"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestOrchestrator_Generate_RequiresState(t *testing.T) {
	gen := orchestrator.New()
	if _, err := gen.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for missing state")
	}
}

func TestOrchestrator_Generate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := orchestrator.New()
	_, err := gen.Generate(ctx, orchestrator.Request{State: model.NewState()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_Markdown_PruningToggle(t *testing.T) {
	state := model.NewState()

	pruned := orchestrator.New(orchestrator.WithClock(testsupport.FixedClock())).Markdown(context.Background(), state)
	if strings.Contains(pruned, "## Best Practices") {
		t.Fatalf("empty best practices section should be pruned")
	}

	raw := orchestrator.New(
		orchestrator.WithClock(testsupport.FixedClock()),
		orchestrator.WithPruning(false),
	).Markdown(context.Background(), state)
	if !strings.Contains(raw, "## Best Practices") {
		t.Fatalf("unpruned output should keep the empty section")
	}
}

func TestOrchestrator_Catalog_FallsBackToEmbedded(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithSource(catalog.SourceFromDir(filepath.Join("testdata", "missing"))))

	cat := gen.Catalog(context.Background())
	if cat.Source != catalog.EmbeddedSource {
		t.Fatalf("expected embedded fallback, got %q", cat.Source)
	}
	if len(cat.AgentTypes()) == 0 {
		t.Fatalf("expected embedded agent templates")
	}
}

func TestOrchestrator_WithCatalog(t *testing.T) {
	cat, err := catalog.NewCatalog(catalog.Files{
		Base:     []byte("# {{PROJECT_NAME}}\n\n{{PROJECT_DESCRIPTION}}\n\n## Tech\n\n{{TECH_STACK}}\n"),
		Sections: []byte("techStack:\n  go:\n    name: Go\n    description: Go services\n"),
	}, "inline")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	state := model.NewState()
	state.Apply(model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: true})

	got := orchestrator.New(orchestrator.WithCatalog(cat)).Markdown(context.Background(), state)
	want := "# Your Project\n\nA description of your project\n\n## Tech\n\n- **Go**: Go services"
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}
