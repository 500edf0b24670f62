package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-agentsgen/pkg/form"
	"github.com/goliatone/go-agentsgen/pkg/wizard"
)

func TestRunWizard_WalksEveryStep(t *testing.T) {
	driver := &stubDriver{
		// welcome, basic-info, tech-stack, structure (skip), commands,
		// practices, testing, stop-points, review (generate)
		selectIdx: []int{0, 0, 0, 2, 0, 0, 0, 0, 0},
		inputs:    []string{"Atlas", "Go", "1.22", "API server", "go test", ""},
		textAreas: []string{"Weather API", "/cmd - entrypoints", "", "", ""},
		confirm:   []bool{true, false, false},
		multiIdx:  [][]int{{0}, {0}},
	}
	var previews []string
	p := newTestPrompter(t, driver, WithPreview(func(markdown string) {
		previews = append(previews, markdown)
	}))
	ctrl := wizard.New()

	doc, err := p.RunWizard(context.Background(), ctrl)
	if err != nil {
		t.Fatalf("run wizard: %v", err)
	}

	for _, want := range []string{
		"# Agent Configuration for Atlas",
		"Weather API",
		"- **Go (1.22)**: API server",
		"/cmd - entrypoints",
		"- **go test**",
		"- Requirements are unclear or ambiguous",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}

	if len(previews) != 7 {
		t.Fatalf("expected a preview for each middle step, got %d", len(previews))
	}
	if !ctrl.Completed(wizard.StepBasicInfo) || ctrl.Completed(wizard.StepProjectStructure) {
		t.Fatalf("unexpected completion flags")
	}
	if !driver.sawInfo("Project Structure [Complete]") || !driver.sawInfo("Key Commands [Skipped]") {
		t.Fatalf("review summary missing card statuses: %v", driver.infoMessages)
	}
	if !driver.sawInfo("Step 2 of 9") {
		t.Fatalf("expected progress header, got %v", driver.infoMessages)
	}
}

func TestRunWizard_BlockedNextAndQuit(t *testing.T) {
	steps := []wizard.Step{
		{ID: "intro", Title: "Intro"},
		{
			ID:       "gate",
			Title:    "Gate",
			Required: true,
			Form:     form.Form{Fields: []form.Field{{Name: "answer", Type: form.FieldTypeString}}},
			Validate: func(values form.Values) bool { return values.String("answer") == "ok" },
		},
		{ID: "done", Title: "Done"},
	}
	driver := &stubDriver{
		selectIdx: []int{0, 0, 0, 3},
		inputs:    []string{"nope", "ok"},
	}
	p := newTestPrompter(t, driver)
	ctrl := wizard.New(wizard.WithSteps(steps))

	_, err := p.RunWizard(context.Background(), ctrl)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !driver.sawInfo("Please complete this step before continuing.") {
		t.Fatalf("expected blocked message, got %v", driver.infoMessages)
	}
	if ctrl.Index() != 2 {
		t.Fatalf("expected wizard on the last step, got %d", ctrl.Index())
	}
}

func TestRunWizard_EditFromReview(t *testing.T) {
	steps := []wizard.Step{
		{ID: "intro", Title: "Intro"},
		{ID: "middle", Title: "Middle"},
		{ID: "done", Title: "Done"},
	}
	driver := &stubDriver{
		// intro: start, middle: next, review: edit -> Middle, middle: next, review: generate
		selectIdx: []int{0, 0, 1, 0, 0, 0},
	}
	p := newTestPrompter(t, driver)
	ctrl := wizard.New(wizard.WithSteps(steps))

	if _, err := p.RunWizard(context.Background(), ctrl); err != nil {
		t.Fatalf("run wizard: %v", err)
	}
	if driver.selectPos != len(driver.selectIdx) {
		t.Fatalf("expected all selections consumed, used %d", driver.selectPos)
	}
}

func TestRunWizard_NilController(t *testing.T) {
	p := newTestPrompter(t, &stubDriver{})
	if _, err := p.RunWizard(context.Background(), nil); !errors.Is(err, ErrNilController) {
		t.Fatalf("expected ErrNilController, got %v", err)
	}
}
