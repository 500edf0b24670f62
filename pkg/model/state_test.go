package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

func TestState_DefaultsAreEmptyAndEnabled(t *testing.T) {
	state := model.NewState()

	for _, category := range model.Categories() {
		if got := state.Selected(category); len(got) != 0 {
			t.Fatalf("expected empty selection for %s, got %v", category, got)
		}
	}
	for _, section := range model.Sections() {
		if !state.Enabled(section) {
			t.Fatalf("expected section %s enabled by default", section)
		}
	}
}

func TestApply_ToggleKeyIsASet(t *testing.T) {
	state := model.NewState()

	changed := state.Apply(
		model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: true},
		model.ToggleKey{Category: model.CategoryTech, Key: "python", Selected: true},
	)
	if !changed {
		t.Fatalf("expected selection change")
	}
	if state.Apply(model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: true}) {
		t.Fatalf("re-selecting an existing key should be a no-op")
	}

	if diff := cmp.Diff([]string{"go", "python"}, state.Selected(model.CategoryTech)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}

	state.Apply(model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: false})
	if diff := cmp.Diff([]string{"python"}, state.Selected(model.CategoryTech)); diff != "" {
		t.Fatalf("selection mismatch after removal (-want +got):\n%s", diff)
	}
}

func TestApply_AddCustomRejectsBlankNames(t *testing.T) {
	state := model.NewState()

	if state.Apply(model.AddCustom{Category: model.CategoryTech, Entry: model.CustomEntry{Name: "   ", Version: "1"}}) {
		t.Fatalf("blank custom entry should be ignored")
	}
	if state.Apply(model.AddCustom{Category: model.CategoryPractices, Entry: model.CustomEntry{Name: "KISS"}}) {
		t.Fatalf("practices do not accept custom entries")
	}

	state.Apply(model.AddCustom{Category: model.CategoryTech, Entry: model.CustomEntry{Name: " Zig ", Version: " 0.11 ", Description: "build tooling "}})

	want := []model.CustomEntry{{Name: "Zig", Version: "0.11", Description: "build tooling"}}
	if diff := cmp.Diff(want, state.Custom(model.CategoryTech)); diff != "" {
		t.Fatalf("custom entries mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_RemoveCustom(t *testing.T) {
	state := model.NewState()
	state.Apply(
		model.AddCustom{Category: model.CategoryStyle, Entry: model.CustomEntry{Name: "golangci-lint"}},
		model.AddCustom{Category: model.CategoryStyle, Entry: model.CustomEntry{Name: "gofumpt"}},
	)

	if state.Apply(model.RemoveCustom{Category: model.CategoryStyle, Index: 5}) {
		t.Fatalf("out of range removal should be ignored")
	}
	if !state.Apply(model.RemoveCustom{Category: model.CategoryStyle, Index: 0}) {
		t.Fatalf("expected removal")
	}

	want := []model.CustomEntry{{Name: "gofumpt"}}
	if diff := cmp.Diff(want, state.Custom(model.CategoryStyle)); diff != "" {
		t.Fatalf("custom entries mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_OverridesAndToggles(t *testing.T) {
	state := model.NewState()
	state.Apply(
		model.SetVersion{Key: "python", Version: "3.11"},
		model.SetRole{Key: "python", Role: "API"},
		model.ToggleSection{Section: model.SectionTesting, Enabled: false},
	)

	if got := state.Override("python"); got != (model.Override{Version: "3.11", Role: "API"}) {
		t.Fatalf("override mismatch: %+v", got)
	}
	if state.Enabled(model.SectionTesting) {
		t.Fatalf("testing section should be disabled")
	}

	state.Apply(model.SetVersion{Key: "python"}, model.SetRole{Key: "python"})
	if !state.Override("python").IsZero() {
		t.Fatalf("clearing both fields should drop the override")
	}
}

func TestApply_ReplaceAndSetSelectionAreIdempotent(t *testing.T) {
	state := model.NewState()
	events := []model.Event{
		model.SetSelection{Category: model.CategoryPractices, Keys: []string{"solid", "dry", "solid"}},
		model.ReplaceCustom{Category: model.CategoryTech, Entries: []model.CustomEntry{{Name: "Go", Version: "1.22"}, {Name: ""}}},
	}

	if !state.Apply(events...) {
		t.Fatalf("expected first apply to change state")
	}
	if state.Apply(events...) {
		t.Fatalf("expected second apply to be a no-op")
	}
	if diff := cmp.Diff([]string{"solid", "dry"}, state.Selected(model.CategoryPractices)); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
	if got := len(state.Custom(model.CategoryTech)); got != 1 {
		t.Fatalf("expected blank custom entry dropped, got %d entries", got)
	}
}

func TestState_CloneIsIndependent(t *testing.T) {
	state := model.NewState()
	state.Apply(model.ToggleKey{Category: model.CategoryTech, Key: "go", Selected: true})

	clone := state.Clone()
	clone.Apply(model.ToggleKey{Category: model.CategoryTech, Key: "rust", Selected: true})

	if state.IsSelected(model.CategoryTech, "rust") {
		t.Fatalf("clone mutation leaked into original")
	}
}

func TestParseCategory_Aliases(t *testing.T) {
	cases := map[string]model.Category{
		"techStack":     model.CategoryTech,
		"bestPractices": model.CategoryPractices,
		"styleGuide":    model.CategoryStyle,
		"agents":        model.CategoryAgents,
	}
	for raw, want := range cases {
		got, ok := model.ParseCategory(raw)
		if !ok || got != want {
			t.Fatalf("ParseCategory(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}
	if _, ok := model.ParseCategory("databases"); ok {
		t.Fatalf("unexpected category match")
	}
}
