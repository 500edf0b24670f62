package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-agentsgen/pkg/form"
)

func TestForm_Missing(t *testing.T) {
	f := form.Form{
		ID: "basic-info",
		Fields: []form.Field{
			{Name: "projectName", Type: form.FieldTypeString, Required: true},
			{Name: "projectDescription", Type: form.FieldTypeText, Required: true},
			{Name: "notes", Type: form.FieldTypeText},
		},
	}

	values := form.Values{"projectName": "  "}
	if diff := cmp.Diff([]string{"projectName", "projectDescription"}, f.Missing(values)); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}

	values.Set("projectName", "Atlas").Set("projectDescription", "Dashboards")
	if got := f.Missing(values); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
}

func TestValues_CloneIsDeep(t *testing.T) {
	original := form.Values{}
	original.Set("principles", []string{"SOLID"})
	original.Set("commands", []form.Row{{"command": "make test"}})

	clone := original.Clone()
	clone.Rows("commands")[0]["command"] = "changed"
	clone["principles"].([]string)[0] = "DRY"

	if got := original.Strings("principles"); got[0] != "SOLID" {
		t.Fatalf("clone shares list storage: %v", got)
	}
	if got := original.Rows("commands")[0]["command"]; got != "make test" {
		t.Fatalf("clone shares row storage: %q", got)
	}
}

func TestValues_HasData(t *testing.T) {
	cases := []struct {
		values form.Values
		want   bool
	}{
		{form.Values{}, false},
		{form.Values{"name": "   ", "list": []string{}}, false},
		{form.Values{"rows": []form.Row{{"name": ""}}}, true},
		{form.Values{"name": "Atlas"}, true},
		{form.Values{"flag": true}, true},
	}
	for i, tc := range cases {
		if got := tc.values.HasData(); got != tc.want {
			t.Fatalf("case %d: HasData() = %v, want %v", i, got, tc.want)
		}
	}
}

func TestField_OptionLabel(t *testing.T) {
	field := form.Field{Options: []form.Option{{Value: "dry", Label: "DRY"}, {Value: "kiss"}}}
	if got := field.OptionLabel("dry"); got != "DRY" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := field.OptionLabel("kiss"); got != "kiss" {
		t.Fatalf("unexpected fallback label %q", got)
	}
}
