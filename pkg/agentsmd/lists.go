package agentsmd

import (
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/catalog"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Bullet formats a lookup-backed line: "- **Name (version)**: description".
// A non-empty role replaces the table description.
func Bullet(entry catalog.Entry, override model.Override) string {
	description := entry.Description
	if override.Role != "" {
		description = override.Role
	}
	return "- **" + entry.Name + versionSuffix(override.Version) + "**: " + description
}

// CustomBullet formats a custom entry, omitting the empty parts.
func CustomBullet(entry model.CustomEntry) string {
	line := "- **" + entry.Name + versionSuffix(entry.Version) + "**"
	if entry.Description != "" {
		line += ": " + entry.Description
	}
	return line
}

func versionSuffix(version string) string {
	if version == "" {
		return ""
	}
	return " (" + version + ")"
}

// categoryLines renders the lookup-backed bullets for category followed by its
// custom entries.
func categoryLines(state *model.State, cat *catalog.Catalog, category model.Category) []string {
	table := cat.Table(category)
	var lines []string
	for _, key := range state.Selected(category) {
		lines = append(lines, Bullet(table.Resolve(key), state.Override(key)))
	}
	for _, entry := range state.Custom(category) {
		lines = append(lines, CustomBullet(entry))
	}
	return lines
}

func techStackBody(state *model.State, cat *catalog.Catalog) string {
	var blocks []string
	if primary := categoryLines(state, cat, model.CategoryTech); len(primary) > 0 {
		blocks = append(blocks, strings.Join(primary, "\n"))
	}
	if frontend := categoryLines(state, cat, model.CategoryFrontend); len(frontend) > 0 {
		blocks = append(blocks, frontendLabel+"\n"+strings.Join(frontend, "\n"))
	}
	if len(blocks) == 0 {
		return DefaultTechStack
	}
	return strings.Join(blocks, "\n\n")
}

func practicesBody(state *model.State, cat *catalog.Catalog) string {
	lines := categoryLines(state, cat, model.CategoryPractices)
	return withNotes(lines, state.Project.PracticeNotes)
}

func testingBody(state *model.State, cat *catalog.Catalog) string {
	lines := categoryLines(state, cat, model.CategoryTesting)
	return withNotes(lines, state.Project.TestingNotes)
}

func styleBody(state *model.State, cat *catalog.Catalog) string {
	table := cat.Table(model.CategoryStyle)
	var lines []string
	for _, key := range state.Selected(model.CategoryStyle) {
		lines = append(lines, Bullet(table.Resolve(key), state.Override(key)))
	}
	// Linters carry no version.
	for _, entry := range state.Custom(model.CategoryStyle) {
		entry.Version = ""
		lines = append(lines, CustomBullet(entry))
	}
	if len(lines) == 0 {
		return DefaultStyleGuide
	}
	return strings.Join(lines, "\n")
}

func withNotes(lines []string, notes string) string {
	notes = strings.TrimSpace(notes)
	body := strings.Join(lines, "\n")
	switch {
	case notes == "":
		return body
	case body == "":
		return notes
	}
	return body + "\n\n" + notes
}

// TechContext builds the sentence substituted into {{TECH_CONTEXT}}. It lists
// the selected primary tech keys and custom tech entries with their version
// and role, or returns "" when nothing is selected.
func TechContext(state *model.State) string {
	var items []string
	for _, key := range state.Selected(model.CategoryTech) {
		override := state.Override(key)
		items = append(items, contextItem(key, override.Version, override.Role))
	}
	for _, entry := range state.Custom(model.CategoryTech) {
		items = append(items, contextItem(entry.Name, entry.Version, entry.Description))
	}
	if len(items) == 0 {
		return ""
	}
	return "This project uses: " + strings.Join(items, ", ") + "."
}

func contextItem(name, version, note string) string {
	item := name
	if version != "" {
		item += " " + version
	}
	if note != "" {
		item += " (" + note + ")"
	}
	return item
}
