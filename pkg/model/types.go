package model

import "strings"

// Category identifies one of the fixed groups of selectable keys.
type Category string

const (
	CategoryTech      Category = "tech"
	CategoryFrontend  Category = "frontend"
	CategoryTesting   Category = "testing"
	CategoryPractices Category = "practices"
	CategoryStyle     Category = "style"
	CategoryAgents    Category = "agents"
)

var categories = []Category{
	CategoryTech,
	CategoryFrontend,
	CategoryTesting,
	CategoryPractices,
	CategoryStyle,
	CategoryAgents,
}

// Categories returns every category in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory resolves a category name, accepting the camelCase aliases used
// by the lookup table files (techStack, bestPractices, styleGuide).
func ParseCategory(raw string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tech", "techstack", "tech-stack", "tech_stack":
		return CategoryTech, true
	case "frontend":
		return CategoryFrontend, true
	case "testing":
		return CategoryTesting, true
	case "practices", "bestpractices", "best-practices", "best_practices":
		return CategoryPractices, true
	case "style", "styleguide", "style-guide", "style_guide", "linters":
		return CategoryStyle, true
	case "agents", "subagents", "sub-agents":
		return CategoryAgents, true
	}
	return "", false
}

// SupportsCustom reports whether users may add free-form entries to the
// category. Best practices and sub-assistant types are lookup-only.
func (c Category) SupportsCustom() bool {
	switch c {
	case CategoryTech, CategoryFrontend, CategoryTesting, CategoryStyle:
		return true
	}
	return false
}

// Section names a toggleable block of the generated document.
type Section string

const (
	SectionTech      Section = "tech"
	SectionTesting   Section = "testing"
	SectionPractices Section = "practices"
	SectionStyle     Section = "style"
	SectionWorkflows Section = "workflows"
)

var sections = []Section{
	SectionTech,
	SectionTesting,
	SectionPractices,
	SectionStyle,
	SectionWorkflows,
}

// Sections returns every toggleable section.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// ParseSection resolves a section name.
func ParseSection(raw string) (Section, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tech", "techstack", "tech-stack":
		return SectionTech, true
	case "testing":
		return SectionTesting, true
	case "practices", "bestpractices", "best-practices":
		return SectionPractices, true
	case "style", "styleguide", "style-guide":
		return SectionStyle, true
	case "workflows":
		return SectionWorkflows, true
	}
	return "", false
}

// Field names a free-text project field.
type Field string

const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldStructure      Field = "structure"
	FieldCommands       Field = "commands"
	FieldWorkflows      Field = "workflows"
	FieldStopConditions Field = "stopConditions"
	FieldPracticeNotes  Field = "practiceNotes"
	FieldTestingNotes   Field = "testingNotes"
)

// ProjectConfig holds the free-text answers. Values are stored verbatim; the
// renderer decides which defaults apply to empty fields.
type ProjectConfig struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Structure      string `json:"structure,omitempty" yaml:"structure,omitempty"`
	Commands       string `json:"commands,omitempty" yaml:"commands,omitempty"`
	Workflows      string `json:"workflows,omitempty" yaml:"workflows,omitempty"`
	StopConditions string `json:"stopConditions,omitempty" yaml:"stop_conditions,omitempty"`
	// PracticeNotes and TestingNotes carry the wizard's free-form guidelines.
	// They are appended after the corresponding lookup lists.
	PracticeNotes string `json:"practiceNotes,omitempty" yaml:"practice_notes,omitempty"`
	TestingNotes  string `json:"testingNotes,omitempty" yaml:"testing_notes,omitempty"`
}

// Get returns the value stored for field.
func (p ProjectConfig) Get(field Field) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldDescription:
		return p.Description
	case FieldStructure:
		return p.Structure
	case FieldCommands:
		return p.Commands
	case FieldWorkflows:
		return p.Workflows
	case FieldStopConditions:
		return p.StopConditions
	case FieldPracticeNotes:
		return p.PracticeNotes
	case FieldTestingNotes:
		return p.TestingNotes
	}
	return ""
}

// Set writes value into field and reports whether anything changed.
func (p *ProjectConfig) Set(field Field, value string) bool {
	var target *string
	switch field {
	case FieldName:
		target = &p.Name
	case FieldDescription:
		target = &p.Description
	case FieldStructure:
		target = &p.Structure
	case FieldCommands:
		target = &p.Commands
	case FieldWorkflows:
		target = &p.Workflows
	case FieldStopConditions:
		target = &p.StopConditions
	case FieldPracticeNotes:
		target = &p.PracticeNotes
	case FieldTestingNotes:
		target = &p.TestingNotes
	default:
		return false
	}
	if *target == value {
		return false
	}
	*target = value
	return true
}

// Override carries the optional per-key version and role description. A
// non-empty Role replaces the lookup table's default description.
type Override struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Role    string `json:"role,omitempty" yaml:"role,omitempty"`
}

// IsZero reports whether neither field is set.
func (o Override) IsZero() bool {
	return o.Version == "" && o.Role == ""
}

// CustomEntry is a user-added item that does not exist in any lookup table.
type CustomEntry struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewCustomEntry trims the inputs and rejects entries with a blank name.
func NewCustomEntry(name, version, description string) (CustomEntry, bool) {
	entry := CustomEntry{
		Name:        strings.TrimSpace(name),
		Version:     strings.TrimSpace(version),
		Description: strings.TrimSpace(description),
	}
	if entry.Name == "" {
		return CustomEntry{}, false
	}
	return entry, true
}
