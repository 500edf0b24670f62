package wizard

import (
	"strings"

	"github.com/goliatone/go-agentsgen/pkg/form"
	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Step identifiers of the default sequence.
const (
	StepWelcome          = "welcome"
	StepBasicInfo        = "basic-info"
	StepTechStack        = "tech-stack"
	StepProjectStructure = "project-structure"
	StepCommands         = "commands"
	StepBestPractices    = "best-practices"
	StepTesting          = "testing"
	StepStopPoints       = "stop-points"
	StepReview           = "review"
)

// Fragment field names.
const (
	FieldProjectName        = "projectName"
	FieldProjectDescription = "projectDescription"
	FieldTechnologies       = "technologies"
	FieldStructure          = "structure"
	FieldCommands           = "commands"
	FieldPrinciples         = "principles"
	FieldCustomGuidelines   = "customGuidelines"
	FieldFramework          = "framework"
	FieldPattern            = "pattern"
	FieldGuidelines         = "guidelines"
	FieldConditions         = "conditions"
	FieldAdditional         = "additional"
)

// principleKeys maps wizard principle choices onto best practice lookup keys.
var principleKeys = map[string]string{
	"SOLID":      "solid",
	"DRY":        "dry",
	"KISS":       "kiss",
	"Clean Code": "clean-code",
}

// StopConditions maps stop point choices to the sentence written into the
// document.
var StopConditions = map[string]string{
	"unclear":             "Requirements are unclear or ambiguous",
	"multiple-approaches": "Multiple valid approaches exist and choice impacts architecture",
	"breaking-changes":    "About to make breaking changes",
	"unexpected-errors":   "Encountering unexpected errors or edge cases",
	"business-logic":      "Unsure about business logic or domain-specific rules",
}

const whyTitle = "Why This Matters"

// DefaultSteps returns the standard nine step sequence.
func DefaultSteps() []Step {
	return []Step{
		{
			ID:       StepWelcome,
			Title:    "Welcome to AGENTS.md Generator",
			Subtitle: "We'll guide you through each section, explaining why it matters",
			Form:     form.Form{ID: StepWelcome},
		},
		{
			ID:       StepBasicInfo,
			Title:    "Basic Project Information",
			Subtitle: "Tell us about your project",
			Why: &Why{whyTitle, "Agents need to understand your project's purpose and structure to provide relevant suggestions. " +
				"Clear project information helps AI make better decisions and saves you from repeating context."},
			Required: true,
			Form: form.Form{
				ID: StepBasicInfo,
				Fields: []form.Field{
					{Name: FieldProjectName, Type: form.FieldTypeString, Required: true, Label: "Project Name", Placeholder: "my-awesome-project", Description: "The name of your project"},
					{Name: FieldProjectDescription, Type: form.FieldTypeText, Required: true, Label: "Project Description", Placeholder: "A web application that helps users...", Description: "Brief description of what your project does"},
				},
				Examples: []form.Example{
					{Title: "E-commerce Platform", Content: "A full-stack e-commerce platform for selling handmade crafts with payment processing, inventory management, and seller dashboards."},
					{Title: "API Service", Content: "RESTful API service for real-time weather data aggregation, providing endpoints for current conditions, forecasts, and historical data."},
				},
			},
			Events:   basicInfoEvents,
			Validate: validateBasicInfo,
		},
		{
			ID:       StepTechStack,
			Title:    "Technology Stack",
			Subtitle: "Define your languages, frameworks, and tools",
			Why: &Why{whyTitle, "Specifying exact versions helps agents use correct syntax, avoid deprecated features, and suggest appropriate patterns. " +
				"This reduces token usage by not having to infer your setup."},
			Form: form.Form{
				ID: StepTechStack,
				Fields: []form.Field{
					{Name: FieldTechnologies, Type: form.FieldTypeRows, Label: "Technology", Columns: []form.Field{
						{Name: "name", Type: form.FieldTypeString, Label: "Technology name"},
						{Name: "version", Type: form.FieldTypeString, Label: "Version"},
						{Name: "role", Type: form.FieldTypeText, Label: "Role in project"},
					}},
				},
				Examples: []form.Example{
					{Title: "Full Stack JavaScript", Content: "Node.js 20.x (Backend API), React 18.2 (Frontend UI), PostgreSQL 15 (Database)"},
					{Title: "Python Data Science", Content: "Python 3.11 (Core language), Pandas 2.0 (Data processing), Jupyter (Notebooks)"},
				},
			},
			Events: techStackEvents,
		},
		{
			ID:       StepProjectStructure,
			Title:    "Project Structure",
			Subtitle: "Map your directory layout",
			Why: &Why{whyTitle, "Reduces navigation tokens significantly. AI knows where to find things without exploring. " +
				"Saves time and API costs by not having to map your directory tree repeatedly."},
			Form: form.Form{
				ID: StepProjectStructure,
				Fields: []form.Field{
					{Name: FieldStructure, Type: form.FieldTypeText, Label: "Directory Structure", Placeholder: "/src - Main application code", Description: "List key directories and their purposes (one per line)"},
				},
				Examples: []form.Example{
					{Title: "React Application", Content: "/src - React components and application code\n/public - Static assets\n/tests - Jest test files\n/build - Production build output"},
					{Title: "Python API", Content: "/app - Application code\n/tests - Pytest test files\n/migrations - Database migrations\n/docs - API documentation"},
				},
			},
			Events: structureEvents,
		},
		{
			ID:       StepCommands,
			Title:    "Key Commands",
			Subtitle: "Define your workflow commands",
			Why: &Why{whyTitle, "AI can run the right commands without guessing or asking. " +
				"Clear commands prevent mistakes and streamline development workflows."},
			Form: form.Form{
				ID: StepCommands,
				Fields: []form.Field{
					{Name: FieldCommands, Type: form.FieldTypeRows, Label: "Command", Columns: []form.Field{
						{Name: "command", Type: form.FieldTypeString, Label: "Command (e.g., npm run dev)"},
						{Name: "description", Type: form.FieldTypeString, Label: "Description"},
					}},
				},
				Examples: []form.Example{
					{Title: "Common Commands", Content: "npm install - Install dependencies\nnpm run dev - Start development server\nnpm test - Run test suite\nnpm run build - Build for production"},
				},
			},
			Events: commandsEvents,
		},
		{
			ID:       StepBestPractices,
			Title:    "Best Practices & Guidelines",
			Subtitle: "Define your development philosophy",
			Why: &Why{whyTitle, "Your team's principles guide decision-making. " +
				"Agents suggest solutions that align with your values and patterns, maintaining consistency across your codebase."},
			Form: form.Form{
				ID: StepBestPractices,
				Fields: []form.Field{
					{Name: FieldPrinciples, Type: form.FieldTypeMultiSelect, Label: "Development Principles", Options: []form.Option{
						{Value: "SOLID", Label: "SOLID Principles"},
						{Value: "DRY", Label: "DRY (Don't Repeat Yourself)"},
						{Value: "KISS", Label: "KISS (Keep It Simple, Stupid)"},
						{Value: "Clean Code", Label: "Clean Code Principles"},
					}},
					{Name: FieldCustomGuidelines, Type: form.FieldTypeText, Label: "Custom Guidelines", Description: "Any specific patterns or anti-patterns (one per line)"},
				},
				Examples: []form.Example{
					{Title: "Example Guidelines", Content: "- Use TypeScript for type safety\n- Prefer composition over inheritance\n- Keep functions small and focused\n- Write self-documenting code"},
				},
			},
			Events: practicesEvents,
		},
		{
			ID:       StepTesting,
			Title:    "Testing Strategy",
			Subtitle: "Define your testing approach",
			Why: &Why{whyTitle, "Clear testing guidance helps agents write tests in the right framework, " +
				"follow your testing patterns, and maintain quality standards automatically."},
			Form: form.Form{
				ID: StepTesting,
				Fields: []form.Field{
					{Name: FieldFramework, Type: form.FieldTypeString, Label: "Testing Framework", Placeholder: "e.g., Jest, Pytest, JUnit"},
					{Name: FieldPattern, Type: form.FieldTypeString, Label: "Test File Pattern", Placeholder: "e.g., **/*.test.js, tests/", Description: "Where test files are located"},
					{Name: FieldGuidelines, Type: form.FieldTypeText, Label: "Testing Guidelines"},
				},
				Examples: []form.Example{
					{Title: "Testing Approach", Content: "Use Jest for unit tests, React Testing Library for component tests. All new features require tests. Run tests before committing."},
				},
			},
			Events: testingEvents,
		},
		{
			ID:       StepStopPoints,
			Title:    "When to Stop & Ask",
			Subtitle: "Define boundaries and escalation points",
			Why: &Why{whyTitle, "Agents work best with clear boundaries. " +
				"Knowing when to pause prevents mistakes, catches ambiguities early, and keeps you in control of important decisions."},
			Form: form.Form{
				ID: StepStopPoints,
				Fields: []form.Field{
					{Name: FieldConditions, Type: form.FieldTypeMultiSelect, Label: "Agent Should Stop When...", Options: []form.Option{
						{Value: "unclear", Label: "Requirements are unclear or ambiguous"},
						{Value: "multiple-approaches", Label: "Multiple valid approaches exist"},
						{Value: "breaking-changes", Label: "About to make breaking changes"},
						{Value: "unexpected-errors", Label: "Encountering unexpected errors"},
						{Value: "business-logic", Label: "Unsure about business logic"},
					}},
					{Name: FieldAdditional, Type: form.FieldTypeText, Label: "Additional Stop Conditions"},
				},
			},
			Events: stopPointsEvents,
		},
		{
			ID:       StepReview,
			Title:    "Review & Generate",
			Subtitle: "Your AGENTS.md file is ready!",
			Form:     form.Form{ID: StepReview},
		},
	}
}

func validateBasicInfo(values form.Values) bool {
	return strings.TrimSpace(values.String(FieldProjectName)) != "" &&
		strings.TrimSpace(values.String(FieldProjectDescription)) != ""
}

func basicInfoEvents(values form.Values) []model.Event {
	return []model.Event{
		model.SetField{Field: model.FieldName, Value: strings.TrimSpace(values.String(FieldProjectName))},
		model.SetField{Field: model.FieldDescription, Value: strings.TrimSpace(values.String(FieldProjectDescription))},
	}
}

func techStackEvents(values form.Values) []model.Event {
	var entries []model.CustomEntry
	for _, row := range values.Rows(FieldTechnologies) {
		entries = append(entries, model.CustomEntry{
			Name:        row["name"],
			Version:     row["version"],
			Description: row["role"],
		})
	}
	return []model.Event{model.ReplaceCustom{Category: model.CategoryTech, Entries: entries}}
}

func structureEvents(values form.Values) []model.Event {
	structure := strings.TrimSpace(values.String(FieldStructure))
	if structure != "" {
		structure = "```\n" + structure + "\n```"
	}
	return []model.Event{model.SetField{Field: model.FieldStructure, Value: structure}}
}

func commandsEvents(values form.Values) []model.Event {
	var lines []string
	for _, row := range values.Rows(FieldCommands) {
		command := strings.TrimSpace(row["command"])
		if command == "" {
			continue
		}
		line := "- `" + command + "`"
		if description := strings.TrimSpace(row["description"]); description != "" {
			line += " - " + description
		}
		lines = append(lines, line)
	}
	return []model.Event{model.SetField{Field: model.FieldCommands, Value: strings.Join(lines, "\n")}}
}

func practicesEvents(values form.Values) []model.Event {
	var keys []string
	for _, principle := range values.Strings(FieldPrinciples) {
		if key, ok := principleKeys[principle]; ok {
			keys = append(keys, key)
		}
	}
	return []model.Event{
		model.SetSelection{Category: model.CategoryPractices, Keys: keys},
		model.SetField{Field: model.FieldPracticeNotes, Value: strings.TrimSpace(values.String(FieldCustomGuidelines))},
	}
}

func testingEvents(values form.Values) []model.Event {
	var frameworks []model.CustomEntry
	if framework := values.String(FieldFramework); strings.TrimSpace(framework) != "" {
		frameworks = append(frameworks, model.CustomEntry{Name: framework})
	}

	var notes []string
	if pattern := strings.TrimSpace(values.String(FieldPattern)); pattern != "" {
		notes = append(notes, "**Test Files:** "+pattern)
	}
	if guidelines := strings.TrimSpace(values.String(FieldGuidelines)); guidelines != "" {
		notes = append(notes, guidelines)
	}

	return []model.Event{
		model.ReplaceCustom{Category: model.CategoryTesting, Entries: frameworks},
		model.SetField{Field: model.FieldTestingNotes, Value: strings.Join(notes, "\n\n")},
	}
}

func stopPointsEvents(values form.Values) []model.Event {
	var lines []string
	for _, condition := range values.Strings(FieldConditions) {
		text, ok := StopConditions[condition]
		if !ok {
			text = condition
		}
		lines = append(lines, "- "+text)
	}
	if additional := strings.TrimSpace(values.String(FieldAdditional)); additional != "" {
		lines = append(lines, additional)
	}
	return []model.Event{model.SetField{Field: model.FieldStopConditions, Value: strings.Join(lines, "\n")}}
}
