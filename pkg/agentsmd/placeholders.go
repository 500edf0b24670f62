package agentsmd

import (
	"sort"
	"strings"
)

// Placeholder tokens recognised in the base template.
const (
	PlaceholderProjectName        = "{{PROJECT_NAME}}"
	PlaceholderProjectDescription = "{{PROJECT_DESCRIPTION}}"
	PlaceholderProjectStructure   = "{{PROJECT_STRUCTURE}}"
	PlaceholderTechStack          = "{{TECH_STACK}}"
	PlaceholderBestPractices      = "{{BEST_PRACTICES}}"
	PlaceholderStyleGuide         = "{{STYLE_GUIDE}}"
	PlaceholderTesting            = "{{TESTING}}"
	PlaceholderKeyCommands        = "{{KEY_COMMANDS}}"
	PlaceholderWorkflows          = "{{WORKFLOWS}}"
	PlaceholderStopConditions     = "{{STOP_CONDITIONS}}"
	PlaceholderCurrentDate        = "{{CURRENT_DATE}}"

	// PlaceholderTechContext is only used by sub-assistant templates.
	PlaceholderTechContext = "{{TECH_CONTEXT}}"
)

// Fallback text used when a field or list is empty.
const (
	DefaultProjectName    = "Your Project"
	DefaultDescription    = "A description of your project"
	DefaultStructure      = "Standard project structure"
	DefaultCommands       = "No specific commands defined"
	DefaultWorkflows      = "Follow standard development workflows"
	DefaultStopConditions = "Use judgment to determine when clarification is needed"
	DefaultTechStack      = "Not specified"
	DefaultStyleGuide     = "Follow standard code style conventions"
)

// DateLayout formats {{CURRENT_DATE}}.
const DateLayout = "2006-01-02"

const frontendLabel = "**Frontend:**"

// Replacement pairs a placeholder token with its computed value.
type Replacement struct {
	Token string
	Value string
}

// Substitute replaces the first occurrence of each token in template. Token
// positions are located in the template itself, so values that contain other
// tokens are inserted verbatim. A repeated token in replacements only counts
// once.
func Substitute(template string, replacements ...Replacement) string {
	type hit struct {
		at          int
		replacement Replacement
	}

	hits := make([]hit, 0, len(replacements))
	seen := make(map[string]bool, len(replacements))
	for _, r := range replacements {
		if r.Token == "" || seen[r.Token] {
			continue
		}
		seen[r.Token] = true
		if at := strings.Index(template, r.Token); at >= 0 {
			hits = append(hits, hit{at: at, replacement: r})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].at < hits[j].at })

	var b strings.Builder
	last := 0
	for _, h := range hits {
		if h.at < last {
			continue
		}
		b.WriteString(template[last:h.at])
		b.WriteString(h.replacement.Value)
		last = h.at + len(h.replacement.Token)
	}
	b.WriteString(template[last:])
	return b.String()
}
