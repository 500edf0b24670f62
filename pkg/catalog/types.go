package catalog

import (
	"sort"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Bundle file names. Lookup tables and agent templates may be JSON or YAML.
const (
	BaseTemplateFile = "base-template.md"
	SectionsFile     = "sections"
	AgentsFile       = "agents"
)

// Entry is a lookup table row.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// LookupTable maps a category key to its display name and default
// description.
type LookupTable map[string]Entry

// Resolve returns the entry for key. Unknown keys resolve to the raw key as
// display name with an empty description.
func (t LookupTable) Resolve(key string) Entry {
	if entry, ok := t[key]; ok {
		if entry.Name == "" {
			entry.Name = key
		}
		return entry
	}
	return Entry{Name: key}
}

// Keys returns the table keys sorted alphabetically.
func (t LookupTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AgentTemplate describes a sub-assistant document.
type AgentTemplate struct {
	Name        string `json:"name" yaml:"name"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Template    string `json:"template" yaml:"template"`
}

// FileName returns the download name for the assistant document, defaulting
// to "<type>-agent.md".
func (a AgentTemplate) FileName(agentType string) string {
	base := a.Filename
	if base == "" {
		base = agentType + "-agent"
	}
	return base + ".md"
}

// Catalog bundles every static asset the renderer needs.
type Catalog struct {
	Base   string
	Tables map[model.Category]LookupTable
	Agents map[string]AgentTemplate
	// Source records where the bundle was read from ("embedded" for defaults).
	Source string
}

// Table returns the lookup table for category. Missing tables resolve every
// key as unknown.
func (c *Catalog) Table(category model.Category) LookupTable {
	if c == nil {
		return nil
	}
	return c.Tables[category]
}

// Agent returns the sub-assistant template registered for agentType.
func (c *Catalog) Agent(agentType string) (AgentTemplate, bool) {
	if c == nil {
		return AgentTemplate{}, false
	}
	tpl, ok := c.Agents[agentType]
	return tpl, ok
}

// AgentTypes lists the registered sub-assistant types sorted alphabetically.
func (c *Catalog) AgentTypes() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.Agents))
	for key := range c.Agents {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Keys lists the selectable keys for category. Agents are listed from the
// template set since they have no lookup table.
func (c *Catalog) Keys(category model.Category) []string {
	if category == model.CategoryAgents {
		return c.AgentTypes()
	}
	return c.Table(category).Keys()
}
