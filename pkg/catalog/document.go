package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

// Files carries the raw bundle contents read by a loader.
type Files struct {
	Base     []byte
	Sections []byte
	Agents   []byte
}

// NewCatalog parses raw bundle files into a Catalog. The base template is
// required; the agents document may be empty.
func NewCatalog(files Files, source string) (*Catalog, error) {
	base := string(files.Base)
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("catalog: %s: base template is empty", source)
	}

	tables, err := parseSections(files.Sections, source)
	if err != nil {
		return nil, err
	}

	agents := make(map[string]AgentTemplate)
	if len(strings.TrimSpace(string(files.Agents))) > 0 {
		if err := decode(files.Agents, &agents); err != nil {
			return nil, fmt.Errorf("catalog: %s: parse agents: %w", source, err)
		}
	}
	for key, agent := range agents {
		if strings.TrimSpace(agent.Template) == "" {
			return nil, fmt.Errorf("catalog: %s: agent %q has an empty template", source, key)
		}
	}

	return &Catalog{
		Base:   base,
		Tables: tables,
		Agents: agents,
		Source: source,
	}, nil
}

func parseSections(data []byte, source string) (map[model.Category]LookupTable, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: %s: sections document is empty", source)
	}

	var raw map[string]map[string]Entry
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: %s: parse sections: %w", source, err)
	}

	tables := make(map[model.Category]LookupTable, len(raw))
	for name, rows := range raw {
		category, ok := model.ParseCategory(name)
		if !ok || category == model.CategoryAgents {
			return nil, fmt.Errorf("catalog: %s: unknown section table %q", source, name)
		}
		table := make(LookupTable, len(rows))
		for key, entry := range rows {
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("catalog: %s: table %q defines an empty key", source, name)
			}
			table[key] = entry
		}
		tables[category] = table
	}
	return tables, nil
}

// decode accepts JSON first and falls back to YAML.
func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid JSON or YAML: %w", err)
	}
	return nil
}
