package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/goliatone/go-agentsgen/pkg/model"
)

//go:embed assets/*
var embeddedAssets embed.FS

// EmbeddedSource labels catalogs built from the bundled assets.
const EmbeddedSource = "embedded"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// EmbeddedFS returns the bundled asset directory. Callers can copy it as a
// starting point for a custom bundle.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns a fresh copy of the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := ReadFS(EmbeddedFS())
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded assets are invalid: %v", err))
		}
		cat.Source = EmbeddedSource
		defaultCatalog = cat
	})
	return defaultCatalog.Clone()
}

// ReadFS reads a bundle rooted at fsys.
func ReadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, ErrNoSource
	}
	files, err := ReadFiles(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
	if err != nil {
		return nil, err
	}
	return NewCatalog(files, "fs")
}

// ReadFiles resolves the bundle file names through read. Lookup tables and
// agent templates are looked up with .json, .yaml and .yml extensions in that
// order; a missing agents document is not an error.
func ReadFiles(read func(name string) ([]byte, error)) (Files, error) {
	var files Files

	base, err := read(BaseTemplateFile)
	if err != nil {
		return Files{}, fmt.Errorf("catalog: read %s: %w", BaseTemplateFile, err)
	}
	files.Base = base

	sections, err := readFirst(read, SectionsFile)
	if err != nil {
		return Files{}, err
	}
	files.Sections = sections

	agents, err := readFirst(read, AgentsFile)
	if err == nil {
		files.Agents = agents
	}

	return files, nil
}

func readFirst(read func(string) ([]byte, error), stem string) ([]byte, error) {
	var lastErr error
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		data, err := read(stem + ext)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("catalog: read %s: %w", stem, lastErr)
}

// Clone returns a deep copy of the catalog.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{
		Base:   c.Base,
		Source: c.Source,
		Tables: make(map[model.Category]LookupTable, len(c.Tables)),
		Agents: make(map[string]AgentTemplate, len(c.Agents)),
	}
	for category, table := range c.Tables {
		clone := make(LookupTable, len(table))
		for key, entry := range table {
			clone[key] = entry
		}
		out.Tables[category] = clone
	}
	for key, agent := range c.Agents {
		out.Agents[key] = agent
	}
	return out
}
