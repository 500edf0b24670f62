package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where an asset bundle lives so loaders can read from a
// directory, an fs.FS or a base URL without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindDir SourceKind = "dir"
	SourceKindFS  SourceKind = "fs"
	SourceKindURL SourceKind = "url"
)

type dirSource struct {
	path string
}

func (s dirSource) Location() string { return s.path }
func (s dirSource) Kind() SourceKind { return SourceKindDir }

// SourceFromDir returns a Source pointing to a bundle directory on disk.
func SourceFromDir(path string) Source {
	return dirSource{path: filepath.Clean(path)}
}

type fsSource struct {
	root string
}

func (s fsSource) Location() string { return s.root }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a bundle directory inside the
// loader's fs.FS. Use "." for the filesystem root.
func SourceFromFS(root string) Source {
	if root == "" {
		root = "."
	}
	return fsSource{root: root}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses a base URL; bundle files are fetched relative to it.
func SourceFromURL(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNoSource
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("catalog: invalid URL %q: %w", raw, err)
	}
	return urlSource{raw: strings.TrimRight(raw, "/")}, nil
}

// ParseSource turns a user supplied location into a Source: http(s) prefixes
// become URL sources, everything else a directory.
func ParseSource(raw string) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNoSource
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return SourceFromURL(raw)
	}
	return SourceFromDir(raw), nil
}
