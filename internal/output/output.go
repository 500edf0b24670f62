// Package output delivers generated documents: files on disk, the system
// clipboard and a boxed terminal preview.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-agentsgen/pkg/orchestrator"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6b7280")).
			Padding(0, 1)
)

// Option configures a Writer.
type Option func(*Writer)

// WithClipboard replaces the clipboard backend.
func WithClipboard(fn func(string) error) Option {
	return func(w *Writer) {
		if fn != nil {
			w.copy = fn
		}
	}
}

// Writer prints user-facing notices to out.
type Writer struct {
	out  io.Writer
	copy func(string) error
}

// New returns a Writer reporting to out, stderr when nil.
func New(out io.Writer, options ...Option) *Writer {
	if out == nil {
		out = os.Stderr
	}
	w := &Writer{out: out, copy: clipboard.WriteAll}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

// WriteFiles writes every file into dir, creating it when needed, and
// returns the written paths.
func (w *Writer) WriteFiles(dir string, files []orchestrator.File) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(dir, filepath.Base(file.Name))
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			return paths, fmt.Errorf("output: write %s: %w", path, err)
		}
		paths = append(paths, path)
		fmt.Fprintln(w.out, successStyle.Render("Wrote "+path))
	}
	return paths, nil
}

// WriteFile replaces path with content, creating parent directories.
func (w *Writer) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("output: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

// Copy places text on the clipboard and reports the outcome to the user. A
// failure is reported as a warning and returned.
func (w *Writer) Copy(text string) error {
	if err := w.copy(text); err != nil {
		fmt.Fprintln(w.out, warningStyle.Render("Clipboard unavailable: "+err.Error()))
		return fmt.Errorf("output: copy to clipboard: %w", err)
	}
	fmt.Fprintln(w.out, successStyle.Render("Copied to clipboard!"))
	return nil
}

// Preview prints markdown inside a titled box.
func (w *Writer) Preview(title, markdown string) {
	fmt.Fprintln(w.out, titleStyle.Render(title))
	fmt.Fprintln(w.out, boxStyle.Render(markdown))
}
