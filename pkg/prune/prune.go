// Package prune removes document sections whose heading has no body.
//
// Pruning is a structural pass over already rendered Markdown: it never
// reorders surviving content and never rewrites non-heading, non-blank lines.
package prune

import "strings"

// DefaultExempt lists the heading titles kept even when their body is empty.
var DefaultExempt = []string{"Project Structure"}

// Option customises a Pruner.
type Option func(*Pruner)

// WithExempt replaces the exemption list.
func WithExempt(titles ...string) Option {
	return func(p *Pruner) {
		p.exempt = make(map[string]struct{}, len(titles))
		for _, title := range titles {
			title = strings.TrimSpace(title)
			if title == "" {
				continue
			}
			p.exempt[title] = struct{}{}
		}
	}
}

// WithMaxBlankLines overrides how many consecutive blank lines survive. Values
// below one are ignored.
func WithMaxBlankLines(n int) Option {
	return func(p *Pruner) {
		if n > 0 {
			p.maxBlank = n
		}
	}
}

// Pruner drops empty sections from rendered Markdown.
type Pruner struct {
	exempt   map[string]struct{}
	maxBlank int
}

// New builds a Pruner exempting DefaultExempt unless overridden.
func New(options ...Option) *Pruner {
	p := &Pruner{maxBlank: 2}
	WithExempt(DefaultExempt...)(p)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

var defaultPruner = New()

// Prune runs the default pruner over text.
func Prune(text string) string {
	return defaultPruner.Prune(text)
}

// Prune removes every non-exempt heading whose next non-blank line is another
// heading, a horizontal rule or the end of the document, together with the
// blank lines that follow it. Blank line runs are then capped and the result
// trimmed. The input is trimmed before scanning so that a leading indented
// heading is treated the same on every pass.
func (p *Pruner) Prune(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !IsHeading(line) {
			kept = append(kept, line)
			continue
		}

		next := i + 1
		for next < len(lines) && isBlank(lines[next]) {
			next++
		}
		empty := next >= len(lines) || IsHeading(lines[next]) || IsRule(lines[next])
		if empty && !p.isExempt(Title(line)) {
			i = next - 1
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(p.collapse(kept))
}

func (p *Pruner) isExempt(title string) bool {
	_, ok := p.exempt[title]
	return ok
}

func (p *Pruner) collapse(lines []string) string {
	var b strings.Builder
	blank := 0
	for i, line := range lines {
		if isBlank(line) {
			blank++
			if blank > p.maxBlank {
				continue
			}
		} else {
			blank = 0
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.String()
}

// IsHeading reports whether line starts with a heading marker.
func IsHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsRule reports whether line is a horizontal rule: three or more of the same
// '-', '*' or '_' character, optionally separated by spaces.
func IsRule(line string) bool {
	trimmed := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	return strings.Count(trimmed, string(marker)) == len(trimmed)
}

// Title returns the heading text without its marker run.
func Title(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
