package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

// Markdown renders patterns as a GitHub step summary document.
type Markdown struct{}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Render formats all patterns as markdown. Sections after the first are
// separated by a blank line.
func (m *Markdown) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for i, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			m.renderSummary(&sb, v)
		case *pattern.TestTable:
			if i > 0 && !isSummary(patterns[i-1]) {
				sb.WriteString("\n")
			}
			m.renderTable(&sb, v)
		case *pattern.SharedSeed:
			fmt.Fprintf(&sb, "\nAll examples run with <code>--seed %d</code>\n", v.Seed)
		}
	}
	return sb.String()
}

func isSummary(p pattern.Pattern) bool {
	_, ok := p.(*pattern.Summary)
	return ok
}

func (m *Markdown) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	sb.WriteString("### " + s.Label + "\n\n")
	parts := make([]string, 0, len(s.Metrics))
	for _, metric := range s.Metrics {
		parts = append(parts, metric.Value+" "+metric.Label)
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(" in " + s.Duration + "\n\n")
}

func (m *Markdown) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	sb.WriteString("#### " + t.Label + ":\n")
	sb.WriteString("| Example | Description | Message |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, r := range t.Results {
		link := fmt.Sprintf("[<code>%s</code>](%s)", r.Name, r.URL)
		if r.Seed != nil {
			link += fmt.Sprintf(" --seed %d)", *r.Seed)
		}
		msg := markdownMessage(r.Details)
		if r.Class != "" {
			msg = r.Class + "<br />" + msg
		}
		fmt.Fprintf(sb, "| %s | %s | <pre>%s</pre> |\n", link, r.Description, msg)
	}
}
