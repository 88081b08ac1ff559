package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

// maxDetailLines caps how many message lines are echoed per example.
const maxDetailLines = 3

// LLM renders patterns as terse plain text for logs and AI consumption.
// Zero ANSI codes; one SCOPE line, then one block per table.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			sb.WriteString("SCOPE: " + llmScope(v) + "\n")
		case *pattern.TestTable:
			l.renderTable(&sb, v)
		case *pattern.SharedSeed:
			fmt.Fprintf(&sb, "\nseed: %d\n", v.Seed)
		}
	}
	return sb.String()
}

func llmScope(s *pattern.Summary) string {
	verdict := "PASS"
	parts := make([]string, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		if m.Kind == "error" {
			verdict = "FAIL"
		}
		parts = append(parts, m.Value+" "+m.Label)
	}
	return fmt.Sprintf("%s %s (%s)", verdict, strings.Join(parts, ", "), s.Duration)
}

func (l *LLM) renderTable(sb *strings.Builder, t *pattern.TestTable) {
	sb.WriteString("\n## " + t.Label + "\n")
	for _, r := range t.Results {
		prefix := "  PEND "
		if r.Status == pattern.StatusFail {
			prefix = "  FAIL "
		}
		sb.WriteString(prefix + r.Name + " " + r.Description)
		if r.Seed != nil {
			fmt.Fprintf(sb, " (seed %d)", *r.Seed)
		}
		sb.WriteString("\n")

		details := StripANSI(r.Details)
		if r.Class != "" {
			details = r.Class + ": " + details
		}
		details = strings.TrimRight(details, "\n")
		if details == "" {
			continue
		}
		lines := strings.Split(details, "\n")
		shown := lines
		if len(shown) > maxDetailLines {
			shown = shown[:maxDetailLines]
		}
		for _, line := range shown {
			sb.WriteString("    " + strings.TrimSpace(line) + "\n")
		}
		if len(lines) > maxDetailLines {
			fmt.Fprintf(sb, "    ... (%d more lines)\n", len(lines)-maxDetailLines)
		}
	}
}
