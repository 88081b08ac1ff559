package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

// maxNameWidth caps the location column.
const maxNameWidth = 60

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	upper cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, upper: cases.Upper(language.English)}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.TestTable:
		return t.renderTestTable(v)
	case *pattern.SharedSeed:
		return t.theme.Muted.Render(fmt.Sprintf("All examples run with --seed %d", v.Seed)) + "\n"
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(t.upper.String(s.Label)))
		sb.WriteString("\n")
	}
	sb.WriteString(" ")
	for _, m := range s.Metrics {
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(" ")
		sb.WriteString(style.Render(icon + " " + m.Value + " " + m.Label))
	}
	if s.Duration != "" {
		sb.WriteString(t.theme.Muted.Render("  in " + s.Duration))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderTestTable(tt *pattern.TestTable) string {
	if len(tt.Results) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(fmt.Sprintf("%s (%d)", tt.Label, len(tt.Results))))
	sb.WriteString("\n")

	maxName, maxDur := 0, 0
	for _, r := range tt.Results {
		maxName = max(maxName, runewidth.StringWidth(r.Name))
		maxDur = max(maxDur, runewidth.StringWidth(r.Duration))
	}
	maxName = min(maxName, maxNameWidth)

	// icon, two gaps, duration and indent
	descWidth := t.width - maxName - maxDur - 8
	for _, r := range tt.Results {
		sb.WriteString("  ")
		icon, style := t.statusIconStyle(r.Status)
		sb.WriteString(style.Render(icon + " "))
		sb.WriteString(t.theme.Primary.Render(padRight(runewidth.Truncate(r.Name, maxName, "..."), maxName)))

		if r.Duration != "" {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Muted.Render(padLeft(r.Duration, maxDur)))
		}
		desc := r.Description
		if descWidth > 10 {
			desc = runewidth.Truncate(desc, descWidth, "...")
		}
		sb.WriteString("  " + desc)
		if r.Seed != nil {
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf(" --seed %d", *r.Seed)))
		}

		details := strings.TrimRight(StripANSI(r.Details), "\n")
		if r.Class != "" {
			details = r.Class + ": " + details
		}
		if details != "" {
			for _, line := range strings.Split(details, "\n") {
				sb.WriteString("\n      ")
				sb.WriteString(t.theme.Muted.Render(line))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Pending, t.theme.Pending
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

func (t *Terminal) statusIconStyle(status string) (string, lipgloss.Style) {
	switch status {
	case pattern.StatusFail:
		return t.theme.Icons.Fail, t.theme.Error
	case pattern.StatusPending:
		return t.theme.Icons.Pending, t.theme.Pending
	default:
		return t.theme.Icons.Info, t.theme.Muted
	}
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
