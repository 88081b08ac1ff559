package render

import (
	"strings"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

// FailureList renders failed examples as "path:line - Class: message" lines
// for consumption by later pipeline steps. Pending rows are ignored.
type FailureList struct{}

// NewFailureList creates a FailureList renderer.
func NewFailureList() *FailureList {
	return &FailureList{}
}

// Render joins one line per failure with "\n", without a trailing newline.
func (f *FailureList) Render(patterns []pattern.Pattern) string {
	var lines []string
	for _, p := range patterns {
		t, ok := p.(*pattern.TestTable)
		if !ok {
			continue
		}
		for _, r := range t.Results {
			if r.Status != pattern.StatusFail {
				continue
			}
			lines = append(lines, r.Name+" - "+r.Class+": "+plainMessage(r.Details))
		}
	}
	return strings.Join(lines, "\n")
}
