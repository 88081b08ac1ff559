// Package render provides output renderers for rspecsum's patterns.
package render

import "github.com/dkoosis/rspecsum/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
