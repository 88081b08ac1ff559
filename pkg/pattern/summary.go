package pattern

// SummaryKind identifies the source format for dispatch.
type SummaryKind string

const (
	SummaryKindRSpec SummaryKind = "rspec"
)

// Summary represents high-level counts for a set of runs.
type Summary struct {
	Label    string        `json:"label"`
	Kind     SummaryKind   `json:"kind"`
	Metrics  []SummaryItem `json:"metrics"`
	Duration string        `json:"duration"` // formatted wall time of the longest run
}

// SummaryItem is a single metric in a summary.
type SummaryItem struct {
	Label string `json:"label"` // e.g. "examples", "failures"
	Value string `json:"value"` // formatted value
	Kind  string `json:"kind"`  // "success", "error", "warning", "info"; affects coloring
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
