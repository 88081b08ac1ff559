package pattern

// Status values for TestTableItem.
const (
	StatusFail    = "fail"
	StatusPending = "pending"
)

// TestTable represents a list of examples sharing an outcome.
type TestTable struct {
	Label   string          `json:"label"` // "Failures" or "Pending"
	Results []TestTableItem `json:"results"`
}

// TestTableItem is a single example row.
type TestTableItem struct {
	Name        string `json:"name"`               // "path:line"
	URL         string `json:"url,omitempty"`      // link to the line at the commit under test
	Status      string `json:"status"`             // StatusFail or StatusPending
	Description string `json:"description"`        // full example description
	Class       string `json:"class,omitempty"`    // exception class; empty for pending rows
	Details     string `json:"details"`            // raw message, may contain newlines and ANSI codes
	Duration    string `json:"duration,omitempty"` // formatted run time
	Seed        *int64 `json:"seed,omitempty"`     // set only when failures come from runs with different seeds
}

func (t *TestTable) Type() PatternType { return PatternTypeTestTable }
