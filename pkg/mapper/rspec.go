package mapper

import (
	"strconv"
	"strings"

	"github.com/dkoosis/rspecsum/pkg/pattern"
	"github.com/dkoosis/rspecsum/pkg/rspecjson"
)

// SummaryLabel heads every rendered summary.
const SummaryLabel = "RSpec Summary"

// FromAggregate converts aggregated RSpec results into visualization patterns.
// Returns: Summary, then a Failures table and a Pending table when non-empty,
// then a SharedSeed note when every failure used the same seed.
// baseURL is the blob root at the commit under test, e.g.
// https://github.com/org/repo/blob/<sha>.
func FromAggregate(agg *rspecjson.Aggregate, baseURL string) []pattern.Pattern {
	patterns := []pattern.Pattern{rspecSummary(agg)}

	if agg.TotalFailures > 0 {
		patterns = append(patterns, failureTable(agg, baseURL))
	}
	if agg.TotalPending > 0 {
		patterns = append(patterns, pendingTable(agg, baseURL))
	}
	if seed, ok := agg.SharedSeed(); ok {
		patterns = append(patterns, &pattern.SharedSeed{Seed: seed})
	}
	return patterns
}

func rspecSummary(agg *rspecjson.Aggregate) *pattern.Summary {
	failKind := "success"
	if agg.TotalFailures > 0 {
		failKind = "error"
	}
	pendKind := "info"
	if agg.TotalPending > 0 {
		pendKind = "warning"
	}
	return &pattern.Summary{
		Label: SummaryLabel,
		Kind:  pattern.SummaryKindRSpec,
		Metrics: []pattern.SummaryItem{
			{Label: "examples", Value: strconv.Itoa(agg.TotalExamples), Kind: "info"},
			{Label: "failures", Value: strconv.Itoa(agg.TotalFailures), Kind: failKind},
			{Label: "pending", Value: strconv.Itoa(agg.TotalPending), Kind: pendKind},
		},
		Duration: rspecjson.FormatDuration(agg.MaxRuntime),
	}
}

func failureTable(agg *rspecjson.Aggregate, baseURL string) *pattern.TestTable {
	annotate := !agg.AllSameSeed()
	items := make([]pattern.TestTableItem, 0, len(agg.Failed))
	for _, f := range agg.Failed {
		ex := f.Example
		item := exampleItem(&ex, baseURL)
		item.Status = pattern.StatusFail
		item.Class = ex.ExceptionClass()
		item.Details = ex.ExceptionMessage()
		if annotate {
			item.Seed = f.Seed
		}
		items = append(items, item)
	}
	return &pattern.TestTable{Label: "Failures", Results: items}
}

func pendingTable(agg *rspecjson.Aggregate, baseURL string) *pattern.TestTable {
	items := make([]pattern.TestTableItem, 0, len(agg.Pending))
	for i := range agg.Pending {
		ex := &agg.Pending[i]
		item := exampleItem(ex, baseURL)
		item.Status = pattern.StatusPending
		item.Details = ex.Pending()
		items = append(items, item)
	}
	return &pattern.TestTable{Label: "Pending", Results: items}
}

func exampleItem(ex *rspecjson.Example, baseURL string) pattern.TestTableItem {
	return pattern.TestTableItem{
		Name:        ex.Location(),
		URL:         LineURL(baseURL, ex.FilePath, ex.LineNumber),
		Description: ex.FullDescription,
		Duration:    rspecjson.FormatDuration(ex.RunTime),
	}
}

// LineURL links to a line of a file under baseURL. A leading "./" on path is
// dropped and a trailing "/" on baseURL is tolerated.
func LineURL(baseURL, path string, line int) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + rspecjson.CleanPath(path) + "#L" + strconv.Itoa(line)
}
