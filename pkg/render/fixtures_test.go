package render

import (
	"strconv"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

const base = "https://github.com/acme/shop/blob/abc123"

func seedPtr(v int64) *int64 { return &v }

func summary(examples, failures, pending, duration string) *pattern.Summary {
	return &pattern.Summary{
		Label: "RSpec Summary",
		Kind:  pattern.SummaryKindRSpec,
		Metrics: []pattern.SummaryItem{
			{Label: "examples", Value: examples, Kind: "info"},
			{Label: "failures", Value: failures, Kind: "error"},
			{Label: "pending", Value: pending, Kind: "warning"},
		},
		Duration: duration,
	}
}

func failure(path string, line int, class, details string, seed *int64) pattern.TestTableItem {
	loc := path + ":" + strconv.Itoa(line)
	return pattern.TestTableItem{
		Name:        loc,
		URL:         base + "/" + path + "#L" + strconv.Itoa(line),
		Status:      pattern.StatusFail,
		Description: "Cart totals " + loc,
		Class:       class,
		Details:     details,
		Duration:    "0s",
		Seed:        seed,
	}
}

func pending(path string, line int, details string) pattern.TestTableItem {
	loc := path + ":" + strconv.Itoa(line)
	return pattern.TestTableItem{
		Name:        loc,
		URL:         base + "/" + path + "#L" + strconv.Itoa(line),
		Status:      pattern.StatusPending,
		Description: "Cart later " + loc,
		Details:     details,
		Duration:    "0s",
	}
}
