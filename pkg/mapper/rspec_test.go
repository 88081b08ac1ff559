package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/rspecsum/pkg/pattern"
	"github.com/dkoosis/rspecsum/pkg/rspecjson"
)

const testBaseURL = "https://github.com/acme/shop/blob/abc123"

func seed(v int64) *int64 { return &v }

func failedExample(path string, line int, class, msg string) rspecjson.Example {
	ex := rspecjson.Example{
		FullDescription: "does " + path,
		Status:          rspecjson.StatusFailed,
		FilePath:        path,
		LineNumber:      line,
		RunTime:         0.5,
	}
	if class != "" || msg != "" {
		ex.Exception = &rspecjson.Exception{Class: class, Message: msg}
	}
	return ex
}

func TestFromAggregate_Empty(t *testing.T) {
	patterns := FromAggregate(&rspecjson.Aggregate{}, testBaseURL)
	require.Len(t, patterns, 1)

	sum, ok := patterns[0].(*pattern.Summary)
	require.True(t, ok, "expected Summary, got %T", patterns[0])
	assert.Equal(t, SummaryLabel, sum.Label)
	assert.Equal(t, "0s", sum.Duration)
	require.Len(t, sum.Metrics, 3)
	assert.Equal(t, "0", sum.Metrics[0].Value)
	assert.Equal(t, "success", sum.Metrics[1].Kind)
}

func TestFromAggregate_SharedSeed(t *testing.T) {
	agg := &rspecjson.Aggregate{}
	agg.Add("a.json", &rspecjson.ResultFile{
		Seed: seed(42),
		Examples: []rspecjson.Example{
			{Status: rspecjson.StatusPassed, RunTime: 2},
			failedExample("./spec/foo_spec.rb", 10, "RuntimeError", "boom"),
			{Status: rspecjson.StatusPassed, RunTime: 64},
		},
	})

	patterns := FromAggregate(agg, testBaseURL)
	require.Len(t, patterns, 3)

	sum := patterns[0].(*pattern.Summary)
	assert.Equal(t, "1m6s", sum.Duration)
	assert.Equal(t, "error", sum.Metrics[1].Kind)

	table, ok := patterns[1].(*pattern.TestTable)
	require.True(t, ok)
	assert.Equal(t, "Failures", table.Label)
	require.Len(t, table.Results, 1)
	row := table.Results[0]
	assert.Equal(t, "spec/foo_spec.rb:10", row.Name)
	assert.Equal(t, testBaseURL+"/spec/foo_spec.rb#L10", row.URL)
	assert.Equal(t, "RuntimeError", row.Class)
	assert.Equal(t, "boom", row.Details)
	assert.Equal(t, pattern.StatusFail, row.Status)
	assert.Nil(t, row.Seed, "rows are not annotated when all seeds match")

	note, ok := patterns[2].(*pattern.SharedSeed)
	require.True(t, ok)
	assert.Equal(t, int64(42), note.Seed)
}

func TestFromAggregate_DifferentSeedsAnnotateRows(t *testing.T) {
	agg := &rspecjson.Aggregate{}
	agg.Add("a.json", &rspecjson.ResultFile{Seed: seed(1), Examples: []rspecjson.Example{failedExample("spec/a_spec.rb", 1, "", "")}})
	agg.Add("b.json", &rspecjson.ResultFile{Seed: seed(2), Examples: []rspecjson.Example{failedExample("spec/b_spec.rb", 2, "", "")}})

	patterns := FromAggregate(agg, testBaseURL)
	require.Len(t, patterns, 2, "no shared-seed note when seeds differ")

	table := patterns[1].(*pattern.TestTable)
	require.Len(t, table.Results, 2)
	for i, want := range []int64{1, 2} {
		require.NotNil(t, table.Results[i].Seed)
		assert.Equal(t, want, *table.Results[i].Seed)
		assert.Equal(t, rspecjson.DefaultExceptionClass, table.Results[i].Class)
		assert.Equal(t, "", table.Results[i].Details)
	}
}

func TestFromAggregate_Pending(t *testing.T) {
	msg := "Temporarily skipped"
	agg := &rspecjson.Aggregate{}
	agg.Add("a.json", &rspecjson.ResultFile{Examples: []rspecjson.Example{
		{FullDescription: "later", Status: rspecjson.StatusPending, FilePath: "./spec/p_spec.rb", LineNumber: 3, PendingMessage: &msg},
		{FullDescription: "no reason", Status: rspecjson.StatusPending, FilePath: "spec/p_spec.rb", LineNumber: 8},
	}})

	patterns := FromAggregate(agg, testBaseURL)
	require.Len(t, patterns, 2)

	table := patterns[1].(*pattern.TestTable)
	assert.Equal(t, "Pending", table.Label)
	require.Len(t, table.Results, 2)
	assert.Equal(t, "spec/p_spec.rb:3", table.Results[0].Name)
	assert.Equal(t, "Temporarily skipped", table.Results[0].Details)
	assert.Empty(t, table.Results[0].Class)
	assert.Equal(t, "", table.Results[1].Details)
	assert.Equal(t, pattern.StatusPending, table.Results[1].Status)
}

func TestLineURL(t *testing.T) {
	assert.Equal(t, testBaseURL+"/spec/foo_spec.rb#L10", LineURL(testBaseURL, "./spec/foo_spec.rb", 10))
	assert.Equal(t, testBaseURL+"/spec/foo_spec.rb#L10", LineURL(testBaseURL+"/", "spec/foo_spec.rb", 10))
}
