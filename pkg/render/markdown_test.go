package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dkoosis/rspecsum/pkg/pattern"
)

// tableRows converts md with GitHub-flavored markdown and counts body rows
// per table, in document order.
func tableRows(t *testing.T, md string) []int {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf))

	var rows []int
	for _, tbl := range strings.Split(buf.String(), "<table>")[1:] {
		body := ""
		if i := strings.Index(tbl, "<tbody>"); i >= 0 {
			body = tbl[i:]
		}
		rows = append(rows, strings.Count(body, "<tr>"))
	}
	return rows
}

func TestMarkdown_EmptyRun(t *testing.T) {
	out := NewMarkdown().Render([]pattern.Pattern{summary("0", "0", "0", "0s")})

	assert.Equal(t, "### RSpec Summary\n\n0 examples, 0 failures, 0 pending in 0s\n\n", out)
	assert.Empty(t, tableRows(t, out))
}

func TestMarkdown_SingleFailureSharedSeed(t *testing.T) {
	patterns := []pattern.Pattern{
		summary("3", "1", "0", "2s"),
		&pattern.TestTable{Label: "Failures", Results: []pattern.TestTableItem{
			failure("spec/foo_spec.rb", 10, "RuntimeError", "boom", nil),
		}},
		&pattern.SharedSeed{Seed: 42},
	}
	out := NewMarkdown().Render(patterns)

	want := "### RSpec Summary\n\n" +
		"3 examples, 1 failures, 0 pending in 2s\n\n" +
		"#### Failures:\n" +
		"| Example | Description | Message |\n" +
		"| --- | --- | --- |\n" +
		"| [<code>spec/foo_spec.rb:10</code>](" + base + "/spec/foo_spec.rb#L10) | Cart totals spec/foo_spec.rb:10 | <pre>RuntimeError<br />boom</pre> |\n" +
		"\nAll examples run with <code>--seed 42</code>\n"
	assert.Equal(t, want, out)
	assert.Equal(t, []int{1}, tableRows(t, out))
}

func TestMarkdown_DifferentSeeds(t *testing.T) {
	patterns := []pattern.Pattern{
		summary("2", "2", "0", "1s"),
		&pattern.TestTable{Label: "Failures", Results: []pattern.TestTableItem{
			failure("spec/a_spec.rb", 10, "RuntimeError", "a", seedPtr(11)),
			failure("spec/b_spec.rb", 10, "RuntimeError", "b", seedPtr(22)),
		}},
	}
	out := NewMarkdown().Render(patterns)

	assert.Contains(t, out, "(https://github.com/acme/shop/blob/abc123/spec/a_spec.rb#L10) --seed 11) |")
	assert.Contains(t, out, "(https://github.com/acme/shop/blob/abc123/spec/b_spec.rb#L10) --seed 22) |")
	assert.NotContains(t, out, "All examples run with")
	assert.Equal(t, []int{2}, tableRows(t, out))
}

func TestMarkdown_MessageSanitized(t *testing.T) {
	msg := "\x1b[31mexpected: 1\x1b[0m\n     got: \x1b[1;32m2\x1b[0m"
	patterns := []pattern.Pattern{
		summary("1", "1", "0", "0s"),
		&pattern.TestTable{Label: "Failures", Results: []pattern.TestTableItem{
			failure("spec/foo_spec.rb", 10, "RSpec::Expectations::ExpectationNotMetError", msg, nil),
		}},
	}
	out := NewMarkdown().Render(patterns)

	assert.Contains(t, out, "<pre>RSpec::Expectations::ExpectationNotMetError<br />expected: 1<br />     got: 2</pre>")
	assert.NotContains(t, out, "\x1b")
}

func TestMarkdown_FailuresThenPending(t *testing.T) {
	patterns := []pattern.Pattern{
		summary("4", "1", "2", "5s"),
		&pattern.TestTable{Label: "Failures", Results: []pattern.TestTableItem{
			failure("spec/foo_spec.rb", 10, "UnknownError", "", nil),
		}},
		&pattern.TestTable{Label: "Pending", Results: []pattern.TestTableItem{
			pending("spec/p_spec.rb", 3, "Not yet implemented"),
			pending("spec/p_spec.rb", 9, ""),
		}},
		&pattern.SharedSeed{Seed: 7},
	}
	out := NewMarkdown().Render(patterns)

	assert.Contains(t, out, "<pre>UnknownError<br /></pre> |\n\n#### Pending:\n")
	assert.Contains(t, out, "| Cart later spec/p_spec.rb:3 | <pre>Not yet implemented</pre> |\n")
	assert.Contains(t, out, "| Cart later spec/p_spec.rb:9 | <pre></pre> |\n")
	assert.True(t, strings.HasSuffix(out, "\nAll examples run with <code>--seed 7</code>\n"))
	assert.Equal(t, []int{1, 2}, tableRows(t, out))
}

func TestMarkdown_PendingOnly(t *testing.T) {
	patterns := []pattern.Pattern{
		summary("1", "0", "1", "0s"),
		&pattern.TestTable{Label: "Pending", Results: []pattern.TestTableItem{
			pending("spec/p_spec.rb", 3, "later"),
		}},
	}
	out := NewMarkdown().Render(patterns)

	assert.True(t, strings.HasPrefix(out, "### RSpec Summary\n\n1 examples, 0 failures, 1 pending in 0s\n\n#### Pending:\n"))
	assert.NotContains(t, out, "Failures:")
	assert.Equal(t, []int{1}, tableRows(t, out))
}
