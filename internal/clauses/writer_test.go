package clauses

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_Clause(t *testing.T) {
	var testCases = []struct {
		description string
		layout      Layout
		keyword     string
		items       []string
		sep         Separator
		expect      string
	}{
		{
			description: "unformatted comma list",
			keyword:     "SELECT",
			items:       []string{"a", "b"},
			sep:         Comma,
			expect:      "SELECT a, b",
		},
		{
			description: "unformatted space list",
			keyword:     "WHERE",
			items:       []string{"a = 1", "AND b = 2"},
			sep:         Space,
			expect:      "WHERE a = 1 AND b = 2",
		},
		{
			description: "unformatted without keyword",
			items:       []string{"a", "b"},
			sep:         Comma,
			expect:      "a, b",
		},
		{
			description: "keyword only",
			keyword:     "VALUES",
			expect:      "VALUES",
		},
		{
			description: "formatted after comma",
			layout:      Layout{Format: true, Indent: 4},
			keyword:     "SELECT",
			items:       []string{"a", "b", "c"},
			sep:         Comma,
			expect:      "SELECT\n    a,\n    b,\n    c",
		},
		{
			description: "formatted before comma",
			layout:      Layout{Format: true, Indent: 4, BeforeComma: true},
			keyword:     "SELECT",
			items:       []string{"a", "b", "c"},
			sep:         Comma,
			expect:      "SELECT\n    a\n  , b\n  , c",
		},
		{
			description: "formatted before comma with narrow indent",
			layout:      Layout{Format: true, Indent: 2, BeforeComma: true},
			keyword:     "ORDER BY",
			items:       []string{"a", "b"},
			sep:         Comma,
			expect:      "ORDER BY\n  a\n, b",
		},
		{
			description: "formatted space list",
			layout:      Layout{Format: true, Indent: 2, BeforeComma: true},
			keyword:     "WHERE",
			items:       []string{"a = 1", "OR b = 2"},
			sep:         Space,
			expect:      "WHERE\n  a = 1\n  OR b = 2",
		},
	}
	for _, testCase := range testCases {
		buf := &strings.Builder{}
		w := NewWriter(buf, testCase.layout)
		w.Clause(testCase.keyword, testCase.items, testCase.sep)
		assert.Equal(t, testCase.expect, buf.String(), testCase.description)
	}
}

func TestWriter_Group(t *testing.T) {
	buf := &strings.Builder{}
	w := NewWriter(buf, Layout{})
	w.Line("INSERT INTO t")
	w.Group([]string{"a", "b"}, Comma)
	assert.Equal(t, "INSERT INTO t\n(a, b)", buf.String())

	buf.Reset()
	w = NewWriter(buf, Layout{Format: true, Indent: 4})
	w.Group([]string{"a", "b"}, Comma)
	assert.Equal(t, "(\n    a,\n    b\n)", buf.String())
	assert.True(t, w.Formatted())
}

func TestWriter_LineSeparatesClauses(t *testing.T) {
	buf := &strings.Builder{}
	w := NewWriter(buf, Layout{})
	w.Line("SELECT 1")
	w.Clause("FROM", []string{"t"}, Space)
	assert.Equal(t, "SELECT 1\nFROM t", buf.String())
}
