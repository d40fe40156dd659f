package query

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bracket = NewQuotationMarks("[", "]")

func TestTableSourceToQuery(t *testing.T) {
	assert.Equal(t, "[users]", NewTableSource("users").ToQuery(bracket))
	assert.Equal(t, "[dbo].[users] AS [u]", NewTableSource("users", "u").SetSchema("dbo").ToQuery(bracket))
	assert.Equal(t, "[u]", NewTableSource("", "u").ToQuery(bracket))
	assert.Equal(t, "users u", NewTableSource("users", "u").render(QuotationMarks{}, false))
	assert.Equal(t, "u", NewTableSource("users", "u").Reference())
	assert.Equal(t, "users", NewTableSource("users").Reference())
	assert.True(t, (*TableSource)(nil).IsZero())
	assert.False(t, (*TableSource)(nil).HasJoins())
}

func TestJoinsToQuery(t *testing.T) {
	users := NewTableSource("users", "u").
		AddJoin(JoinTypeLeftOuter, NewTableSource("orders", "o"), "o.user_id = u.id").
		AddJoin(JoinTypeCross, NewTableSource("regions", "r"), "ignored")
	assert.Equal(t,
		"LEFT OUTER JOIN [orders] AS [o] ON o.user_id = u.id CROSS JOIN [regions] AS [r]",
		users.Joins.ToQuery(bracket))
}

func TestListElementsToQuery(t *testing.T) {
	fields := (&Fields{}).Add("id").Add("u.name", "name").AddExpression("COUNT(*)", "cnt").Add("id")
	assert.Equal(t, "[id], [u].[name] AS [name], COUNT(*) AS [cnt], [id]", fields.ToQuery(bracket))

	orders := (&Orders{}).Add("created_at", OTypeDesc).Add("id", OTypeNone).AddExpression("LEN(name)", OTypeAsc)
	assert.Equal(t, "[created_at] DESC, [id], LEN(name) ASC", orders.ToQuery(bracket))

	groups := (&Groups{}).Add("a", "b").AddExpression("YEAR(created_at)")
	assert.Equal(t, "[a], [b], YEAR(created_at)", groups.ToQuery(bracket))
}

func TestForJsonToQuery(t *testing.T) {
	assert.Equal(t, "", (*ForJson)(nil).ToQuery(bracket))
	assert.Equal(t, "", (&ForJson{Root: "x"}).ToQuery(bracket))
	assert.Equal(t, "FOR JSON AUTO", (&ForJson{Mode: JsonModeAuto}).ToQuery(bracket))
	f := &ForJson{
		Mode:                JsonModePath,
		Root:                "it's",
		IncludeNullValues:   true,
		WithoutArrayWrapper: true,
	}
	assert.Equal(t, "FOR JSON PATH, ROOT('it''s'), INCLUDE_NULL_VALUES, WITHOUT_ARRAY_WRAPPER", f.ToQuery(bracket))
}

func TestWithToQuery(t *testing.T) {
	w := (&With{}).Add("a", "SELECT 1").Add("b", "SELECT x, y FROM a", "x", "y")
	assert.Equal(t, "WITH [a] AS (SELECT 1), [b] ([x], [y]) AS (SELECT x, y FROM a)", w.ToQuery(bracket))
	assert.Equal(t, "WITH RECURSIVE [a] AS (SELECT 1), [b] ([x], [y]) AS (SELECT x, y FROM a)", w.SetRecursive(true).ToQuery(bracket))
	assert.Equal(t, "", (&With{}).ToQuery(bracket))
}

func TestSets(t *testing.T) {
	s := &Sets{}
	require.NoError(t, s.Add("a", 1))
	require.NoError(t, s.AddExpression("b", "b + 1"))
	require.NoError(t, s.AddWithType("c", "x", DbTypeAnsiString))
	err := s.Add("a", 2)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"a", "b", "c"}, []string{s.Items()[0].ColumnName, s.Items()[1].ColumnName, s.Items()[2].ColumnName})
	_, ok := s.Get("z")
	assert.False(t, ok)
}

func TestValues(t *testing.T) {
	v := NewValues().Add("a", 1).AddExpression("b", "NOW()").AddWithType("c", "x", DbTypeXml)
	assert.Equal(t, []string{"a", "b", "c"}, v.Names())
	assert.True(t, v.Items()[1].IsExpression)
	assert.Equal(t, DbTypeXml, v.Items()[2].DbType)
	assert.Empty(t, (*Values)(nil).Names())
}
