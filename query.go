// Package query builds parameterized SQL text for SELECT, INSERT, UPDATE and
// DELETE statements across MySQL, Oracle, PostgreSQL, SQLite and SQL Server.
//
// Statements are described with the fluent models Select, Insert, Update and
// Delete, then compiled by a QueryBuilder into SQL text and an ordered
// collection of named bind parameters:
//
//	b := query.NewQueryBuilder(query.NewQueryOption(dialect.MySQL))
//	s := query.NewSelect().
//		SetFrom("users").
//		AddField("id").
//		AddWhere("name", "=", "alice")
//	sql, args, err := b.BuildQuery(s)
//
// Bind parameters are named after the clause they belong to: @w_i for WHERE,
// @h_i for HAVING, @s_i for SET and @v_i for VALUES, i being the zero based
// position of the entry in its list.
package query

// Statement is a statement model the QueryBuilder compiles, one of *Select,
// *Insert, *Update and *Delete.
type Statement interface {
	buildWith(b *QueryBuilder) error
}

var (
	_ Statement = (*Select)(nil)
	_ Statement = (*Insert)(nil)
	_ Statement = (*Update)(nil)
	_ Statement = (*Delete)(nil)
)
