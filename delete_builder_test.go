package query

import (
	"testing"

	"github.com/izayoijiichan/izayoi-data-query/dialect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinedDelete() *Delete {
	return NewDelete().
		SetFrom("users", "u").
		AddJoin(JoinTypeInner, NewTableSource("orders", "o"), "o.user_id = u.id").
		AddWhere("o.total", ">", 100)
}

func TestDeleteQueryBuilder(t *testing.T) {
	testCases := []struct {
		name   string
		option *QueryOption
		stmt   *Delete
		want   string
		params []wantParam
	}{
		{
			name:   "without where",
			option: DefaultQueryOption(),
			stmt:   NewDelete().SetFrom("users"),
			want:   "DELETE FROM [users]",
		},
		{
			name:   "with where",
			option: DefaultQueryOption(),
			stmt:   NewDelete().SetFrom("users").AddWhere("id", "=", 1),
			want:   "DELETE\nFROM [users]\nWHERE [id] = @w_0",
			params: []wantParam{
				{"@w_0", DbTypeInt32, 1},
			},
		},
		{
			name:   "formatted without where",
			option: formatted(DefaultQueryOption(), 4, false),
			stmt:   NewDelete().SetFrom("users"),
			want:   "DELETE\nFROM\n    [users]",
		},
		{
			name:   "formatted with where",
			option: formatted(DefaultQueryOption(), 2, false),
			stmt:   NewDelete().SetFrom("users").AddWhere("id", ">", 1).AddWhereOr("id", "<", -1),
			want:   "DELETE\nFROM\n  [users]\nWHERE\n  [id] > @w_0\n  OR [id] < @w_1",
			params: []wantParam{
				{"@w_0", DbTypeInt32, 1},
				{"@w_1", DbTypeInt32, -1},
			},
		},
		{
			name:   "mysql join",
			option: NewQueryOption(dialect.MySQL),
			stmt: NewDelete().
				SetFrom("users", "u").
				AddJoin(JoinTypeLeft, NewTableSource("orders", "o"), "o.user_id = u.id").
				AddWhereOp("o.id", OpTypeIsNull, nil),
			want: "DELETE `u`\nFROM `users` AS `u` LEFT JOIN `orders` AS `o` ON o.user_id = u.id\nWHERE `o`.`id` IS NULL",
		},
		{
			name:   "sqlserver join without where",
			option: DefaultQueryOption(),
			stmt:   NewDelete().SetFrom("users", "u").AddJoin(JoinTypeInner, NewTableSource("bans", "b"), "b.user_id = u.id"),
			want:   "DELETE [u] FROM [users] AS [u] INNER JOIN [bans] AS [b] ON b.user_id = u.id",
		},
		{
			name:   "pgsql join",
			option: NewQueryOption(dialect.PostgreSQL),
			stmt:   joinedDelete(),
			want:   "DELETE\nFROM \"users\" AS \"u\" INNER JOIN \"orders\" AS \"o\" ON o.user_id = u.id\nWHERE \"o\".\"total\" > @w_0",
			params: []wantParam{
				{"@w_0", DbTypeInt32, 100},
			},
		},
		{
			name:   "sqlite join without where",
			option: NewQueryOption(dialect.SQLite),
			stmt:   NewDelete().SetFrom("users", "u").AddJoin(JoinTypeInner, NewTableSource("orders", "o"), "o.user_id = u.id"),
			want:   "DELETE FROM users AS u INNER JOIN orders AS o ON o.user_id = u.id",
		},
		{
			name:   "none join",
			option: NewQueryOption(dialect.None),
			stmt:   joinedDelete(),
			want:   "DELETE\nFROM users AS u INNER JOIN orders AS o ON o.user_id = u.id\nWHERE o.total > @w_0",
			params: []wantParam{
				{"@w_0", DbTypeInt32, 100},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewDeleteQueryBuilder(tc.option, nil, nil)
			require.NoError(t, b.Build(tc.stmt))
			assert.Equal(t, tc.want, b.Query())
			assertParams(t, b.Parameters(), tc.params...)
		})
	}
}

func TestDeleteQueryBuilderErrors(t *testing.T) {
	testCases := []struct {
		name   string
		option *QueryOption
		stmt   *Delete
		want   error
	}{
		{"no table", DefaultQueryOption(), NewDelete().AddWhere("a", "=", 1), ErrMissingTable},
		{"nil", DefaultQueryOption(), nil, ErrNilStatement},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewDeleteQueryBuilder(tc.option, nil, nil)
			err := b.Build(tc.stmt)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, b.Query())
		})
	}
}
