package query

import (
	"testing"

	"github.com/izayoijiichan/izayoi-data-query/dialect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertQueryBuilder(t *testing.T) {
	values := func() *Insert {
		i := NewInsert().SetInto("users")
		i.Values.Add("id", 1).Add("name", "n")
		return i
	}
	testCases := []struct {
		name   string
		option *QueryOption
		stmt   *Insert
		want   string
		params []wantParam
	}{
		{
			name:   "values",
			option: DefaultQueryOption(),
			stmt:   values(),
			want:   "INSERT INTO [users]\n([id], [name])\nVALUES\n(@v_0, @v_1)",
			params: []wantParam{
				{"@v_0", DbTypeInt32, 1},
				{"@v_1", DbTypeString, "n"},
			},
		},
		{
			name:   "values formatted",
			option: formatted(DefaultQueryOption(), 4, false),
			stmt:   values(),
			want:   "INSERT INTO\n    [users]\n(\n    [id],\n    [name]\n)\nVALUES\n(\n    @v_0,\n    @v_1\n)",
			params: []wantParam{
				{"@v_0", DbTypeInt32, 1},
				{"@v_1", DbTypeString, "n"},
			},
		},
		{
			name:   "values formatted before comma",
			option: formatted(DefaultQueryOption(), 4, true),
			stmt:   values(),
			want:   "INSERT INTO\n    [users]\n(\n    [id]\n  , [name]\n)\nVALUES\n(\n    @v_0\n  , @v_1\n)",
			params: []wantParam{
				{"@v_0", DbTypeInt32, 1},
				{"@v_1", DbTypeString, "n"},
			},
		},
		{
			name:   "expression value",
			option: NewQueryOption(dialect.PostgreSQL),
			stmt: NewInsert().
				SetInto("events").
				AddValueWithType("kind", "login", DbTypeAnsiString).
				AddValueExpression("created_at", "CURRENT_TIMESTAMP").
				AddValue("user_id", int64(5)),
			want: `INSERT INTO "events"` + "\n" + `("kind", "created_at", "user_id")` + "\nVALUES\n(@v_0, CURRENT_TIMESTAMP, @v_2)",
			params: []wantParam{
				{"@v_0", DbTypeAnsiString, "login"},
				{"@v_2", DbTypeInt64, int64(5)},
			},
		},
		{
			name:   "select",
			option: NewQueryOption(dialect.MySQL),
			stmt: NewInsert().
				SetInto("archive").
				SetColumns("id", "name").
				SetSelect(NewSelect().
					SetFrom("users").
					AddField("id").
					AddField("name").
					AddWhere("active", "=", false)),
			want: "INSERT INTO `archive`\n(`id`, `name`)\nSELECT `id`, `name`\nFROM `users`\nWHERE `active` = @w_0",
			params: []wantParam{
				{"@w_0", DbTypeBoolean, false},
			},
		},
		{
			name:   "select without columns",
			option: NewQueryOption(dialect.None),
			stmt:   NewInsert().SetInto("archive").SetSelect(NewSelect().SetFrom("users")),
			want:   "INSERT INTO archive\nSELECT *\nFROM users",
		},
		{
			name:   "with",
			option: DefaultQueryOption(),
			stmt: NewInsert().
				AddWith("src", "SELECT 1 AS id").
				SetInto("t").
				SetColumns("id").
				SetSelect(NewSelect().SetFrom("src").AddField("id")),
			want: "WITH [src] AS (SELECT 1 AS id)\nINSERT INTO [t]\n([id])\nSELECT [id]\nFROM [src]",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewInsertQueryBuilder(tc.option, nil, nil)
			require.NoError(t, b.Build(tc.stmt))
			assert.Equal(t, tc.want, b.Query())
			assertParams(t, b.Parameters(), tc.params...)
		})
	}
}

func TestInsertQueryBuilderErrors(t *testing.T) {
	testCases := []struct {
		name string
		stmt *Insert
		want error
	}{
		{"both sources", NewInsert().SetInto("t").AddValue("a", 1).SetSelect(NewSelect().SetFrom("s")), ErrInsertSourceConflict},
		{"no source", NewInsert().SetInto("t"), ErrInsertSourceMissing},
		{"no table", NewInsert().AddValue("a", 1), ErrMissingTable},
		{"nil", nil, ErrNilStatement},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewInsertQueryBuilder(nil, nil, nil)
			err := b.Build(tc.stmt)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Empty(t, b.Query())
		})
	}
}
