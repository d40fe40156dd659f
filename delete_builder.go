package query

import (
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
)

// DeleteQueryBuilder compiles Delete statements.
//
// Unformatted, a DELETE without WHERE is written on one line:
//
//	DELETE FROM [users]
//
// Any other DELETE puts FROM on a line of its own. With joins, dialects that
// support it name the target table after DELETE:
//
//	DELETE [u]
//	FROM [users] AS [u] INNER JOIN [bans] AS [b] ON b.user_id = u.id
//
// the others keep the plain form with the joins on FROM.
type DeleteQueryBuilder struct {
	*SelectQueryBuilder
}

// NewDeleteQueryBuilder returns a builder writing to buf and params.
func NewDeleteQueryBuilder(option *QueryOption, buf *strings.Builder, params *BindParameterCollection) *DeleteQueryBuilder {
	return &DeleteQueryBuilder{
		SelectQueryBuilder: NewSelectQueryBuilder(option, buf, params),
	}
}

// Build compiles d, discarding the result of any previous build.
func (b *DeleteQueryBuilder) Build(d *Delete) error {
	b.reset()
	if d == nil {
		return ErrNilStatement
	}
	if err := b.writeDelete(b.writer(), d); err != nil {
		b.reset()
		return err
	}
	return nil
}

func (b *DeleteQueryBuilder) writeDelete(w *clauses.Writer, d *Delete) error {
	if d.From == nil || d.From.Name == "" {
		return ErrMissingTable
	}
	caps := b.option.Capabilities()
	q := b.option.QuotationMarks

	b.writeWith(w, d.With, caps)
	keyword := "DELETE"
	if d.From.HasJoins() && caps.SupportsDeleteJoin {
		keyword += " " + q.Enclose(d.From.Reference(), true)
	}
	from := b.tableWithJoins(d.From, caps)
	if !w.Formatted() && d.Wheres.Len() == 0 {
		w.Line(keyword + " FROM " + strings.Join(from, " "))
		return nil
	}
	w.Line(keyword)
	w.Clause("FROM", from, clauses.Space)
	return b.writeConditions(w, "WHERE", d.Wheres, whereParameterPrefix)
}
