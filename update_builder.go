package query

import (
	"fmt"
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
	"github.com/pkg/errors"
)

// UpdateQueryBuilder compiles Update statements.
//
// Dialects joining on the UPDATE target (MySQL) get
//
//	UPDATE t JOIN ... SET ... WHERE ...
//
// the others get
//
//	UPDATE t SET ... FROM f JOIN ... WHERE ...
type UpdateQueryBuilder struct {
	*SelectQueryBuilder
}

// NewUpdateQueryBuilder returns a builder writing to buf and params.
func NewUpdateQueryBuilder(option *QueryOption, buf *strings.Builder, params *BindParameterCollection) *UpdateQueryBuilder {
	return &UpdateQueryBuilder{
		SelectQueryBuilder: NewSelectQueryBuilder(option, buf, params),
	}
}

// Build compiles u, discarding the result of any previous build.
func (b *UpdateQueryBuilder) Build(u *Update) error {
	b.reset()
	if u == nil {
		return ErrNilStatement
	}
	if err := b.writeUpdate(b.writer(), u); err != nil {
		b.reset()
		return err
	}
	return nil
}

func (b *UpdateQueryBuilder) writeUpdate(w *clauses.Writer, u *Update) error {
	switch {
	case u.err != nil:
		return u.err
	case u.Table.IsZero():
		return ErrMissingTable
	case u.Sets.Len() == 0:
		return ErrEmptySet
	}
	caps := b.option.Capabilities()
	if u.Table.HasJoins() && !caps.SupportsUpdateJoin {
		return errors.Wrapf(ErrUnsupported, "join on UPDATE target on %s", b.option.RdbKind)
	}
	hasFrom := !u.From.IsZero()
	if hasFrom && !caps.SupportsUpdateFrom {
		return errors.Wrapf(ErrUnsupported, "UPDATE ... FROM on %s", b.option.RdbKind)
	}

	b.writeWith(w, u.With, caps)
	w.Clause("UPDATE", b.tableWithJoins(u.Table, caps), clauses.Space)
	sets, err := b.renderSets(u.Sets)
	if err != nil {
		return err
	}
	w.Clause("SET", sets, clauses.Comma)
	if hasFrom {
		w.Clause("FROM", b.tableWithJoins(u.From, caps), clauses.Space)
	}
	return b.writeConditions(w, "WHERE", u.Wheres, whereParameterPrefix)
}

func (b *UpdateQueryBuilder) renderSets(sets *Sets) ([]string, error) {
	q := b.option.QuotationMarks
	items := make([]string, 0, sets.Len())
	for i, s := range sets.Items() {
		column := q.Enclose(s.ColumnName, true)
		if s.IsExpression {
			items = append(items, column+" = "+fmt.Sprint(s.Value))
			continue
		}
		name := parameterName(setParameterPrefix, i)
		if err := b.bind(name, s.Value, s.DbType); err != nil {
			return nil, err
		}
		items = append(items, column+" = "+name)
	}
	return items, nil
}
