package query

import (
	"fmt"
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
	"github.com/izayoijiichan/izayoi-data-query/internal/util"
)

// InsertQueryBuilder compiles Insert statements.
type InsertQueryBuilder struct {
	*SelectQueryBuilder
}

// NewInsertQueryBuilder returns a builder writing to buf and params.
func NewInsertQueryBuilder(option *QueryOption, buf *strings.Builder, params *BindParameterCollection) *InsertQueryBuilder {
	return &InsertQueryBuilder{
		SelectQueryBuilder: NewSelectQueryBuilder(option, buf, params),
	}
}

// Build compiles i, discarding the result of any previous build.
func (b *InsertQueryBuilder) Build(i *Insert) error {
	b.reset()
	if i == nil {
		return ErrNilStatement
	}
	if err := b.writeInsert(b.writer(), i); err != nil {
		b.reset()
		return err
	}
	return nil
}

func (b *InsertQueryBuilder) writeInsert(w *clauses.Writer, i *Insert) error {
	hasValues, hasSelect := i.Values.Len() > 0, i.Select != nil
	switch {
	case hasValues && hasSelect:
		return ErrInsertSourceConflict
	case !hasValues && !hasSelect:
		return ErrInsertSourceMissing
	case i.Into.IsZero():
		return ErrMissingTable
	}
	caps := b.option.Capabilities()
	q := b.option.QuotationMarks

	b.writeWith(w, i.With, caps)
	w.Clause("INSERT INTO", []string{i.Into.render(q, caps.SupportsTableAliasAs)}, clauses.Space)
	columns := i.Columns
	if hasValues {
		columns = i.Values.Names()
	}
	if len(columns) > 0 {
		w.Group(util.Map(columns, func(c string) string {
			return q.Enclose(c, true)
		}), clauses.Comma)
	}
	if hasSelect {
		return b.writeSelect(w, i.Select)
	}

	values := make([]string, 0, i.Values.Len())
	for k, v := range i.Values.Items() {
		if v.IsExpression {
			values = append(values, fmt.Sprint(v.Value))
			continue
		}
		name := parameterName(valueParameterPrefix, k)
		if err := b.bind(name, v.Value, v.DbType); err != nil {
			return err
		}
		values = append(values, name)
	}
	w.Line("VALUES")
	w.Group(values, clauses.Comma)
	return nil
}
