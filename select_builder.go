package query

import (
	"strconv"
	"strings"

	"github.com/izayoijiichan/izayoi-data-query/dialect"
	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
	"github.com/pkg/errors"
)

// SelectQueryBuilder compiles Select statements. It is the base of the other
// statement builders, which share its buffer, parameters and clause writers.
//
// A builder is not safe for concurrent use.
type SelectQueryBuilder struct {
	option *QueryOption
	buf    *strings.Builder
	params *BindParameterCollection
}

// NewSelectQueryBuilder returns a builder writing to buf and params.
// Nil arguments are replaced with defaults.
func NewSelectQueryBuilder(option *QueryOption, buf *strings.Builder, params *BindParameterCollection) *SelectQueryBuilder {
	if option == nil {
		option = DefaultQueryOption()
	}
	if buf == nil {
		buf = &strings.Builder{}
	}
	if params == nil {
		params = NewBindParameterCollection()
	}
	return &SelectQueryBuilder{
		option: option,
		buf:    buf,
		params: params,
	}
}

// Build compiles s, discarding the result of any previous build.
// On error the query and parameters are left empty.
func (b *SelectQueryBuilder) Build(s *Select) error {
	b.reset()
	if s == nil {
		return ErrNilStatement
	}
	if err := b.writeSelect(b.writer(), s); err != nil {
		b.reset()
		return err
	}
	return nil
}

// Option returns the option the builder was created with.
func (b *SelectQueryBuilder) Option() *QueryOption {
	return b.option
}

// Query returns the SQL text of the last build.
func (b *SelectQueryBuilder) Query() string {
	return b.buf.String()
}

// Parameters returns the bind parameters of the last build.
func (b *SelectQueryBuilder) Parameters() *BindParameterCollection {
	return b.params
}

func (b *SelectQueryBuilder) reset() {
	b.buf.Reset()
	b.params.Clear()
	if b.option.InitialBufferSize > 0 {
		b.buf.Grow(b.option.InitialBufferSize)
	}
}

func (b *SelectQueryBuilder) writer() *clauses.Writer {
	return clauses.NewWriter(b.buf, b.option.layout())
}

func (b *SelectQueryBuilder) writeSelect(w *clauses.Writer, s *Select) error {
	caps := b.option.Capabilities()
	q := b.option.QuotationMarks
	p, err := b.paging(s, caps)
	if err != nil {
		return err
	}
	b.writeWith(w, s.With, caps)
	b.writeSelectList(w, s, p.top)
	if !s.From.IsZero() {
		w.Clause("FROM", b.tableWithJoins(s.From, caps), clauses.Space)
	}
	if err := b.writeConditions(w, "WHERE", s.Wheres, whereParameterPrefix); err != nil {
		return err
	}
	if s.Groups.Len() > 0 {
		w.Clause("GROUP BY", s.Groups.render(q), clauses.Comma)
	}
	if err := b.writeConditions(w, "HAVING", s.Havings, havingParameterPrefix); err != nil {
		return err
	}
	orders := s.Orders.render(q)
	if len(orders) == 0 && p.orderRequired {
		orders = []string{"(SELECT NULL)"}
	}
	if len(orders) > 0 {
		w.Clause("ORDER BY", orders, clauses.Comma)
	}
	for _, line := range p.lines {
		w.Line(line)
	}
	return b.writeForJson(w, s.For)
}

// writeSelectList writes the SELECT keyword, its quantifiers and the fields.
// Formatted, TOP gets a line of its own between SELECT and the fields.
func (b *SelectQueryBuilder) writeSelectList(w *clauses.Writer, s *Select, top int) {
	keyword := "SELECT"
	if t := s.SelectType.String(); t != "" {
		keyword += " " + t
	}
	fields := s.Fields.render(b.option.QuotationMarks)
	if len(fields) == 0 {
		fields = []string{"*"}
	}
	if top > 0 {
		topText := "TOP " + strconv.Itoa(top)
		if w.Formatted() {
			w.Line(keyword)
			w.Clause(topText, fields, clauses.Comma)
			return
		}
		keyword += " " + topText
	}
	w.Clause(keyword, fields, clauses.Comma)
}

type paging struct {
	top           int
	lines         []string
	orderRequired bool
}

func (b *SelectQueryBuilder) paging(s *Select, caps dialect.Capabilities) (paging, error) {
	limit, offset := max(s.Limit, 0), max(s.Offset, 0)
	if limit == 0 && offset == 0 {
		return paging{}, nil
	}
	switch {
	case caps.SupportsTop && offset == 0:
		return paging{top: limit}, nil
	case caps.SupportsLimitOffset:
		p := paging{}
		if limit > 0 {
			p.lines = append(p.lines, "LIMIT "+strconv.Itoa(limit))
		} else if caps.OffsetRequiresLimit != "" {
			p.lines = append(p.lines, "LIMIT "+caps.OffsetRequiresLimit)
		}
		if offset > 0 {
			p.lines = append(p.lines, "OFFSET "+strconv.Itoa(offset))
		}
		return p, nil
	case caps.SupportsOffsetFetch:
		if offset == 0 {
			return paging{lines: []string{"FETCH FIRST " + strconv.Itoa(limit) + " ROWS ONLY"}}, nil
		}
		p := paging{
			lines:         []string{"OFFSET " + strconv.Itoa(offset) + " ROWS"},
			orderRequired: caps.OffsetRequiresOrder,
		}
		if limit > 0 {
			p.lines = append(p.lines, "FETCH NEXT "+strconv.Itoa(limit)+" ROWS ONLY")
		}
		return p, nil
	}
	return paging{}, errors.Wrapf(ErrUnsupported, "row offset on %s version %d", b.option.RdbKind, b.option.RdbVersion)
}

func (b *SelectQueryBuilder) writeForJson(w *clauses.Writer, f *ForJson) error {
	if f.IsZero() || b.option.RdbKind != dialect.SQLServer {
		return nil
	}
	if !b.option.Capabilities().SupportsForJSON {
		return errors.Wrapf(ErrUnsupported, "FOR JSON on %s version %d", b.option.RdbKind, b.option.RdbVersion)
	}
	w.Line(f.ToQuery(b.option.QuotationMarks))
	return nil
}

func (b *SelectQueryBuilder) writeWith(w *clauses.Writer, with *With, caps dialect.Capabilities) {
	if with.Len() == 0 {
		return
	}
	w.Clause(with.keyword(caps.SupportsRecursiveKeyword), with.render(b.option.QuotationMarks), clauses.Comma)
}

// tableWithJoins renders t followed by its joins.
func (b *SelectQueryBuilder) tableWithJoins(t *TableSource, caps dialect.Capabilities) []string {
	q := b.option.QuotationMarks
	items := []string{t.render(q, caps.SupportsTableAliasAs)}
	return append(items, t.Joins.render(q, caps.SupportsTableAliasAs)...)
}
