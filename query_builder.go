package query

import (
	"strings"

	"go.uber.org/zap"
)

// QueryBuilder compiles any statement model. It owns the query buffer and the
// bind parameters shared by the statement builders it creates on demand.
//
// Every build starts from scratch, so a QueryBuilder may be reused for many
// statements, but not from several goroutines at once.
type QueryBuilder struct {
	option *QueryOption
	buf    *strings.Builder
	params *BindParameterCollection

	selectBuilder *SelectQueryBuilder
	insertBuilder *InsertQueryBuilder
	updateBuilder *UpdateQueryBuilder
	deleteBuilder *DeleteQueryBuilder

	debugger
}

// NewQueryBuilder returns a builder for option, DefaultQueryOption if nil.
func NewQueryBuilder(option *QueryOption) *QueryBuilder {
	if option == nil {
		option = DefaultQueryOption()
	}
	return &QueryBuilder{
		option: option,
		buf:    &strings.Builder{},
		params: NewBindParameterCollection(),
	}
}

// Option returns the option of the builder.
func (b *QueryBuilder) Option() *QueryOption {
	return b.option
}

// Debug enables debug mode which logs the built and the interpolated query.
func (b *QueryBuilder) Debug(name ...string) *QueryBuilder {
	b.debugger.Debug(name...)
	return b
}

// WithLogger sets the logger of debug mode. The default logger discards
// everything.
func (b *QueryBuilder) WithLogger(logger *zap.Logger) *QueryBuilder {
	b.logger = logger
	return b
}

// Build compiles s.
func (b *QueryBuilder) Build(s Statement) error {
	if s == nil {
		return ErrNilStatement
	}
	return s.buildWith(b)
}

// BuildQuery compiles s and returns the query with its parameters as
// database/sql named arguments.
func (b *QueryBuilder) BuildQuery(s Statement) (query string, args []any, err error) {
	if err = b.Build(s); err != nil {
		return "", nil, err
	}
	return b.Query(), b.params.Args(), nil
}

// BuildSelect compiles s.
func (b *QueryBuilder) BuildSelect(s *Select) error {
	return b.done(b.selectQueryBuilder().Build(s))
}

// BuildInsert compiles i.
func (b *QueryBuilder) BuildInsert(i *Insert) error {
	return b.done(b.insertQueryBuilder().Build(i))
}

// BuildUpdate compiles u.
func (b *QueryBuilder) BuildUpdate(u *Update) error {
	return b.done(b.updateQueryBuilder().Build(u))
}

// BuildDelete compiles d.
func (b *QueryBuilder) BuildDelete(d *Delete) error {
	return b.done(b.deleteQueryBuilder().Build(d))
}

// Query returns the SQL text of the last build, "" before any.
func (b *QueryBuilder) Query() string {
	return b.buf.String()
}

// Parameters returns the bind parameters of the last build.
func (b *QueryBuilder) Parameters() *BindParameterCollection {
	return b.params
}

func (b *QueryBuilder) done(err error) error {
	if err != nil {
		return err
	}
	b.logIfDebug(b.Query(), b.params)
	return nil
}

func (b *QueryBuilder) selectQueryBuilder() *SelectQueryBuilder {
	if b.selectBuilder == nil {
		b.selectBuilder = NewSelectQueryBuilder(b.option, b.buf, b.params)
	}
	return b.selectBuilder
}

func (b *QueryBuilder) insertQueryBuilder() *InsertQueryBuilder {
	if b.insertBuilder == nil {
		b.insertBuilder = NewInsertQueryBuilder(b.option, b.buf, b.params)
	}
	return b.insertBuilder
}

func (b *QueryBuilder) updateQueryBuilder() *UpdateQueryBuilder {
	if b.updateBuilder == nil {
		b.updateBuilder = NewUpdateQueryBuilder(b.option, b.buf, b.params)
	}
	return b.updateBuilder
}

func (b *QueryBuilder) deleteQueryBuilder() *DeleteQueryBuilder {
	if b.deleteBuilder == nil {
		b.deleteBuilder = NewDeleteQueryBuilder(b.option, b.buf, b.params)
	}
	return b.deleteBuilder
}
