package query

import (
	"github.com/izayoijiichan/izayoi-data-query/dialect"
	"github.com/izayoijiichan/izayoi-data-query/internal/clauses"
)

// DefaultInitialBufferSize is the buffer capacity reserved before each build.
const DefaultInitialBufferSize = 256

// DefaultIndentSpace is the indent width of formatted queries.
const DefaultIndentSpace = 4

// QueryOption holds the dialect and formatting settings of a build.
// It is read-only during a build and may be shared by many builders.
type QueryOption struct {
	// RdbKind is the target database.
	RdbKind dialect.Kind
	// RdbVersion is the dialect specific version, e.g. 2016 for SQL Server 2016.
	// Zero means the latest known version.
	RdbVersion int
	// QuotationMarks encloses identifiers.
	QuotationMarks QuotationMarks
	// InitialBufferSize is a capacity hint for the query buffer.
	InitialBufferSize int
	// EnableFormat puts clause keywords and list items on their own lines.
	EnableFormat bool
	// IndentSpace is the indent width of list items when formatting.
	IndentSpace int
	// BeforeComma leads continuation lines with the comma when formatting.
	BeforeComma bool
}

// NewQueryOption returns an option for kind with its default quotation marks.
func NewQueryOption(kind dialect.Kind) *QueryOption {
	left, right := kind.QuotationMarks()
	return &QueryOption{
		RdbKind:           kind,
		QuotationMarks:    NewQuotationMarks(left, right),
		InitialBufferSize: DefaultInitialBufferSize,
		IndentSpace:       DefaultIndentSpace,
	}
}

// DefaultQueryOption returns the SQL Server option with bracket quotation.
func DefaultQueryOption() *QueryOption {
	return NewQueryOption(dialect.SQLServer)
}

// GetFixedIndentCount returns IndentSpace clamped to what the comma placement
// needs: at least 2 before commas, at least 1 after them.
func (o *QueryOption) GetFixedIndentCount() int {
	minimum := 1
	if o.BeforeComma {
		minimum = 2
	}
	if o.IndentSpace < minimum {
		return minimum
	}
	return o.IndentSpace
}

// Capabilities returns the capabilities of the configured dialect and version.
func (o *QueryOption) Capabilities() dialect.Capabilities {
	return o.RdbKind.Capabilities(o.RdbVersion)
}

func (o *QueryOption) layout() clauses.Layout {
	return clauses.Layout{
		Format:      o.EnableFormat,
		Indent:      o.GetFixedIndentCount(),
		BeforeComma: o.BeforeComma,
	}
}
