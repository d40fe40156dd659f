// Package dialect describes the relational databases the query builders target.
package dialect

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind is the kind of relational database.
type Kind int

// kinds
const (
	None Kind = iota
	MySQL
	Oracle
	PostgreSQL
	SQLite
	SQLServer
)

// ErrUnknownKind is returned by Parse for unrecognized names.
var ErrUnknownKind = errors.New("unknown rdb kind")

var kindNames = map[Kind]string{
	None:       "none",
	MySQL:      "mysql",
	Oracle:     "oracle",
	PostgreSQL: "pgsql",
	SQLite:     "sqlite",
	SQLServer:  "sqlserver",
}

var kindAliases = map[string]Kind{
	"":           None,
	"none":       None,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"oracle":     Oracle,
	"pgsql":      PostgreSQL,
	"postgres":   PostgreSQL,
	"postgresql": PostgreSQL,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Parse returns the Kind for a name such as "mysql", "pgsql" or "mssql".
func Parse(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return None, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// QuotationMarks returns the default identifier quotation marks of the kind.
// Kinds without a default return empty strings.
func (k Kind) QuotationMarks() (left, right string) {
	switch k {
	case MySQL:
		return "`", "`"
	case PostgreSQL:
		return `"`, `"`
	case SQLServer:
		return "[", "]"
	default:
		return "", ""
	}
}

// Capabilities returns the SQL capabilities of the kind at the given version.
// Version 0 means the latest known version.
func (k Kind) Capabilities(version int) Capabilities {
	switch k {
	case MySQL:
		return mysqlCapabilities(version)
	case Oracle:
		return oracleCapabilities(version)
	case PostgreSQL:
		return postgresCapabilities(version)
	case SQLite:
		return sqliteCapabilities(version)
	case SQLServer:
		return sqlServerCapabilities(version)
	default:
		return ansiCapabilities(version)
	}
}

// Capabilities represents the SQL capabilities of a dialect.
type Capabilities struct {
	// SupportsUpdateJoin indicates whether JOIN clauses attach to the UPDATE target.
	//
	// For example (MySQL),
	//   UPDATE foo JOIN bar ON foo.id = bar.id SET foo.val = bar.val
	SupportsUpdateJoin bool
	// SupportsUpdateFrom indicates whether the dialect supports FROM clause in UPDATE statements.
	//
	// For example (PostgreSQL),
	//   UPDATE foo SET val = bar.val FROM bar WHERE foo.id = bar.id
	SupportsUpdateFrom bool
	// SupportsDeleteJoin indicates whether DELETE names its target ahead of a joined FROM.
	// Other dialects keep the plain DELETE FROM form.
	//
	// For example (SQL Server),
	//   DELETE f FROM foo AS f JOIN bar AS b ON f.id = b.foo_id
	SupportsDeleteJoin bool

	// SupportsTop indicates whether row limiting is done with SELECT TOP n.
	SupportsTop bool
	// SupportsLimitOffset indicates whether row limiting is done with LIMIT / OFFSET.
	SupportsLimitOffset bool
	// SupportsOffsetFetch indicates whether row limiting is done with OFFSET ... FETCH.
	SupportsOffsetFetch bool
	// OffsetRequiresOrder indicates whether OFFSET is only valid after ORDER BY.
	OffsetRequiresOrder bool
	// OffsetRequiresLimit holds the LIMIT literal that must precede a bare OFFSET,
	// empty when OFFSET may appear alone.
	OffsetRequiresLimit string

	// SupportsForJSON indicates whether the dialect supports FOR JSON clause.
	SupportsForJSON bool
	// SupportsRecursiveKeyword indicates whether recursive CTEs are written WITH RECURSIVE.
	SupportsRecursiveKeyword bool
	// SupportsTableAliasAs indicates whether table aliases may be introduced with AS.
	SupportsTableAliasAs bool
}
