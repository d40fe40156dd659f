package query

import "strings"

// JsonMode is the mode of a FOR JSON clause.
type JsonMode int

// json modes
const (
	JsonModeNone JsonMode = iota
	JsonModeAuto
	JsonModePath
)

func (m JsonMode) String() string {
	switch m {
	case JsonModeAuto:
		return "AUTO"
	case JsonModePath:
		return "PATH"
	default:
		return ""
	}
}

// ForJson describes the SQL Server FOR JSON clause. Other dialects ignore it.
type ForJson struct {
	Mode                JsonMode
	Root                string
	IncludeNullValues   bool
	WithoutArrayWrapper bool
}

// IsZero reports whether no JSON output is requested.
func (f *ForJson) IsZero() bool {
	return f == nil || f.Mode == JsonModeNone
}

// ToQuery renders the clause, e.g. "FOR JSON PATH, ROOT('users')".
// It returns "" when no mode is set.
func (f *ForJson) ToQuery(QuotationMarks) string {
	if f.IsZero() {
		return ""
	}
	parts := []string{"FOR JSON " + f.Mode.String()}
	if f.Root != "" {
		parts = append(parts, "ROOT('"+strings.ReplaceAll(f.Root, "'", "''")+"')")
	}
	if f.IncludeNullValues {
		parts = append(parts, "INCLUDE_NULL_VALUES")
	}
	if f.WithoutArrayWrapper {
		parts = append(parts, "WITHOUT_ARRAY_WRAPPER")
	}
	return strings.Join(parts, ", ")
}
