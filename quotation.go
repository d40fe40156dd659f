package query

import "strings"

// QuotationMarks is the pair of characters enclosing identifiers,
// e.g. "[" and "]" for SQL Server. The zero value disables quoting.
type QuotationMarks struct {
	Left  string
	Right string
}

// NewQuotationMarks returns the quotation marks left and right.
func NewQuotationMarks(left, right string) QuotationMarks {
	return QuotationMarks{Left: left, Right: right}
}

// Enabled reports whether identifiers get enclosed.
func (q QuotationMarks) Enabled() bool {
	return q.Left != "" || q.Right != ""
}

// Enclose encloses identifier in the quotation marks. Dotted identifiers are
// enclosed segment by segment:
//
//	q := NewQuotationMarks("[", "]")
//	q.Enclose("u.name", true) // [u].[name]
//	q.Enclose("u.*", true)    // [u].*
//
// A right mark inside a segment is doubled, so "a]b" becomes "[a]]b]".
// With quoting disabled the identifier is returned unchanged. An empty
// identifier yields "" when excludeEmpty is set, the bare marks otherwise.
func (q QuotationMarks) Enclose(identifier string, excludeEmpty bool) string {
	if !q.Enabled() {
		return identifier
	}
	if identifier == "" {
		if excludeEmpty {
			return ""
		}
		return q.Left + q.Right
	}
	if q.enclosed(identifier) && !strings.Contains(identifier, q.Right+"."+q.Left) {
		return identifier
	}
	if !strings.Contains(identifier, ".") {
		return q.encloseSegment(identifier)
	}
	segments := strings.Split(identifier, ".")
	for i, segment := range segments {
		segments[i] = q.encloseSegment(segment)
	}
	return strings.Join(segments, ".")
}

func (q QuotationMarks) encloseSegment(segment string) string {
	if segment == "*" || segment == "" || q.enclosed(segment) {
		return segment
	}
	if q.Right != "" {
		segment = strings.ReplaceAll(segment, q.Right, q.Right+q.Right)
	}
	return q.Left + segment + q.Right
}

func (q QuotationMarks) enclosed(s string) bool {
	return len(s) >= len(q.Left)+len(q.Right) &&
		strings.HasPrefix(s, q.Left) &&
		strings.HasSuffix(s, q.Right)
}
