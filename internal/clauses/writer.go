// Package clauses lays SQL clauses out into a text buffer.
package clauses

import (
	"strings"
)

// Separator tells how list items are joined.
type Separator int

// separators
const (
	// Comma joins items with ", " or puts them on comma-led / comma-trailed lines.
	Comma Separator = iota
	// Space joins items with " " or puts them on their own lines.
	Space
)

// Layout controls the shape of the emitted clauses.
type Layout struct {
	// Format puts every clause keyword and list item on its own line.
	Format bool
	// Indent is the number of spaces before each list item. Callers pass an
	// already clamped value.
	Indent int
	// BeforeComma leads continuation lines with the comma instead of
	// trailing the previous line with it.
	BeforeComma bool
}

// Writer appends clauses to a shared buffer. Each clause starts on a new
// line unless the buffer is empty.
type Writer struct {
	buf    *strings.Builder
	layout Layout
}

// NewWriter returns a Writer appending to buf.
func NewWriter(buf *strings.Builder, layout Layout) *Writer {
	return &Writer{
		buf:    buf,
		layout: layout,
	}
}

// Formatted reports whether the writer lays clauses out over several lines.
func (w *Writer) Formatted() bool {
	return w.layout.Format
}

// Line starts a new line and writes text.
func (w *Writer) Line(text string) {
	if w.buf.Len() > 0 {
		w.buf.WriteByte('\n')
	}
	w.buf.WriteString(text)
}

// Clause writes a keyword followed by its items, e.g.:
//
//	SELECT a, b          (unformatted)
//
//	SELECT               (formatted)
//	    a,
//	    b
//
// An empty keyword writes the items alone.
func (w *Writer) Clause(keyword string, items []string, sep Separator) {
	if len(items) == 0 {
		if keyword != "" {
			w.Line(keyword)
		}
		return
	}
	if !w.layout.Format {
		text := join(items, sep)
		if keyword != "" {
			text = keyword + " " + text
		}
		w.Line(text)
		return
	}
	if keyword != "" {
		w.Line(keyword)
	}
	w.items(items, sep)
}

// Group writes items enclosed in parentheses, e.g. an INSERT column list:
//
//	(a, b)               (unformatted)
//
//	(                    (formatted)
//	    a,
//	    b
//	)
func (w *Writer) Group(items []string, sep Separator) {
	if !w.layout.Format {
		w.Line("(" + join(items, sep) + ")")
		return
	}
	w.Line("(")
	w.items(items, sep)
	w.Line(")")
}

func (w *Writer) items(items []string, sep Separator) {
	pad := strings.Repeat(" ", w.layout.Indent)
	last := len(items) - 1
	for i, item := range items {
		if i > 0 && sep == Comma && w.layout.BeforeComma {
			w.Line(w.commaPrefix() + item)
			continue
		}
		w.Line(pad + item)
		if sep == Comma && !w.layout.BeforeComma && i < last {
			w.buf.WriteByte(',')
		}
	}
}

// commaPrefix keeps continuation items aligned with the first one: the comma
// and its trailing space take the last two columns of the indent.
func (w *Writer) commaPrefix() string {
	if w.layout.Indent < 3 {
		return ", "
	}
	return strings.Repeat(" ", w.layout.Indent-2) + ", "
}

func join(items []string, sep Separator) string {
	if sep == Space {
		return strings.Join(items, " ")
	}
	return strings.Join(items, ", ")
}
