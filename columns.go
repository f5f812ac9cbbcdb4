package textspan

import (
	"io"
	"strconv"
	"strings"
)

// Align represents the alignment of text within a column.
type Align int

const (
	// AlignLeft pads cells on the right.
	AlignLeft Align = iota + 1
	// AlignRight pads cells on the left.
	AlignRight
)

// String implements fmt.Stringer.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "Align(" + strconv.Itoa(int(a)) + ")"
	}
}

// Column describes one fixed-width column of a Layout.
type Column struct {
	// Name is shown in the header
	Name string

	// Width is the column width in bytes
	Width int

	// Align selects the padded side of each cell
	Align Align
}

// Options configures layout compilation.
type Options struct {
	// Separator is inserted between columns (default: "  ")
	Separator string

	// NoPadding crops cells to their width without padding (useful for CSV)
	NoPadding bool

	// PadLastColumn pads a left-aligned last column to its width.
	// Leaving it false avoids trailing spaces.
	PadLastColumn bool

	// NoHeader skips header line generation
	NoHeader bool

	// NoUnderline skips underline generation
	NoUnderline bool
}

// Layout is a compiled set of columns.
//
// Layouts are created by Compile and are safe for concurrent use.
type Layout struct {
	header    string
	underline string
	separator string
	noPadding bool
	padLast   bool
	columns   []Column
}

// Columns returns a copy of the layout's columns.
func (l *Layout) Columns() []Column {
	out := make([]Column, len(l.columns))
	copy(out, l.columns)
	return out
}

// Header returns the header line without a trailing newline. It is empty when
// the layout was compiled with NoHeader.
func (l *Layout) Header() string {
	return l.header
}

// Underline returns the header underline: dashes under header text and spaces
// elsewhere.
func (l *Layout) Underline() string {
	return l.underline
}

// Row formats cells into a single line. Missing cells are rendered empty and
// cells beyond the last column are dropped.
func (l *Layout) Row(cells ...string) string {
	var b strings.Builder
	for i := range l.columns {
		if i > 0 {
			b.WriteString(l.separator)
		}
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(l.cell(i, cell))
	}
	return b.String()
}

// WriteHeader writes the header line to w. Nothing is written when the header
// is disabled.
func (l *Layout) WriteHeader(w io.Writer) error {
	return writeLine(w, l.header)
}

// WriteUnderline writes the header underline to w.
func (l *Layout) WriteUnderline(w io.Writer) error {
	return writeLine(w, l.underline)
}

// WriteRow formats cells and writes them to w as one line.
func (l *Layout) WriteRow(w io.Writer, cells []string) error {
	_, err := io.WriteString(w, l.Row(cells...)+"\n")
	return err
}

// cell shapes s for column i.
func (l *Layout) cell(i int, s string) string {
	c := l.columns[i]
	if l.noPadding {
		// An empty pad crops without padding.
		return Span(PadAfter, "", c.Width, s)
	}
	switch c.Align {
	case AlignLeft:
		if i == len(l.columns)-1 && !l.padLast {
			return Span(PadAfter, "", c.Width, s)
		}
		return ClampSpace(c.Width, s)
	case AlignRight:
		return SpanSpaceRight(c.Width, s)
	default:
		CasesHandled(c.Align)
	}
	return s
}

func writeLine(w io.Writer, line string) error {
	if line == "" {
		return nil
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}
