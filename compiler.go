package textspan

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// DefaultWidth is the width of a column whose spec gives none.
const DefaultWidth = 10

// ErrInvalidSpec is wrapped by every error returned from Compile.
var ErrInvalidSpec = errors.New("invalid column specification")

// Compile creates a layout from a column specification.
//
// The spec is a comma-separated list of columns, each written as
// name[:width[:align]]:
//   - Width defaults to DefaultWidth
//   - Align is "left" (or "l", the default) or "right" (or "r")
//
// Examples:
//
//	Compile("name,size")
//	Compile("name:20,size:8:right")
//	Compile("id:4:r,title:30:l")
//
// Returns an error wrapping ErrInvalidSpec if any token is malformed.
func Compile(spec string) (*Layout, error) {
	return CompileWithOptions(spec, Options{
		Separator: "  ", // Default: two spaces between columns
	})
}

// CompileWithOptions creates a layout with custom options.
func CompileWithOptions(spec string, opts Options) (*Layout, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.Wrap(ErrInvalidSpec, "empty column specification")
	}

	columns, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return nil, errors.Wrap(ErrInvalidSpec, "no columns specified")
	}

	// Separator can be empty string (no spacing)
	l := &Layout{
		separator: opts.Separator,
		noPadding: opts.NoPadding,
		padLast:   opts.PadLastColumn,
		columns:   columns,
	}

	if !opts.NoHeader {
		names := make([]string, len(columns))
		for i, c := range columns {
			names[i] = c.Name
		}
		l.header = l.Row(names...)
	}
	if !opts.NoUnderline {
		l.underline = buildUnderline(l.header)
	}

	return l, nil
}

// parseSpec parses a column specification string.
func parseSpec(spec string) ([]Column, error) {
	var columns []Column
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		c, err := parseColumnSpec(tok)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

// parseColumnSpec parses a single token (name, name:width or name:width:align).
func parseColumnSpec(tok string) (Column, error) {
	parts := strings.Split(tok, ":")
	if len(parts) > 3 {
		return Column{}, errors.Wrapf(ErrInvalidSpec, "too many parts in %q", tok)
	}

	c := Column{
		Name:  strings.TrimSpace(parts[0]),
		Width: DefaultWidth,
		Align: AlignLeft,
	}
	if c.Name == "" {
		return Column{}, errors.Wrapf(ErrInvalidSpec, "empty column name in %q", tok)
	}

	if len(parts) > 1 {
		widthStr := strings.TrimSpace(parts[1])
		if widthStr == "" {
			return Column{}, errors.Wrapf(ErrInvalidSpec, "empty width in %q", tok)
		}
		width, err := strconv.Atoi(widthStr)
		if err != nil {
			return Column{}, errors.Wrapf(ErrInvalidSpec, "invalid width %q in %q", widthStr, tok)
		}
		if width <= 0 {
			return Column{}, errors.Wrapf(ErrInvalidSpec, "invalid width %d for column %q", width, c.Name)
		}
		c.Width = width
	}

	if len(parts) > 2 {
		align, err := ParseAlign(parts[2])
		if err != nil {
			return Column{}, errors.Wrapf(err, "column %q", c.Name)
		}
		c.Align = align
	}

	return c, nil
}

// ParseAlign parses "left", "l", "right" or "r", ignoring case and
// surrounding space.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return AlignLeft, nil
	case "right", "r":
		return AlignRight, nil
	default:
		return 0, errors.Wrapf(ErrInvalidSpec, "unknown alignment %q", s)
	}
}

// ParseSide parses "before" or "after", ignoring case and surrounding space.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return PadBefore, nil
	case "after":
		return PadAfter, nil
	default:
		return 0, errors.Errorf("unknown pad side %q", s)
	}
}

// buildUnderline creates an underline matching the header.
func buildUnderline(header string) string {
	underline := []byte(header)
	for i, ch := range underline {
		if ch != ' ' {
			underline[i] = '-'
		}
	}
	return string(underline)
}
