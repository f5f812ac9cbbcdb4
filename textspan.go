// Package textspan provides small helpers for shaping text to a fixed width
// and a column layout built on top of them.
//
// # Overview
//
// The core operation is Span, which coerces a string to an exact length by
// padding it on one side or cropping it from the end:
//
//	textspan.Span(textspan.PadAfter, "x", 5, "ab")  // "abxxx"
//	textspan.Span(textspan.PadBefore, "x", 5, "ab") // "xxxab"
//	textspan.Span(textspan.PadAfter, "x", 3, "abcdef") // "abc"
//
// ClampSpace and SpanSpaceRight are the space-padded, left and right aligned
// forms. SpanChar and SpanSpace build runs of a repeated character.
//
// # Lengths
//
// All lengths are byte lengths. Input is not validated for multi-byte
// encodings, so non-ASCII text may be cropped mid-rune and will not align
// visually.
//
// # Pad strings
//
// Pad characters are expected to be a single byte. A longer pad string is
// repeated whole until the target is reached, so the result may overshoot
// the target by at most len(padChar)-1 bytes.
//
// # Columns
//
// Layout formats rows of string cells into fixed-width columns:
//
//	layout, _ := textspan.Compile("name:10,size:6:right")
//	layout.WriteHeader(os.Stdout)
//	layout.WriteRow(os.Stdout, []string{"report.txt", "1024"})
package textspan

import "strconv"

// Side selects which end of a string receives padding.
type Side int

const (
	// PadBefore inserts padding before the content (right-aligned text).
	PadBefore Side = iota + 1
	// PadAfter appends padding after the content (left-aligned text).
	PadAfter
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case PadBefore:
		return "before"
	case PadAfter:
		return "after"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// Span guarantees the length of content, padding it with padChar on the given
// side. Content longer than target is cropped to its first target bytes
// whatever the side. A negative target leaves content untouched, as does an
// empty padChar. A side other than PadBefore or PadAfter always panics.
func Span(side Side, padChar string, target int, content string) string {
	switch side {
	case PadBefore, PadAfter:
	default:
		CasesHandled(side)
	}

	if target < 0 {
		return content
	}
	if len(content) > target {
		return content[:target]
	}

	deficit := target - len(content)
	if deficit == 0 || padChar == "" {
		return content
	}

	// Whole pad units only; rounding up may overshoot for multi-byte pads.
	units := (deficit + len(padChar) - 1) / len(padChar)
	pad := SpanChar(units, padChar)

	if side == PadBefore {
		return pad + content
	}
	return content + pad
}

// ClampSpace left-aligns content in target bytes, padding with spaces and
// cropping when too long.
func ClampSpace(target int, content string) string {
	return Span(PadAfter, " ", target, content)
}

// SpanSpaceRight right-aligns content in target bytes, padding with spaces
// and cropping when too long.
func SpanSpaceRight(target int, content string) string {
	return Span(PadBefore, " ", target, content)
}

// SpanSpace returns a string of num spaces.
func SpanSpace(num int) string {
	return SpanChar(num, " ")
}
