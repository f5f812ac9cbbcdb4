package textspan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileBasic(t *testing.T) {
	l, err := Compile("name,age")
	require.NoError(t, err)

	require.Len(t, l.columns, 2)
	assert.Equal(t, Column{Name: "name", Width: DefaultWidth, Align: AlignLeft}, l.columns[0])
	assert.Equal(t, "age", l.columns[1].Name)
	assert.Equal(t, "  ", l.separator)
}

func TestCompileWidthOverride(t *testing.T) {
	l, err := Compile("name:20")
	require.NoError(t, err)
	require.Equal(t, 20, l.columns[0].Width)
}

func TestCompileAlignment(t *testing.T) {
	l, err := Compile("id:4:R, title:30:left ,size:6:right")
	require.NoError(t, err)

	cols := l.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, AlignRight, cols[0].Align)
	assert.Equal(t, "title", cols[1].Name)
	assert.Equal(t, AlignLeft, cols[1].Align)
	assert.Equal(t, AlignRight, cols[2].Align)
}

func TestCompileSkipsEmptyTokens(t *testing.T) {
	l, err := Compile("a:3,,b:3,")
	require.NoError(t, err)
	require.Len(t, l.columns, 2)
}

func TestCompileErrors(t *testing.T) {
	specs := map[string]string{
		"empty":           "",
		"blank":           "   ",
		"only commas":     ",,",
		"empty width":     "name:",
		"non-numeric":     "name:abc",
		"zero width":      "name:0",
		"negative width":  "name:-1",
		"unknown align":   "name:5:middle",
		"empty name":      ":5",
		"too many parts":  "a:1:l:x",
		"second is wrong": "ok:3,bad:x",
	}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			l, err := Compile(spec)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidSpec)
			require.Nil(t, l)
		})
	}
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := Compile("name:abc")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), `invalid width "abc"`), "unexpected error message: %v", err)
}

func TestColumnsReturnsCopy(t *testing.T) {
	l, err := Compile("name:5")
	require.NoError(t, err)

	cols := l.Columns()
	cols[0].Width = 99
	require.Equal(t, 5, l.columns[0].Width)
}

func TestRowLastColumnNotPadded(t *testing.T) {
	l, _ := Compile("name")
	require.Equal(t, "Alice", l.Row("Alice"))
}

func TestRowRightAlign(t *testing.T) {
	l, _ := Compile("name:6,size:5:right")
	require.Equal(t, "a.txt "+"  "+"   42", l.Row("a.txt", "42"))
}

func TestRowPadLastColumn(t *testing.T) {
	l, _ := CompileWithOptions("name:6", Options{PadLastColumn: true})
	require.Equal(t, "ab    ", l.Row("ab"))
}

func TestRowCellCount(t *testing.T) {
	l, _ := Compile("a:3,b:3")
	assert.Equal(t, "x    ", l.Row("x"), "missing cells render empty")
	assert.Equal(t, "x    y", l.Row("x", "y", "z"), "extra cells are dropped")
	assert.Equal(t, "     ", l.Row())
}

func TestHeaderAndUnderline(t *testing.T) {
	l, _ := Compile("Name,Age")

	var buf bytes.Buffer
	require.NoError(t, l.WriteHeader(&buf))
	require.Equal(t, "Name        Age\n", buf.String())

	buf.Reset()
	require.NoError(t, l.WriteUnderline(&buf))
	require.Equal(t, "----        ---\n", buf.String())
}

func TestNoHeader(t *testing.T) {
	l, _ := CompileWithOptions("name:5", Options{NoHeader: true})
	require.Empty(t, l.Header())
	require.Empty(t, l.Underline())

	var buf bytes.Buffer
	require.NoError(t, l.WriteHeader(&buf))
	require.NoError(t, l.WriteUnderline(&buf))
	require.Zero(t, buf.Len())
}

func TestNoUnderline(t *testing.T) {
	l, _ := CompileWithOptions("name:5", Options{Separator: "  ", NoUnderline: true})
	require.Equal(t, "name", l.Header())
	require.Empty(t, l.Underline())
}

func TestCustomSeparator(t *testing.T) {
	l, _ := CompileWithOptions("name:5,age:3", Options{Separator: ","})
	require.Equal(t, "Bob  ,25", l.Row("Bob", "25"))
}

func TestNoPadding(t *testing.T) {
	l, err := CompileWithOptions("name:5,age:3:right", Options{Separator: ",", NoPadding: true})
	require.NoError(t, err)

	require.Equal(t, "name,age", l.Header())
	require.Equal(t, "Bob,25", l.Row("Bob", "25"))
	require.Equal(t, "Alexa,123", l.Row("Alexander", "1234"))
}

func TestTruncation(t *testing.T) {
	l, _ := Compile("name:5")
	require.Equal(t, "Alexa", l.Row("Alexander"))
}

func TestWriteRow(t *testing.T) {
	l, _ := Compile("name:5,age:3:r")

	var buf bytes.Buffer
	require.NoError(t, l.WriteRow(&buf, []string{"Bob", "7"}))
	require.NoError(t, l.WriteRow(&buf, []string{"Carol", "35"}))
	require.Equal(t, "Bob      7\nCarol   35\n", buf.String())
}

func TestCellUnknownAlignPanics(t *testing.T) {
	l := &Layout{columns: []Column{{Name: "x", Width: 3, Align: Align(9)}}}
	require.Panics(t, func() { l.Row("x") })
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide(" Before ")
	require.NoError(t, err)
	require.Equal(t, PadBefore, side)

	side, err = ParseSide("after")
	require.NoError(t, err)
	require.Equal(t, PadAfter, side)

	_, err = ParseSide("middle")
	require.Error(t, err)
}

func TestAlignString(t *testing.T) {
	require.Equal(t, "left", AlignLeft.String())
	require.Equal(t, "right", AlignRight.String())
	require.Equal(t, "Align(9)", Align(9).String())
}

// Benchmark the hot path - formatting rows
func BenchmarkWriteRow(b *testing.B) {
	l, _ := Compile("name:15,age:5:right,temp:8:right")

	cells := []string{"Alice", "30", "98.60"}
	var buf bytes.Buffer

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = l.WriteRow(&buf, cells)
	}
}
