package textspan

import (
	"github.com/go-faster/errors"
	"github.com/willf/pad"
)

// ErrUnhandledCase is matched by the errors raised from CasesHandled.
var ErrUnhandledCase = errors.New("unhandled case")

// SpanChar returns char repeated num times. The whole of char is repeated, so
// the result is num*len(char) bytes long. num <= 0 gives an empty string.
func SpanChar(num int, char string) string {
	return pad.Right("", num, char)
}

// Range returns the integers 1 through times inclusive. Counting starts at 1,
// not 0. times <= 0 gives an empty slice.
func Range(times int) []int {
	if times < 0 {
		times = 0
	}
	list := make([]int, 0, times)
	for len(list) < times {
		list = append(list, len(list)+1)
	}
	return list
}

// Constant returns a function that always yields x.
func Constant[T any](x T) func() T {
	return func() T {
		return x
	}
}

// UnhandledCase builds the error CasesHandled panics with.
func UnhandledCase(x any) error {
	return errors.Wrapf(ErrUnhandledCase, "unexpected value %v", x)
}

// CasesHandled marks the default branch of a switch over a closed set of
// values. Reaching it is a programming error, so it always panics with an
// error wrapping ErrUnhandledCase.
//
//	switch side {
//	case PadBefore:
//	case PadAfter:
//	default:
//	    CasesHandled(side)
//	}
func CasesHandled(x any) {
	panic(UnhandledCase(x))
}

// OmitUndefinedKeys returns a copy of data without the keys whose value is
// nil. Only an untyped nil counts as absent; typed nil pointers, slices and
// maps are kept. Nested maps are not filtered. A nil map yields an empty map.
func OmitUndefinedKeys(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
