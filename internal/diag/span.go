package diag

import (
	"fmt"
)

// Span is a byte range inside the checked input.
// Start включительно, End не включительно. Пустой Span означает
// "вся строка целиком" (матчер не смог указать точнее).
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// SpanOf builds a span over [start, end) of the given input, clamped to its
// length so matchers cannot produce out-of-range offsets.
func SpanOf(input string, start, end int) Span {
	if start < 0 {
		start = 0
	}
	if end > len(input) {
		end = len(input)
	}
	if end < start {
		end = start
	}
	return Span{Start: uint32(start), End: uint32(end)}
}

// WholeSpan covers the entire input.
func WholeSpan(input string) Span {
	return SpanOf(input, 0, len(input))
}
