package diag

import (
	"testing"
)

func TestBag_Limit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError("A", "a", Span{})) || !b.Add(NewError("B", "b", Span{})) {
		t.Fatal("adds under the limit failed")
	}
	if b.Add(NewError("C", "c", Span{})) {
		t.Error("add over the limit succeeded")
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Errorf("Len() = %d, Cap() = %d, want 2 and 2", b.Len(), b.Cap())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning("W", "w", Span{}))
	if b.HasErrors() {
		t.Error("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Error("warning not seen")
	}
	b.Add(NewError("E", "e", Span{}))
	if !b.HasErrors() {
		t.Error("error not seen")
	}
}

func TestBag_SortByRegistrationOrder(t *testing.T) {
	b := NewBag(10)
	d1 := NewError("Later.Rule", "later", Span{Start: 0, End: 1})
	d1.Seq = 5
	d2 := NewError("Earlier.Rule", "earlier", Span{Start: 10, End: 11})
	d2.Seq = 1
	b.Add(d1)
	b.Add(d2)
	b.Sort()
	items := b.Items()
	if items[0].RuleID != "Earlier.Rule" || items[1].RuleID != "Later.Rule" {
		t.Errorf("order = [%s %s], want registration order", items[0].RuleID, items[1].RuleID)
	}
}

func TestBag_SortTieBreakBySpan(t *testing.T) {
	b := NewBag(10)
	d1 := NewError("R", "second", Span{Start: 7, End: 9})
	d2 := NewError("R", "first", Span{Start: 2, End: 4})
	b.Add(d1)
	b.Add(d2)
	b.Sort()
	if b.Items()[0].Span.Start != 2 {
		t.Errorf("tie not broken by span start: %+v", b.Items())
	}
}

func TestBag_Dedup(t *testing.T) {
	b := NewBag(10)
	d := NewError("R", "msg", Span{Start: 1, End: 3})
	b.Add(d)
	b.Add(d)
	other := NewError("R", "msg", Span{Start: 4, End: 5})
	b.Add(other)
	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len() after dedup = %d, want 2 (same rule, different span kept)", b.Len())
	}
}

func TestSpan(t *testing.T) {
	s := SpanOf("hello", 1, 3)
	if s.Empty() || s.Len() != 2 || s.String() != "1-3" {
		t.Errorf("SpanOf = %+v", s)
	}
	clamped := SpanOf("hi", 0, 99)
	if clamped.End != 2 {
		t.Errorf("End not clamped: %+v", clamped)
	}
	if got := WholeSpan("abc"); got.Start != 0 || got.End != 3 {
		t.Errorf("WholeSpan = %+v", got)
	}
}
