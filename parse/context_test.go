package parse

import "testing"

func TestContext_At(t *testing.T) {
	ctx := NewContext(itemTokens())

	if got, ok := ctx.At(0); !ok || got.Type != kindID {
		t.Errorf("At(0) = %+v, %v", got, ok)
	}
	if _, ok := ctx.At(99); ok {
		t.Error("At past the end must report absence")
	}
	if _, ok := ctx.At(-1); ok {
		t.Error("At with a negative offset must report absence")
	}
}

func TestContext_SpanLast(t *testing.T) {
	ctx := NewContext(itemTokens())
	if got := ctx.SpanLast(); got != (Span{Line: 1, StartCol: 8, EndCol: 8}) {
		t.Errorf("SpanLast() = %s", got)
	}

	empty := NewContext[kind](nil)
	if got := empty.SpanLast(); got != DefaultSpan {
		t.Errorf("SpanLast() on empty input = %s, want default span", got)
	}
}

func TestContext_SpanAt(t *testing.T) {
	ctx := NewContext(itemTokens())
	if got := ctx.SpanAt(1); got != (Span{Line: 1, StartCol: 3, EndCol: 3}) {
		t.Errorf("SpanAt(1) = %s", got)
	}
	if got := ctx.SpanAt(99); got != ctx.SpanLast() {
		t.Errorf("SpanAt past the end must fall back to the last token, got %s", got)
	}
}

func TestSpan_Size(t *testing.T) {
	s := Span{Line: 1, StartCol: 5, EndCol: 7}
	if s.Size() != 3 {
		t.Errorf("Size() = %d, want 3", s.Size())
	}
	if s.String() != "1:5-7" {
		t.Errorf("String() = %q", s.String())
	}
}
