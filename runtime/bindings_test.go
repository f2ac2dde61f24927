package runtime

import (
	"testing"

	"github.com/npillmayer/pex/value"
)

func TestPushPopAndLexicalScope(t *testing.T) {
	b := NewBindings()
	b.Push("greet")
	b.DefineLexical("x", value.Atomize(7))
	if v, ok := b.Get("x"); !ok || v.Raw() != 7 {
		t.Fatalf("expected lexical binding x=7, got %v, %v", v, ok)
	}
	b.Push("inner")
	if v, ok := b.Get("x"); !ok || v.Raw() != 7 {
		t.Errorf("inherited lookup through parent frame failed: %v, %v", v, ok)
	}
	b.Pop()
	if _, ok := b.Get("x"); !ok {
		t.Errorf("x should still be visible after popping the inner frame")
	}
	b.Pop()
	if _, ok := b.Get("x"); ok {
		t.Errorf("x should no longer be visible once its declaring frame is popped")
	}
}

func TestSetWritesNearestDeclaringFrame(t *testing.T) {
	b := NewBindings()
	b.Push("outer")
	b.DefineLexical("count", value.Atomize(0))
	b.Push("inner")
	if !b.Set("count", value.Atomize(1)) {
		t.Fatalf("expected Set to find inherited binding 'count'")
	}
	b.Pop()
	if v, _ := b.Get("count"); v.Raw() != 1 {
		t.Errorf("expected count updated to 1 in outer frame, got %v", v)
	}
	if b.Set("undeclared", value.Atomize(1)) {
		t.Errorf("Set on an undeclared name must fail")
	}
}

func TestDepth(t *testing.T) {
	b := NewBindings()
	if b.Depth() != 1 {
		t.Fatalf("expected depth 1 for the root frame, got %d", b.Depth())
	}
	b.Push("a")
	b.Push("b")
	if b.Depth() != 3 {
		t.Errorf("expected depth 3, got %d", b.Depth())
	}
}
