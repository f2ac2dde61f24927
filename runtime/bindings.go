package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/pex/value"
)

// T traces with key 'pex.runtime', used throughout for scope/memory-frame
// bookkeeping.
func T() tracing.Trace {
	return tracing.Select("pex.runtime")
}

// Frame holds the bindings created fresh for one rule invocation (its
// lexical-bindings), plus a link to the caller's frame, which is how an
// inherited binding declared by some ancestor call is found again.
type Frame struct {
	Name   string
	Values map[string]value.Value
	Parent *Frame
}

func newFrame(name string, parent *Frame) *Frame {
	return &Frame{Name: name, Values: make(map[string]value.Value), Parent: parent}
}

func (f *Frame) String() string {
	return fmt.Sprintf("<frame %s>", f.Name)
}

// Bindings is a call-stack of Frames. The top-of-stack frame belongs to
// the rule currently executing; inherited-binding lookups walk the Parent
// chain from there towards the root.
type Bindings struct {
	stack *arraystack.Stack
	tos   *Frame
}

// NewBindings creates an empty binding stack with a single root frame,
// the globals frame every lookup chain eventually bottoms out at.
func NewBindings() *Bindings {
	b := &Bindings{stack: arraystack.New()}
	root := newFrame("root", nil)
	b.stack.Push(root)
	b.tos = root
	return b
}

// Current returns the frame of the rule currently executing.
func (b *Bindings) Current() *Frame {
	if b.tos == nil {
		panic("runtime: Current() called on an empty binding stack")
	}
	return b.tos
}

// Push creates a new frame for a rule entry, parented to the current
// frame, and makes it current.
func (b *Bindings) Push(ruleName string) *Frame {
	f := newFrame(ruleName, b.tos)
	b.stack.Push(f)
	b.tos = f
	T().P("rule", ruleName).Debugf("pushing binding frame")
	return f
}

// Pop discards the current frame and restores the caller's frame as
// current. Callers must pop on every exit path — success, failure, or
// fatal error — exactly mirroring the left-recursion guard's
// acquire/release discipline (package pex/rule).
func (b *Bindings) Pop() *Frame {
	v, ok := b.stack.Pop()
	if !ok {
		panic("runtime: Pop() called on an empty binding stack")
	}
	f := v.(*Frame)
	if parent, ok := b.stack.Peek(); ok {
		b.tos = parent.(*Frame)
	} else {
		b.tos = nil
	}
	T().P("rule", f.Name).Debugf("popping binding frame")
	return f
}

// DefineLexical creates (or resets) a binding in the current frame only —
// this is how a rule's declared lexical-bindings are (re-)created fresh on
// every entry.
func (b *Bindings) DefineLexical(name string, init value.Value) {
	b.Current().Values[name] = init
}

// Get searches for name starting at the current frame and walking the
// Parent chain, the dynamic-scope lookup an inherited binding relies on.
func (b *Bindings) Get(name string) (value.Value, bool) {
	for f := b.tos; f != nil; f = f.Parent {
		if v, ok := f.Values[name]; ok {
			return v, true
		}
	}
	return value.Nil, false
}

// Set updates name in the nearest frame (current or ancestor) where it is
// already bound, as required for an inherited binding a rule body writes
// back to its caller. It returns false if name is not bound anywhere on
// the chain.
func (b *Bindings) Set(name string, v value.Value) bool {
	for f := b.tos; f != nil; f = f.Parent {
		if _, ok := f.Values[name]; ok {
			f.Values[name] = v
			return true
		}
	}
	return false
}

// Depth returns the number of active frames, the root frame included.
func (b *Bindings) Depth() int {
	return b.stack.Size()
}
