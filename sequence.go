package pex

import "fmt"

// Kind identifies the concrete shape of a Sequence: an ordered sequence of
// heterogeneous items, a string of characters, or a vector of numbers.
// Items inside a list may themselves be any of these kinds, recursively.
type Kind int8

const (
	// List is an ordered sequence of heterogeneous items.
	List Kind = iota
	// String is a sequence of characters (runes).
	String
	// Vector is a sequence of fixed-width numbers.
	Vector
)

func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case String:
		return "string"
	case Vector:
		return "vector"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Sequence is the uniform interface the Cursor reads through. All three
// concrete input shapes — lists, strings and vectors — implement it, which
// lets the engine walk them interchangeably without ever knowing which one
// it is looking at.
type Sequence interface {
	// Kind returns the shape of this sequence.
	Kind() Kind
	// Len returns the number of elements in this sequence.
	Len() int
	// At returns the element at position i. For a List this may itself be
	// a Sequence (a nested sub-sequence); for String and Vector it is a
	// rune or a float64, respectively.
	At(i int) interface{}
}

// ListSeq is a Sequence of heterogeneous items, possibly nested.
type ListSeq []interface{}

func (l ListSeq) Kind() Kind   { return List }
func (l ListSeq) Len() int     { return len(l) }
func (l ListSeq) At(i int) interface{} { return l[i] }

// StringSeq is a Sequence of characters.
type StringSeq []rune

func (s StringSeq) Kind() Kind { return String }
func (s StringSeq) Len() int   { return len(s) }
func (s StringSeq) At(i int) interface{} { return s[i] }

// NewStringSeq builds a StringSeq from a Go string.
func NewStringSeq(s string) StringSeq {
	return StringSeq([]rune(s))
}

// String renders a StringSeq back as a Go string.
func (s StringSeq) String() string {
	return string([]rune(s))
}

// VectorSeq is a Sequence of numbers.
type VectorSeq []float64

func (v VectorSeq) Kind() Kind { return Vector }
func (v VectorSeq) Len() int   { return len(v) }
func (v VectorSeq) At(i int) interface{} { return v[i] }
