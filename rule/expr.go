package rule

import "github.com/npillmayer/pex"

// Expr is a rule-body expression: an atom matcher or a combinator over
// other Exprs. Concrete types are built with the constructor functions
// below rather than composite literals.
type Expr interface {
	isExpr()
}

// Symbol marks a quoted symbol literal, distinguishing it at the type
// level from a bare string (which, as a Literal, matches a string or a
// run of characters instead).
type Symbol string

// Literal matches one of: a character (rune), a number (float64), a
// string, a vector ([]float64), or a quoted Symbol. See atom.go for the
// matching rules, which differ for string/vector literals depending on
// whether the cursor sits inside a sequence of that same kind.
type Literal struct {
	Value interface{}
}

func (Literal) isExpr() {}

// Chr builds a character literal.
func Chr(r rune) Expr { return Literal{r} }

// Num builds a number literal.
func Num(n float64) Expr { return Literal{n} }

// Sym builds a quoted-symbol literal.
func Sym(name string) Expr { return Literal{Symbol(name)} }

// Str builds a string literal.
func Str(s string) Expr { return Literal{s} }

// VecLit builds a vector literal.
func VecLit(v []float64) Expr {
	cp := make([]float64, len(v))
	copy(cp, v)
	return Literal{cp}
}

// WildcardKind selects which kind-test a Wildcard performs.
type WildcardKind int8

const (
	WildChar WildcardKind = iota
	WildByte
	WildSymbol
	WildAnyForm
	WildList
	WildVector
	WildNumber
	WildString
)

// Wildcard matches any single item of a given kind, consuming one
// position. AnyForm matches anything at all, including a nested
// sub-sequence.
type Wildcard struct {
	Kind WildcardKind
}

func (Wildcard) isExpr() {}

var (
	CharWildcard   Expr = Wildcard{WildChar}
	ByteWildcard   Expr = Wildcard{WildByte}
	SymbolWildcard Expr = Wildcard{WildSymbol}
	AnyForm        Expr = Wildcard{WildAnyForm}
	ListWildcard   Expr = Wildcard{WildList}
	VectorWildcard Expr = Wildcard{WildVector}
	NumberWildcard Expr = Wildcard{WildNumber}
	StringWildcard Expr = Wildcard{WildString}
)

// Param names a formal parameter. Used as a body expression it matches
// whatever value the caller bound the parameter to, treating it as a
// literal (runtime dispatch on the bound value's type). Used inside a
// Ref's argument list it forwards the caller's own parameter binding
// unevaluated, rather than matching anything itself.
type Param struct {
	Name string
}

func (Param) isExpr() {}

// ParamRef is an alias constructor for Param, used at call sites that read
// more naturally as "forward my parameter x" than "Param{\"x\"}".
func ParamRef(name string) Expr { return Param{name} }

// Ref invokes another rule by name (or, with no Args, invokes a
// zero-parameter rule, or is a bare reference used purely for recursion).
// Each element of Args must be a Literal or a Param: arguments are passed
// by value, not matched against input.
type Ref struct {
	Name string
	Args []Expr
}

func (Ref) isExpr() {}

// RefTo builds a rule reference, with or without arguments.
func RefTo(name string, args ...Expr) Expr { return Ref{Name: name, Args: args} }

// Or tries each alternative in order against the same cursor, taking the
// first that succeeds.
type Or struct{ Alts []Expr }

func (Or) isExpr() {}

// OrExpr builds an ordered choice.
func OrExpr(alts ...Expr) Expr { return Or{Alts: alts} }

// And matches each item in sequence, threading the cursor from one to the
// next; it fails as soon as one item fails, without consuming anything.
type And struct{ Items []Expr }

func (And) isExpr() {}

// AndExpr builds an ordered sequence.
func AndExpr(items ...Expr) Expr { return And{Items: items} }

// Unordered matches every item exactly once, in any order (the "and~"
// combinator): at each step it tries every not-yet-succeeded alternative
// against the current cursor and accepts the first that succeeds.
type Unordered struct{ Items []Expr }

func (Unordered) isExpr() {}

// UnorderedExpr builds an unordered-but-exhaustive sequence.
func UnorderedExpr(items ...Expr) Expr { return Unordered{Items: items} }

// Not succeeds iff its inner expression fails at the current cursor (and
// the cursor is valid), consuming one position and returning the item
// found there.
type Not struct{ Inner Expr }

func (Not) isExpr() {}

// NotExpr builds a consuming negation.
func NotExpr(inner Expr) Expr { return Not{Inner: inner} }

// Star matches its inner expression zero or more times, greedily, with no
// backtracking across the whole repetition.
type Star struct{ Inner Expr }

func (Star) isExpr() {}

// StarExpr builds a zero-or-more repetition.
func StarExpr(inner Expr) Expr { return Star{Inner: inner} }

// Plus is identical to Star but fails if the first application fails.
type Plus struct{ Inner Expr }

func (Plus) isExpr() {}

// PlusExpr builds a one-or-more repetition.
func PlusExpr(inner Expr) Expr { return Plus{Inner: inner} }

// Rep bounds a repetition to [Min, Max] applications; Max < 0 means
// unbounded.
type Rep struct {
	Min, Max int
	Inner    Expr
}

func (Rep) isExpr() {}

// RepExact builds a repetition requiring exactly n applications.
func RepExact(n int, inner Expr) Expr { return Rep{Min: n, Max: n, Inner: inner} }

// RepUpTo builds a repetition of at most max applications (0..max).
func RepUpTo(max int, inner Expr) Expr { return Rep{Min: 0, Max: max, Inner: inner} }

// RepBetween builds a repetition of between min and max applications.
func RepBetween(min, max int, inner Expr) Expr {
	if min < 0 || max < min {
		fail("illegal repetition range [%d,%d]", min, max)
	}
	return Rep{Min: min, Max: max, Inner: inner}
}

// Opt matches its inner expression if possible; otherwise it succeeds
// anyway without consuming anything.
type Opt struct{ Inner Expr }

func (Opt) isExpr() {}

// OptExpr builds an optional match.
func OptExpr(inner Expr) Expr { return Opt{Inner: inner} }

// Look is a non-consuming positive lookahead ("&r"): it succeeds iff its
// inner expression succeeds, but never advances the cursor.
type Look struct{ Inner Expr }

func (Look) isExpr() {}

// LookExpr builds a positive lookahead.
func LookExpr(inner Expr) Expr { return Look{Inner: inner} }

// LookNot is a non-consuming negative lookahead ("!r"): it succeeds iff its
// inner expression fails (and the cursor is valid), returning the item
// under the cursor without advancing.
type LookNot struct{ Inner Expr }

func (LookNot) isExpr() {}

// LookNotExpr builds a negative lookahead.
func LookNotExpr(inner Expr) Expr { return LookNot{Inner: inner} }

// TypedDescent requires the item under the cursor to be a sub-sequence of
// the given Kind, descends into it, matches Inner against its entire
// contents, then ascends past it. ListOf/StringOf/VectorOf below build one
// for each Kind.
type TypedDescent struct {
	Kind  pex.Kind
	Inner Expr
}

func (TypedDescent) isExpr() {}

// ListOf matches a nested list sub-sequence whose entire contents match
// inner.
func ListOf(inner Expr) Expr { return TypedDescent{Kind: pex.List, Inner: inner} }

// StringOf matches a nested string sub-sequence whose entire contents
// match inner.
func StringOf(inner Expr) Expr { return TypedDescent{Kind: pex.String, Inner: inner} }

// VectorOf matches a nested vector sub-sequence whose entire contents
// match inner.
func VectorOf(inner Expr) Expr { return TypedDescent{Kind: pex.Vector, Inner: inner} }
