/*
Package rule implements the parsing-expression engine proper: the atom
matcher, the combinator interpreter, the rule table and invocation
machinery, the result-processing pipeline, and the control services built
on top of them (the left-recursion guard, per-rule tracing, and scoped
local rule tables).

An Expr value describes a rule body the way a regular expression describes
a string pattern, except that it is built directly as Go values (Or, And,
Star, ...) rather than parsed from text, and it matches against a
pex.Cursor positioned in a pex.Sequence instead of against a flat byte
stream. A rule adds a name, formal parameters, lexical and inherited
bindings, and a result-processing pipeline around one Expr body; a Table
collects named rule Definitions and, alongside them, the per-rule state the
control services need (left-recursion guards, trace levels).

Parse is the top-level driver: it runs a start expression against an input
Sequence and reports whether the match succeeded, optionally tolerating
trailing "junk" the grammar did not account for.

Match failure is an ordinary (Value, false) return, handled entirely within
the combinator interpreter. A grammar mistake — an unknown rule name, a
malformed expression, a left-recursive call — is not: it panics, carrying
an error, out of Parse. This mirrors the engine's own distinction between
"the input didn't match" (a value) and "the grammar itself is broken" (an
aborted parse); host code that wants the latter as a value can recover
around its own call to Parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rule
