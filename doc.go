/*
Package pex implements a parsing-expression engine over arbitrary nested
sequences.

Given a user-defined grammar of named rules (package pex/rule) and a
concrete input — a flat sequence of atoms, or a tree built from nested
sequences of several element kinds (strings of characters, vectors of
numbers, lists of heterogeneous items) — the engine decides whether the
input conforms to the grammar and, on success, returns a structured result
built from the matched fragments.

This package holds the types shared by every other package in the module:
the element-kind enumeration and the Sequence interface that let a single
engine walk flat and nested inputs uniformly, and the tree-position Cursor
that is the sole place the engine ever reads from the input.

Package structure:

■ pex/value: a tagged variant result type threaded through matching and
through the per-rule result-processing pipeline.

■ pex/rule: the rule-expression algebra, the combinator interpreter, rule
table and invocation, the result-processing pipeline, and the control
services (left-recursion guard, tracing, scoped rule tables).

■ pex/runtime: dynamic-scope binding frames used for a rule's lexical and
inherited bindings.

■ cmd/pexrepl: a small interactive harness over the engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pex
