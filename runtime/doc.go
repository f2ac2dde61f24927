/*
Package runtime implements the dynamic-scope binding frames a rule
invocation needs: fresh lexical bindings created on every entry to a rule,
and inherited bindings that a rule body reads and writes but which must
have been declared by some caller further down the (dynamic) call stack.

This is the runtime-environment half of the engine's control services: the
rule-table/invocation/pipeline machinery in package pex/rule pushes and
pops a runtime.Bindings frame around every rule call; this package only
ever deals with the frames themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package runtime
