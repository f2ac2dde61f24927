package rule

import "fmt"

// fail aborts with a grammar-level error: an unknown rule, a malformed
// expression or a left-recursive call during a parse, or an out-of-range
// repetition bound when RepBetween builds the expression. These are programmer errors in the grammar, not
// ordinary match failures, so they panic rather than unwind as a (Value,
// false) result; see the package doc comment.
func fail(format string, args ...interface{}) {
	panic(fmt.Errorf("rule: "+format, args...))
}
