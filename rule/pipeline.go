package rule

import (
	"github.com/npillmayer/pex/runtime"
	"github.com/npillmayer/pex/value"
)

// StepKind selects which of the nine result-processing step shapes a Step
// is (§4.5).
type StepKind int8

const (
	StepConstant StepKind = iota
	StepLambda
	StepFunction
	StepIdentity
	StepFlatten
	StepString
	StepVector
	StepTest
	StepNot
)

// Body is a pipeline step that consumes the positional arguments produced
// by destructuring the running value, plus the bindings active for the
// current rule invocation, and produces the next running value.
type Body func(args []value.Value, env *runtime.Bindings) value.Value

// Predicate is a pipeline test that consumes the same destructured
// arguments and decides whether to let the match through.
type Predicate func(args []value.Value, env *runtime.Bindings) bool

// Step is one stage of a rule's result-processing pipeline.
type Step struct {
	Kind      StepKind
	Params    []string
	Body      Body
	Predicate Predicate
	Const     value.Value
	Func      func(args ...value.Value) value.Value
	Identity  func(v value.Value) bool
}

// ConstantStep replaces the running value with a fixed constant.
func ConstantStep(v value.Value) Step { return Step{Kind: StepConstant, Const: v} }

// LambdaStep destructures the running value by position into params,
// runs body, and replaces the running value with its result. Also known
// as the "destructure" step.
func LambdaStep(params []string, body Body) Step {
	return Step{Kind: StepLambda, Params: params, Body: body}
}

// FunctionStep calls f with the running value's elements as positional
// arguments and replaces the running value with its result.
func FunctionStep(f func(args ...value.Value) value.Value) Step {
	return Step{Kind: StepFunction, Func: f}
}

// IdentityStep evaluates pred against the running value; when it is
// false, the running value is replaced with Null, but the match still
// succeeds (use TestStep to veto the match instead).
func IdentityStep(pred func(v value.Value) bool) Step {
	return Step{Kind: StepIdentity, Identity: pred}
}

// FlattenStep deeply flattens the running value.
func FlattenStep() Step { return Step{Kind: StepFlatten} }

// ToStringStep flattens the running value and renders it as a string.
func ToStringStep() Step { return Step{Kind: StepString} }

// ToVectorStep flattens the running value and renders it as a vector.
func ToVectorStep() Step { return Step{Kind: StepVector} }

// TestStep destructures the running value by position into params and
// vetoes the whole match (the rule fails, as if its body had never
// matched) if pred returns false.
func TestStep(params []string, pred Predicate) Step {
	return Step{Kind: StepTest, Params: params, Predicate: pred}
}

// NotStep is TestStep's negation: it vetoes the match if pred returns
// true.
func NotStep(params []string, pred Predicate) Step {
	return Step{Kind: StepNot, Params: params, Predicate: pred}
}

// destructure splits v into up to len(params) positional arguments,
// treating a non-list v as a one-element list (value.Value.AsList).
func destructure(v value.Value, params []string) []value.Value {
	elems := v.AsList()
	args := make([]value.Value, len(params))
	for i := range params {
		if i < len(elems) {
			args[i] = elems[i]
		} else {
			args[i] = value.Nil
		}
	}
	return args
}

// runPipeline runs steps over v in order. ok is false if a test/not step
// vetoed the match.
func runPipeline(steps []Step, v value.Value, env *runtime.Bindings) (value.Value, bool) {
	cur := v
	for _, step := range steps {
		switch step.Kind {
		case StepConstant:
			cur = step.Const
		case StepLambda:
			cur = step.Body(destructure(cur, step.Params), env)
		case StepFunction:
			cur = step.Func(cur.AsList()...)
		case StepIdentity:
			if !step.Identity(cur) {
				cur = value.Nil
			}
		case StepFlatten:
			cur = cur.Flatten()
		case StepString:
			cur = cur.ToStringValue()
		case StepVector:
			cur = cur.ToVectorValue()
		case StepTest:
			if !step.Predicate(destructure(cur, step.Params), env) {
				return value.Nil, false
			}
		case StepNot:
			if step.Predicate(destructure(cur, step.Params), env) {
				return value.Nil, false
			}
		}
	}
	return cur, true
}
