package debugs

import (
	"fmt"
	"math"

	"github.com/reusee/taicalc/calc"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// StarlarkEval evaluates an arithmetic expression as Starlark, where / is float division.
func StarlarkEval(text string) (float64, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "expr", text, nil)
	if err != nil {
		return 0, err
	}
	f, ok := starlark.AsFloat(value)
	if !ok {
		return 0, fmt.Errorf("not a number: %s", value.Type())
	}
	return f, nil
}

type CrossCheckResult struct {
	Input       string
	Calc        float64
	CalcErr     error
	Starlark    float64
	StarlarkErr error
}

// Agree reports whether both evaluators failed, or both succeeded with close values.
func (c CrossCheckResult) Agree() bool {
	if c.CalcErr != nil || c.StarlarkErr != nil {
		return c.CalcErr != nil && c.StarlarkErr != nil
	}
	if c.Calc == c.Starlark {
		return true
	}
	diff := math.Abs(c.Calc - c.Starlark)
	return diff <= 1e-9*math.Max(math.Abs(c.Calc), math.Abs(c.Starlark))
}

func (c CrossCheckResult) String() string {
	show := func(v float64, err error) string {
		if err != nil {
			return "error: " + err.Error()
		}
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%s\n  calc:     %s\n  starlark: %s",
		c.Input,
		show(c.Calc, c.CalcErr),
		show(c.Starlark, c.StarlarkErr),
	)
}

func CrossCheck(evaluator calc.Evaluator, text string) CrossCheckResult {
	ret := CrossCheckResult{
		Input: text,
	}
	ret.Calc, ret.CalcErr = evaluator.Evaluate(text)
	ret.Starlark, ret.StarlarkErr = StarlarkEval(text)
	return ret
}
