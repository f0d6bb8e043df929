package debugs

import (
	"testing"

	"github.com/reusee/taicalc/calc"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTapGlobals(t *testing.T) {
	globals := tapGlobals(calc.Evaluator{}, map[string]any{
		"answer": 42,
	})

	thread := &starlark.Thread{
		Name: "test",
	}
	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "test",
		`[evaluate("2 + 3 * 4"), len(tokens("(1 + 2)")), tokens("7")[0]["Kind"], answer]`,
		globals,
	)
	if err != nil {
		t.Fatal(err)
	}
	if str := value.String(); str != `[14.0, 5, "number", 42]` {
		t.Fatalf("got %s", str)
	}

	_, err = starlark.EvalOptions(&syntax.FileOptions{}, thread, "test",
		`evaluate("1 / 0")`,
		globals,
	)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestTapGlobalsDuplicated(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	tapGlobals(calc.Evaluator{}, map[string]any{
		"evaluate": 1,
	})
}
