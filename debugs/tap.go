package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on the terminal with calculator functions predeclared.
type Tap func(ctx context.Context, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
	evaluator calc.Evaluator,
) Tap {
	return func(ctx context.Context, globals map[string]any) {
		logger.InfoContext(ctx, "tap")
		defer func() {
			logger.InfoContext(ctx, "tap end")
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, tapGlobals(evaluator, globals))
	}
}

func tapGlobals(evaluator calc.Evaluator, globals map[string]any) starlark.StringDict {
	mappings := starlark.StringDict{
		"evaluate": starlark.NewBuiltin("evaluate", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
				return nil, err
			}
			value, err := evaluator.Evaluate(text)
			if err != nil {
				return nil, err
			}
			return starlark.Float(value), nil
		}),
		"tokens": starlark.NewBuiltin("tokens", func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var text string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &text); err != nil {
				return nil, err
			}
			tokens, err := calc.Tokens(text)
			if err != nil {
				return nil, err
			}
			return toStarlarkValue(tokens), nil
		}),
	}
	for name, value := range globals {
		if _, ok := mappings[name]; ok {
			panic(fmt.Errorf("duplicated tap global: %s", name))
		}
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
