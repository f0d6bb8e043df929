package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/debugs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/repl"
)

var (
	evalExprs  = cmds.Collect[string]("eval")
	checkExprs = cmds.Collect[string]("check")
	tapFlag    = cmds.Switch("tap")
)

func init() {
	cmds.Define("version", cmds.Func(func() {
		fmt.Println("taicalc")
		os.Exit(0)
	}).Desc("print program name and exit"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(repl.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		evaluator calc.Evaluator,
		interactive repl.Interactive,
		tap debugs.Tap,
		format calcconfigs.ResultFormat,
		stdout repl.Stdout,
		logger logs.Logger,
	) {
		switch {

		case len(*evalExprs) > 0 || len(*checkExprs) > 0:
			failed := false
			for _, expr := range *evalExprs {
				value, err := evaluator.Evaluate(expr)
				if err != nil {
					fmt.Fprintln(stdout, err.Error())
					failed = true
					continue
				}
				fmt.Fprintf(stdout, "= %s\n", repl.FormatResult(value, format))
			}
			for _, expr := range *checkExprs {
				result := debugs.CrossCheck(evaluator, expr)
				fmt.Fprintln(stdout, result.String())
				if !result.Agree() {
					logger.Warn("evaluators disagree", "input", expr)
					failed = true
				}
			}
			if failed {
				os.Exit(1)
			}

		case *tapFlag:
			tap(ctx, map[string]any{
				"format": func(value float64) string {
					return repl.FormatResult(value, format)
				},
			})

		default:
			if err := interactive(ctx); err != nil {
				logger.Error("repl", "error", err)
				os.Exit(1)
			}

		}
	})
}
