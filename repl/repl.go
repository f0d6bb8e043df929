package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Run evaluates lines until a quit word, end of input or interrupt.
// A failed line is reported and does not stop the loop.
type Run func(ctx context.Context, reader LineReader) error

func (Module) Run(
	evaluator calc.Evaluator,
	stdout Stdout,
	quitWords calcconfigs.QuitWords,
	format calcconfigs.ResultFormat,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, reader LineReader) error {
		for lineNo := 1; ; lineNo++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			line, err := reader.Readline()
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			if err != nil {
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if slices.Contains(quitWords, line) {
				return nil
			}

			lineCtx := logs.WithLine(ctx, logs.Line(lineNo))
			value, err := evaluator.Evaluate(line)
			if err != nil {
				logger.DebugContext(lineCtx, "evaluate",
					"input", line,
					"error", err,
				)
				if _, err := fmt.Fprintln(stdout, err.Error()); err != nil {
					return logs.WrapLine(lineCtx, err)
				}
				continue
			}

			logger.DebugContext(lineCtx, "evaluate",
				"input", line,
				"value", value,
			)
			if _, err := fmt.Fprintf(stdout, "= %s\n", FormatResult(value, format)); err != nil {
				return logs.WrapLine(lineCtx, err)
			}
		}
	}
}

// Interactive runs the loop on the terminal with line editing and history.
type Interactive func(ctx context.Context) error

func (Module) Interactive(
	prompt calcconfigs.Prompt,
	historyFile calcconfigs.HistoryFile,
	run Run,
) Interactive {
	return func(ctx context.Context) error {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return err
		}
		defer rl.Close()
		return run(ctx, rl)
	}
}
