package repl

import (
	"io"
	"log/slog"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calc"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Configs calcconfigs.Module
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Evaluator(
	trace calcconfigs.Trace,
	logger logs.Logger,
) calc.Evaluator {
	if !trace {
		return calc.Evaluator{}
	}
	logs.SetLevel(slog.LevelDebug)
	return calc.Evaluator{
		Logger: logger.With("component", "parser"),
	}
}
