package calc

import (
	"fmt"
	"log/slog"
	"strings"
)

type Evaluator struct {
	// if nil, parser steps are not traced
	Logger *slog.Logger
}

// Evaluate parses and evaluates one line. Every error is a *ParseError.
func (e Evaluator) Evaluate(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, WithPos(ErrEmptyInput, 0, "")
	}

	tokens, err := NewTokenStream(text)
	if err != nil {
		return 0, WithPos(err, 0, text)
	}

	value, err := NewParser(tokens, e.Logger).Expression()
	if err != nil {
		return 0, err
	}

	t, err := tokens.Get()
	if err != nil {
		return 0, err
	}
	if t.Kind != TokenEOF {
		return 0, WithPos(
			fmt.Errorf("%w: %v", ErrTrailingInput, t),
			t.Pos,
			text,
		)
	}

	return value, nil
}

func Evaluate(text string) (float64, error) {
	return Evaluator{}.Evaluate(text)
}
