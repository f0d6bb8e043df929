package logs

import "context"

// Line is the REPL input line number an evaluation belongs to.
type Line int

type lineKey struct{}

var LineKey lineKey

func WithLine(ctx context.Context, line Line) context.Context {
	return context.WithValue(ctx, LineKey, line)
}

func LineFrom(ctx context.Context) (Line, bool) {
	line, ok := ctx.Value(LineKey).(Line)
	return line, ok
}
