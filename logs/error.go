package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapLine(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	line, ok := LineFrom(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("line: %d", line))
}
